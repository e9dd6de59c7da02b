package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type ExcludeEmail struct {
	Email string
}

func (s ExcludeEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email <> ?", s.Email)
}

type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// LastLoginBefore counts users that never logged in as inactive too.
type LastLoginBefore struct {
	Time time.Time
}

func (s LastLoginBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_login_at IS NULL OR last_login_at < ?", s.Time)
}
