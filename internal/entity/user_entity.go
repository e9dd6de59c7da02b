package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "Admin"

	UserStatusActive UserStatus = "Active"
	UserStatusBan    UserStatus = "Ban"
)

type User struct {
	Id          uuid.UUID
	Email       string
	Name        string
	PhotoURL    string
	Role        UserRole
	Status      UserStatus
	LastLoginAt *time.Time
	CreatedAt   time.Time
}

// Principal is the authenticated caller, resolved once per request by the auth middleware.
type Principal struct {
	Email string
	Role  UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

// CanActAs reports whether the caller may act on a resource owned by email.
func (p Principal) CanActAs(email string) bool {
	return p.IsAdmin() || (p.Email != "" && p.Email == email)
}

type MemberStats struct {
	Active   int64
	Inactive int64
	All      int64
	User     int64
	Admin    int64
}
