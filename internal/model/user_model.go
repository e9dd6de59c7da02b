package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(255)"`
	PhotoURL    string    `gorm:"type:text"`
	Role        string    `gorm:"type:varchar(50);not null;default:'user';index"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Active';index"`
	LastLoginAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
