package model

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionRequest struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetId       uuid.UUID `gorm:"type:uuid;not null;index"`
	PetName     string    `gorm:"type:varchar(255)"`
	PetImg      string    `gorm:"type:text"`
	AdoptEmail  string    `gorm:"type:varchar(255);not null;index"`
	AdoptName   string    `gorm:"type:varchar(255)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Address     string    `gorm:"type:text"`
	AuthorEmail string    `gorm:"type:varchar(255);not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (AdoptionRequest) TableName() string {
	return "adoption_requests"
}
