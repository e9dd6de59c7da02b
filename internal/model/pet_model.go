package model

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetName          string    `gorm:"type:varchar(255);not null"`
	PetImg           string    `gorm:"type:text"`
	ImageDeleteURL   string    `gorm:"type:text"`
	Age              string    `gorm:"type:varchar(50)"`
	Location         string    `gorm:"type:varchar(255)"`
	Category         string    `gorm:"type:varchar(100);index"`
	ShortDescription string    `gorm:"type:text"`
	LongDescription  string    `gorm:"type:text"`
	AuthorEmail      string    `gorm:"type:varchar(255);not null;index"`
	AuthorName       string    `gorm:"type:varchar(255)"`
	Adopted          bool      `gorm:"default:false;index"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (Pet) TableName() string {
	return "pets"
}
