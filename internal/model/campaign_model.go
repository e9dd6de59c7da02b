package model

import (
	"time"

	"github.com/google/uuid"
)

type DonationCampaign struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PetName          string    `gorm:"type:varchar(255);not null"`
	DonationImg      string    `gorm:"type:text"`
	MaxDonation      int64     `gorm:"not null"`
	DonationLastDate time.Time `gorm:"type:date;not null;index"`
	Pause            bool      `gorm:"default:false"`
	ShortDescription string    `gorm:"type:text"`
	LongDescription  string    `gorm:"type:text"`
	AuthorEmail      string    `gorm:"type:varchar(255);not null;index"`
	AuthorName       string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (DonationCampaign) TableName() string {
	return "donation_campaigns"
}
