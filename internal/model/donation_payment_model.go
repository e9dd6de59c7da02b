package model

import (
	"time"

	"github.com/google/uuid"
)

type DonationPayment struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonationItemId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail      string    `gorm:"type:varchar(255);not null;index"`
	UserName       string    `gorm:"type:varchar(255)"`
	Amount         int64     `gorm:"not null"`
	Date           time.Time `gorm:"not null;index"`
	TransactionId  string    `gorm:"type:varchar(255);index"`
}

func (DonationPayment) TableName() string {
	return "donation_payments"
}

// CampaignTotal is the row shape of the grouped sum over donation_payments.
type CampaignTotal struct {
	DonationItemId uuid.UUID
	Total          int64
}
