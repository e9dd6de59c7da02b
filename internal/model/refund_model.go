package model

import (
	"time"

	"github.com/google/uuid"
)

type Refund struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	DonationItemId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserEmail      string    `gorm:"type:varchar(255);not null;index"`
	UserName       string    `gorm:"type:varchar(255)"`
	Amount         int64     `gorm:"not null"`
	Date           time.Time `gorm:"not null"`
	TransactionId  string    `gorm:"type:varchar(255)"`
	Refund         bool      `gorm:"default:true"`
	RefundId       string    `gorm:"type:varchar(255)"`
	RefundedAt     time.Time `gorm:"not null;index"`
}

func (Refund) TableName() string {
	return "refunds"
}
