package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationPayment amounts are in minor units.
type DonationPayment struct {
	Id             uuid.UUID
	DonationItemId uuid.UUID
	UserEmail      string
	UserName       string
	Amount         int64
	Date           time.Time
	TransactionId  string
}

// DonationWithCampaign is a payment joined with the campaign it went to.
type DonationWithCampaign struct {
	DonationPayment
	PetName     string
	DonationImg string
}

type PaymentIntent struct {
	OrderId     string
	ClientToken string
	RedirectURL string
	Amount      int64
}
