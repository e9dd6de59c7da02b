package dto

import (
	"time"

	"github.com/google/uuid"
)

// Price is in major units.
type PaymentIntentRequest struct {
	Price      float64   `json:"price" validate:"gt=0"`
	CampaignId uuid.UUID `json:"campaign_id"`
}

type PaymentIntentResponse struct {
	OrderId      string `json:"order_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	Amount       int64  `json:"amount"`
}

// Amount is in minor units, as charged by the gateway.
type RecordPaymentRequest struct {
	DonationItemId uuid.UUID `json:"donation_item_id" validate:"required"`
	Amount         int64     `json:"amount" validate:"gt=0"`
	TransactionId  string    `json:"transaction_id" validate:"required"`
	UserName       string    `json:"user_name"`
}

type DonationResponse struct {
	Id             uuid.UUID `json:"id"`
	DonationItemId uuid.UUID `json:"donation_item_id"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
	Amount         int64     `json:"amount"`
	Date           time.Time `json:"date"`
	TransactionId  string    `json:"transaction_id"`
}

type MyDonationResponse struct {
	DonationResponse
	PetName     string `json:"pet_name"`
	DonationImg string `json:"donation_img"`
}

type RefundResponse struct {
	Id             uuid.UUID `json:"id"`
	PaymentId      uuid.UUID `json:"payment_id"`
	DonationItemId uuid.UUID `json:"donation_item_id"`
	UserEmail      string    `json:"user_email"`
	UserName       string    `json:"user_name"`
	Amount         int64     `json:"amount"`
	Date           time.Time `json:"date"`
	TransactionId  string    `json:"transaction_id"`
	Refund         bool      `json:"refund"`
	RefundId       string    `json:"refund_id"`
	RefundedAt     time.Time `json:"refunded_at"`
}
