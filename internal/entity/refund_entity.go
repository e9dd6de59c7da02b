package entity

import (
	"time"

	"github.com/google/uuid"
)

// Refund is a snapshot of a DonationPayment taken at the moment the gateway confirmed the refund.
type Refund struct {
	Id             uuid.UUID
	PaymentId      uuid.UUID
	DonationItemId uuid.UUID
	UserEmail      string
	UserName       string
	Amount         int64
	Date           time.Time
	TransactionId  string
	Refund         bool
	RefundId       string
	RefundedAt     time.Time
}

func NewRefundFromPayment(p *DonationPayment, refundKey string, at time.Time) *Refund {
	return &Refund{
		Id:             uuid.New(),
		PaymentId:      p.Id,
		DonationItemId: p.DonationItemId,
		UserEmail:      p.UserEmail,
		UserName:       p.UserName,
		Amount:         p.Amount,
		Date:           p.Date,
		TransactionId:  p.TransactionId,
		Refund:         true,
		RefundId:       refundKey,
		RefundedAt:     at,
	}
}
