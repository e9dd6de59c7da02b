package payment

import (
	"context"
	"errors"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

type PaymentRequest struct {
	OrderID       string
	Amount        int64 // minor units
	CustomerEmail string
	CustomerName  string
	ItemName      string
}

type PaymentIntent struct {
	OrderID     string
	ClientToken string
	RedirectURL string
}

type RefundReceipt struct {
	RefundKey string
	Status    string
}

// Gateway is the payment provider as seen by the donation flows.
type Gateway interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error)
	Refund(ctx context.Context, transactionID string, amount int64, reason string) (*RefundReceipt, error)
}
