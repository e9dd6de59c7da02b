package payment

import (
	"context"
	"fmt"

	"pet-house-be/internal/pkg/logger"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type MidtransGateway struct {
	snapClient  snap.Client
	coreClient  coreapi.Client
	frontendURL string
	logger      logger.ILogger
}

func NewMidtransGateway(serverKey string, isProduction bool, frontendURL string, logger logger.ILogger) *MidtransGateway {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}

	g := &MidtransGateway{
		frontendURL: frontendURL,
		logger:      logger,
	}
	g.snapClient.New(serverKey, env)
	g.coreClient.New(serverKey, env)
	return g
}

// toMajor converts minor units to the whole-rupiah amount Midtrans expects.
func toMajor(amount int64) int64 {
	return amount / 100
}

func (g *MidtransGateway) CreatePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error) {
	if toMajor(req.Amount) <= 0 {
		return nil, ErrInvalidAmount
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: toMajor(req.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/dashboard/my-donations?payment=success", g.frontendURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.OrderID,
				Price: toMajor(req.Amount),
				Qty:   1,
				Name:  req.ItemName,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := g.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &PaymentIntent{
		OrderID:     req.OrderID,
		ClientToken: snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// Refund issues a full refund. The refund key is derived from the transaction so a retried
// call is idempotent on the provider side.
func (g *MidtransGateway) Refund(ctx context.Context, transactionID string, amount int64, reason string) (*RefundReceipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	refundKey := "refund-" + transactionID
	resp, midErr := g.coreClient.RefundTransaction(transactionID, &coreapi.RefundReq{
		RefundKey: refundKey,
		Amount:    toMajor(amount),
		Reason:    reason,
	})
	if midErr != nil {
		return nil, fmt.Errorf("midtrans refund error: %v", midErr.GetMessage())
	}

	if resp.RefundKey != "" {
		refundKey = resp.RefundKey
	}

	g.logger.Info("PAYMENT", "Refund accepted by gateway", map[string]interface{}{
		"transaction_id": transactionID,
		"refund_key":     refundKey,
		"status_code":    resp.StatusCode,
	})

	return &RefundReceipt{
		RefundKey: refundKey,
		Status:    resp.StatusCode,
	}, nil
}
