package refund

import (
	"context"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/activity"
	"pet-house-be/pkg/payment"

	"github.com/google/uuid"
)

const refundReason = "Donation withdrawn by contributor"

// HistoryInvalidator drops cached dashboard histories for a campaign author.
type HistoryInvalidator interface {
	Invalidate(ctx context.Context, authorEmail string)
}

// Processor refunds a donation at the gateway, then swaps the payment for a refund record.
type Processor struct {
	logger    logger.ILogger
	gateway   payment.Gateway
	publisher activity.Publisher
	history   HistoryInvalidator
	now       func() time.Time
}

func NewProcessor(logger logger.ILogger, gateway payment.Gateway, publisher activity.Publisher, history HistoryInvalidator) *Processor {
	return &Processor{
		logger:    logger,
		gateway:   gateway,
		publisher: publisher,
		history:   history,
		now:       time.Now,
	}
}

// Refund must be given a uow without an open transaction; it manages its own.
// A gateway failure leaves the store untouched. A store failure after a successful
// gateway refund leaves the payment in place and logs the refund key for reconciliation.
func (p *Processor) Refund(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, paymentID uuid.UUID) (*entity.Refund, error) {
	donation, err := uow.DonationPaymentRepository().FindByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if donation == nil {
		return nil, apperror.NotFound("donation not found")
	}
	if !principal.CanActAs(donation.UserEmail) {
		return nil, apperror.Forbidden("only the contributor or an admin can refund this donation")
	}

	receipt, err := p.gateway.Refund(ctx, donation.TransactionId, donation.Amount, refundReason)
	if err != nil {
		p.logger.Warn("REFUND", "Gateway rejected refund", map[string]interface{}{
			"payment_id":     paymentID.String(),
			"transaction_id": donation.TransactionId,
			"error":          err.Error(),
		})
		return nil, apperror.Gateway(err)
	}

	record := entity.NewRefundFromPayment(donation, receipt.RefundKey, p.now())
	if err := p.swap(ctx, uow, donation, record); err != nil {
		p.logger.Error("REFUND", "Gateway refunded but store update failed, reconcile manually", map[string]interface{}{
			"payment_id":     paymentID.String(),
			"transaction_id": donation.TransactionId,
			"refund_key":     receipt.RefundKey,
			"amount":         donation.Amount,
			"error":          err.Error(),
		})
		return nil, apperror.Store(err)
	}

	p.logger.Info("REFUND", "Donation refunded", map[string]interface{}{
		"payment_id": paymentID.String(),
		"refund_id":  record.Id.String(),
		"refund_key": receipt.RefundKey,
		"by":         principal.Email,
	})

	p.afterCommit(ctx, uow, record)
	return record, nil
}

func (p *Processor) swap(ctx context.Context, uow unitofwork.UnitOfWork, donation *entity.DonationPayment, record *entity.Refund) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.RefundRepository().Create(ctx, record); err != nil {
		return err
	}
	if err := uow.DonationPaymentRepository().Delete(ctx, donation.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (p *Processor) afterCommit(ctx context.Context, uow unitofwork.UnitOfWork, record *entity.Refund) {
	campaign, err := uow.CampaignRepository().FindByID(ctx, record.DonationItemId)
	if err != nil {
		p.logger.Warn("REFUND", "Could not resolve campaign for cache invalidation", map[string]interface{}{"error": err.Error()})
	} else if campaign != nil && p.history != nil {
		p.history.Invalidate(ctx, campaign.AuthorEmail)
	}

	p.publisher.PublishDonationRefunded(ctx, record)
}
