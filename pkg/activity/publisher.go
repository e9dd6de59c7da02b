package activity

import (
	"context"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/pkg/events"
)

// Publisher emits domain events after the owning transaction has committed.
// Failures are logged and never returned: events are best effort.
type Publisher interface {
	PublishUserRegistered(ctx context.Context, user *entity.User)
	PublishDonationReceived(ctx context.Context, payment *entity.DonationPayment)
	PublishDonationRefunded(ctx context.Context, refund *entity.Refund)
	PublishAdoptionAccepted(ctx context.Context, outcome *entity.AdoptionOutcome)
}

type BusPublisher struct {
	bus    events.Bus
	logger logger.ILogger
}

// NewBusPublisher accepts a nil bus, in which case every publish is a no-op.
func NewBusPublisher(bus events.Bus, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{
		bus:    bus,
		logger: logger,
	}
}

func (p *BusPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.bus == nil {
		return
	}

	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}

	if err := p.bus.Publish(ctx, evt); err != nil {
		p.logger.Warn("ACTIVITY", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *BusPublisher) PublishUserRegistered(ctx context.Context, user *entity.User) {
	p.publish(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id":     user.Id.String(),
		"email":       user.Email,
		"name":        user.Name,
		"entity_type": "user",
		"entity_id":   user.Id.String(),
	})
}

func (p *BusPublisher) PublishDonationReceived(ctx context.Context, payment *entity.DonationPayment) {
	p.publish(ctx, events.TypeDonationReceived, map[string]interface{}{
		"payment_id":     payment.Id.String(),
		"campaign_id":    payment.DonationItemId.String(),
		"user_email":     payment.UserEmail,
		"amount":         payment.Amount,
		"transaction_id": payment.TransactionId,
		"entity_type":    "donation",
		"entity_id":      payment.Id.String(),
	})
}

func (p *BusPublisher) PublishDonationRefunded(ctx context.Context, refund *entity.Refund) {
	p.publish(ctx, events.TypeDonationRefunded, map[string]interface{}{
		"refund_id":   refund.Id.String(),
		"payment_id":  refund.PaymentId.String(),
		"campaign_id": refund.DonationItemId.String(),
		"user_email":  refund.UserEmail,
		"amount":      refund.Amount,
		"refund_key":  refund.RefundId,
		"entity_type": "refund",
		"entity_id":   refund.Id.String(),
	})
}

func (p *BusPublisher) PublishAdoptionAccepted(ctx context.Context, outcome *entity.AdoptionOutcome) {
	rejected := make([]string, len(outcome.Rejected))
	for i, r := range outcome.Rejected {
		rejected[i] = r.Id.String()
	}

	p.publish(ctx, events.TypeAdoptionAccepted, map[string]interface{}{
		"pet_id":      outcome.Pet.Id.String(),
		"pet_name":    outcome.Pet.PetName,
		"request_id":  outcome.Accepted.Id.String(),
		"adopter":     outcome.Accepted.AdoptEmail,
		"rejected":    rejected,
		"entity_type": "adoption_request",
		"entity_id":   outcome.Accepted.Id.String(),
	})
}
