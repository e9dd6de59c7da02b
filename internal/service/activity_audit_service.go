package service

import (
	"context"
	"strings"

	"pet-house-be/internal/pkg/logger"
	"pet-house-be/pkg/events"
	pktNats "pet-house-be/pkg/nats"
)

const activityAuditDurable = "activity-audit"

// EventSubscriber is the part of the NATS subscriber the audit trail needs.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject string, durableName string, handler pktNats.EventHandler) error
}

// ActivityAuditService copies every domain event into the system log so admins can browse it.
type ActivityAuditService struct {
	subscriber EventSubscriber
	logger     logger.ILogger
}

func NewActivityAuditService(sub EventSubscriber, log logger.ILogger) *ActivityAuditService {
	return &ActivityAuditService{
		subscriber: sub,
		logger:     log,
	}
}

// Start begins listening to the event stream.
func (s *ActivityAuditService) Start(ctx context.Context) {
	if s.subscriber == nil {
		s.logger.Warn("ACTIVITY", "No event subscriber configured, activity audit disabled", nil)
		return
	}

	subject := pktNats.SubjectPrefix + ".>"
	if err := s.subscriber.Subscribe(ctx, subject, activityAuditDurable, s.handleEvent); err != nil {
		s.logger.Error("ACTIVITY", "Failed to start activity subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("ACTIVITY", "Activity audit started", map[string]interface{}{"subject": subject})
}

func (s *ActivityAuditService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), pktNats.SubjectPrefix+".")

	details := map[string]interface{}{
		"type":        typeCode,
		"occurred_at": event.Timestamp(),
	}
	for k, v := range event.Payload() {
		details[k] = v
	}

	s.logger.Info("ACTIVITY", describeEvent(typeCode), details)
	return nil
}

func describeEvent(typeCode string) string {
	switch typeCode {
	case events.TypeUserRegistered:
		return "User registered"
	case events.TypeDonationReceived:
		return "Donation received"
	case events.TypeDonationRefunded:
		return "Donation refunded"
	case events.TypeAdoptionAccepted:
		return "Adoption accepted"
	default:
		return "Event " + typeCode
	}
}
