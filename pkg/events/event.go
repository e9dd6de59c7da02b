package events

import (
	"context"
	"time"
)

const (
	TypeUserRegistered   = "USER_REGISTERED"
	TypeDonationReceived = "DONATION_RECEIVED"
	TypeDonationRefunded = "DONATION_REFUNDED"
	TypeAdoptionAccepted = "ADOPTION_ACCEPTED"
)

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "DONATION_REFUNDED").
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

// Bus is anything events can be sent to. pkg/nats.Publisher is the production implementation.
type Bus interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
