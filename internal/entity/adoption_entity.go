package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdoptionStatus string

const (
	AdoptionStatusPending  AdoptionStatus = "Pending"
	AdoptionStatusAccepted AdoptionStatus = "Accepted"
	AdoptionStatusRejected AdoptionStatus = "Rejected"
)

type AdoptionRequest struct {
	Id          uuid.UUID
	PetId       uuid.UUID
	PetName     string
	PetImg      string
	AdoptEmail  string
	AdoptName   string
	Phone       string
	Address     string
	AuthorEmail string
	Status      AdoptionStatus
	CreatedAt   time.Time
}

// AdoptionOutcome summarises an accept call for notification.
type AdoptionOutcome struct {
	Pet      *Pet
	Accepted *AdoptionRequest
	Rejected []*AdoptionRequest
}
