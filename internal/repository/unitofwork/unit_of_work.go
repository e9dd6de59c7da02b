package unitofwork

import (
	"context"

	"pet-house-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PetRepository() contract.PetRepository
	CampaignRepository() contract.CampaignRepository
	DonationPaymentRepository() contract.DonationPaymentRepository
	RefundRepository() contract.RefundRepository
	AdoptionRequestRepository() contract.AdoptionRequestRepository
}
