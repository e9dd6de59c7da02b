package contract

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DonationPaymentRepository interface {
	Create(ctx context.Context, payment *entity.DonationPayment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationPayment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationPayment, error)
	// SumByCampaigns returns the summed amount per campaign. Campaigns without payments are absent.
	SumByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error)
	FindWithCampaign(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationWithCampaign, error)
}
