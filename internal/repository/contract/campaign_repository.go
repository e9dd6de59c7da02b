package contract

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.DonationCampaign) error
	Update(ctx context.Context, campaign *entity.DonationCampaign) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationCampaign, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationCampaign, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationCampaign, error)
	FindIDs(ctx context.Context, specs ...specification.Specification) ([]uuid.UUID, error)
	SetPause(ctx context.Context, id uuid.UUID, pause bool) error
}
