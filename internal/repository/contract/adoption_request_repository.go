package contract

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdoptionRequestRepository interface {
	Create(ctx context.Context, request *entity.AdoptionRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error)
	FindByPet(ctx context.Context, petID uuid.UUID) ([]*entity.AdoptionRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionStatus) error
	// RejectOthers marks every request for petID except exceptID as Rejected and reports how many changed.
	RejectOthers(ctx context.Context, petID, exceptID uuid.UUID) (int64, error)
}
