package contract

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	Update(ctx context.Context, pet *entity.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	// FindByIDForUpdate takes a row lock; only meaningful inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Pet, error)
	SetAdopted(ctx context.Context, id uuid.UUID, adopted bool) error
	ListNames(ctx context.Context, specs ...specification.Specification) ([]string, error)
}
