package contract

import (
	"context"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, email string, role entity.UserRole) error
	UpdateStatus(ctx context.Context, email string, status entity.UserStatus) error
	TouchLastLogin(ctx context.Context, email string, at time.Time) error
}
