package contract

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/specification"
)

type RefundRepository interface {
	Create(ctx context.Context, refund *entity.Refund) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error)
}
