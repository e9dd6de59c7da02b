package implementation

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/mapper"
	"pet-house-be/internal/model"
	"pet-house-be/internal/repository/contract"
	"pet-house-be/internal/repository/specification"

	"gorm.io/gorm"
)

type refundRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewRefundRepository(db *gorm.DB) contract.RefundRepository {
	return &refundRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *refundRepositoryImpl) Create(ctx context.Context, refund *entity.Refund) error {
	return r.db.WithContext(ctx).Create(r.mapper.RefundToModel(refund)).Error
}

func (r *refundRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Refund, error) {
	var modelRefunds []*model.Refund
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRefunds).Error; err != nil {
		return nil, err
	}

	return r.mapper.RefundsToEntities(modelRefunds), nil
}

func (r *refundRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Refund{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *refundRepositoryImpl) FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error) {
	var modelRefunds []*model.Refund
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Order("date ASC").Find(&modelRefunds).Error; err != nil {
		return nil, err
	}

	records := make([]entity.LedgerRecord, len(modelRefunds))
	for i, m := range modelRefunds {
		records[i] = r.mapper.RefundToLedger(m)
	}
	return records, nil
}
