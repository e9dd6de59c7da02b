package implementation

import (
	"context"
	"errors"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/mapper"
	"pet-house-be/internal/model"
	"pet-house-be/internal/repository/contract"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationPaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationPaymentRepository(db *gorm.DB) contract.DonationPaymentRepository {
	return &DonationPaymentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationPaymentRepositoryImpl) Create(ctx context.Context, payment *entity.DonationPayment) error {
	m := r.mapper.PaymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.PaymentToEntity(m)
	return nil
}

func (r *DonationPaymentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DonationPayment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DonationPaymentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationPayment, error) {
	var models []*model.DonationPayment
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.PaymentsToEntities(models), nil
}

func (r *DonationPaymentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.DonationPayment{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DonationPaymentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationPayment, error) {
	var m model.DonationPayment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PaymentToEntity(&m), nil
}

func (r *DonationPaymentRepositoryImpl) SumByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	totals := make(map[uuid.UUID]int64, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return totals, nil
	}

	var rows []model.CampaignTotal
	err := r.db.WithContext(ctx).Model(&model.DonationPayment{}).
		Select("donation_item_id, COALESCE(SUM(amount), 0) AS total").
		Where("donation_item_id IN ?", campaignIDs).
		Group("donation_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.DonationItemId] = row.Total
	}
	return totals, nil
}

func (r *DonationPaymentRepositoryImpl) FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error) {
	var models []*model.DonationPayment
	query := specification.Apply(r.db.WithContext(ctx), specs...)
	if err := query.Order("date ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	records := make([]entity.LedgerRecord, len(models))
	for i, m := range models {
		records[i] = r.mapper.PaymentToLedger(m)
	}
	return records, nil
}

type paymentWithCampaignRow struct {
	model.DonationPayment
	PetName     string
	DonationImg string
}

func (r *DonationPaymentRepositoryImpl) FindWithCampaign(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationWithCampaign, error) {
	var rows []paymentWithCampaignRow
	query := r.db.WithContext(ctx).
		Table("donation_payments").
		Select("donation_payments.*, donation_campaigns.pet_name, donation_campaigns.donation_img").
		Joins("LEFT JOIN donation_campaigns ON donation_campaigns.id = donation_payments.donation_item_id")
	query = specification.Apply(query, specs...)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*entity.DonationWithCampaign, len(rows))
	for i := range rows {
		result[i] = &entity.DonationWithCampaign{
			DonationPayment: *r.mapper.PaymentToEntity(&rows[i].DonationPayment),
			PetName:         rows[i].PetName,
			DonationImg:     rows[i].DonationImg,
		}
	}
	return result, nil
}
