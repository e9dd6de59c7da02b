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

type AdoptionRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AdoptionMapper
}

func NewAdoptionRequestRepository(db *gorm.DB) contract.AdoptionRequestRepository {
	return &AdoptionRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewAdoptionMapper(),
	}
}

func (r *AdoptionRequestRepositoryImpl) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	m := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *AdoptionRequestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AdoptionRequest{}).Error
}

func (r *AdoptionRequestRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error) {
	var m model.AdoptionRequest
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *AdoptionRequestRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error) {
	var models []*model.AdoptionRequest
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *AdoptionRequestRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.AdoptionRequest{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AdoptionRequestRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *AdoptionRequestRepositoryImpl) FindByPet(ctx context.Context, petID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	return r.FindAll(ctx, specification.ByPet{PetID: petID}, specification.OrderBy{Field: "created_at"})
}

func (r *AdoptionRequestRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionStatus) error {
	res := r.db.WithContext(ctx).Model(&model.AdoptionRequest{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AdoptionRequestRepositoryImpl) RejectOthers(ctx context.Context, petID, exceptID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.AdoptionRequest{}).
		Where("pet_id = ? AND id <> ? AND status <> ?", petID, exceptID, string(entity.AdoptionStatusRejected)).
		Update("status", string(entity.AdoptionStatusRejected))
	return res.RowsAffected, res.Error
}
