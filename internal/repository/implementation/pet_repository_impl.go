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
	"gorm.io/gorm/clause"
)

type PetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PetMapper
}

func NewPetRepository(db *gorm.DB) contract.PetRepository {
	return &PetRepositoryImpl{
		db:     db,
		mapper: mapper.NewPetMapper(),
	}
}

func (r *PetRepositoryImpl) Create(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.ToModel(pet)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.ToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) Update(ctx context.Context, pet *entity.Pet) error {
	m := r.mapper.ToModel(pet)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*pet = *r.mapper.ToEntity(m)
	return nil
}

func (r *PetRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pet{}).Error
}

func (r *PetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error) {
	var m model.Pet
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *PetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error) {
	var models []*model.Pet
	query := specification.Apply(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *PetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Pet{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PetRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	return r.FindOne(ctx, specification.ByID{ID: id})
}

func (r *PetRepositoryImpl) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	var m model.Pet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PetRepositoryImpl) SetAdopted(ctx context.Context, id uuid.UUID, adopted bool) error {
	return r.db.WithContext(ctx).Model(&model.Pet{}).
		Where("id = ?", id).
		Update("adopted", adopted).Error
}

func (r *PetRepositoryImpl) ListNames(ctx context.Context, specs ...specification.Specification) ([]string, error) {
	var names []string
	query := specification.Apply(r.db.WithContext(ctx).Model(&model.Pet{}), specs...)
	if err := query.Pluck("pet_name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
