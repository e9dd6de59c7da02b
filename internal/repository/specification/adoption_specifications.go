package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByAdopter struct {
	Email string
}

func (s ByAdopter) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("adopt_email = ?", s.Email)
}

type ByPet struct {
	PetID uuid.UUID
}

func (s ByPet) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pet_id = ?", s.PetID)
}

type ByAdoptionStatus struct {
	Status string
}

func (s ByAdoptionStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
