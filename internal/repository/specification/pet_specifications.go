package specification

import (
	"gorm.io/gorm"
)

type PetAdopted struct {
	Adopted bool
}

func (s PetAdopted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("adopted = ?", s.Adopted)
}

// PetNameContains is a case-insensitive substring match. Empty matches everything.
type PetNameContains struct {
	Search string
}

func (s PetNameContains) Apply(db *gorm.DB) *gorm.DB {
	if s.Search == "" {
		return db
	}
	return db.Where("pet_name ILIKE ?", "%"+escapeLike(s.Search)+"%")
}

type PetCategoryContains struct {
	Category string
}

func (s PetCategoryContains) Apply(db *gorm.DB) *gorm.DB {
	if s.Category == "" {
		return db
	}
	return db.Where("category ILIKE ?", "%"+escapeLike(s.Category)+"%")
}
