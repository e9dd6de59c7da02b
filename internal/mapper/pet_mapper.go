package mapper

import (
	"pet-house-be/internal/entity"
	"pet-house-be/internal/model"
)

type PetMapper struct{}

func NewPetMapper() *PetMapper {
	return &PetMapper{}
}

func (m *PetMapper) ToEntity(p *model.Pet) *entity.Pet {
	if p == nil {
		return nil
	}
	return &entity.Pet{
		Id:               p.Id,
		PetName:          p.PetName,
		PetImg:           p.PetImg,
		ImageDeleteURL:   p.ImageDeleteURL,
		Age:              p.Age,
		Location:         p.Location,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		AuthorEmail:      p.AuthorEmail,
		AuthorName:       p.AuthorName,
		Adopted:          p.Adopted,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *PetMapper) ToModel(p *entity.Pet) *model.Pet {
	if p == nil {
		return nil
	}
	return &model.Pet{
		Id:               p.Id,
		PetName:          p.PetName,
		PetImg:           p.PetImg,
		ImageDeleteURL:   p.ImageDeleteURL,
		Age:              p.Age,
		Location:         p.Location,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		AuthorEmail:      p.AuthorEmail,
		AuthorName:       p.AuthorName,
		Adopted:          p.Adopted,
		CreatedAt:        p.CreatedAt,
	}
}

func (m *PetMapper) ToEntities(pets []*model.Pet) []*entity.Pet {
	entities := make([]*entity.Pet, len(pets))
	for i, p := range pets {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
