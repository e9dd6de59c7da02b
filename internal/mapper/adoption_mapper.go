package mapper

import (
	"pet-house-be/internal/entity"
	"pet-house-be/internal/model"
)

type AdoptionMapper struct{}

func NewAdoptionMapper() *AdoptionMapper {
	return &AdoptionMapper{}
}

func (m *AdoptionMapper) ToEntity(r *model.AdoptionRequest) *entity.AdoptionRequest {
	if r == nil {
		return nil
	}
	return &entity.AdoptionRequest{
		Id:          r.Id,
		PetId:       r.PetId,
		PetName:     r.PetName,
		PetImg:      r.PetImg,
		AdoptEmail:  r.AdoptEmail,
		AdoptName:   r.AdoptName,
		Phone:       r.Phone,
		Address:     r.Address,
		AuthorEmail: r.AuthorEmail,
		Status:      entity.AdoptionStatus(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func (m *AdoptionMapper) ToModel(r *entity.AdoptionRequest) *model.AdoptionRequest {
	if r == nil {
		return nil
	}
	return &model.AdoptionRequest{
		Id:          r.Id,
		PetId:       r.PetId,
		PetName:     r.PetName,
		PetImg:      r.PetImg,
		AdoptEmail:  r.AdoptEmail,
		AdoptName:   r.AdoptName,
		Phone:       r.Phone,
		Address:     r.Address,
		AuthorEmail: r.AuthorEmail,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func (m *AdoptionMapper) ToEntities(requests []*model.AdoptionRequest) []*entity.AdoptionRequest {
	entities := make([]*entity.AdoptionRequest, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
