package mapper

import (
	"pet-house-be/internal/entity"
	"pet-house-be/internal/model"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.DonationCampaign) *entity.DonationCampaign {
	if c == nil {
		return nil
	}
	return &entity.DonationCampaign{
		Id:               c.Id,
		PetName:          c.PetName,
		DonationImg:      c.DonationImg,
		MaxDonation:      c.MaxDonation,
		DonationLastDate: c.DonationLastDate,
		Pause:            c.Pause,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		AuthorEmail:      c.AuthorEmail,
		AuthorName:       c.AuthorName,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *CampaignMapper) ToModel(c *entity.DonationCampaign) *model.DonationCampaign {
	if c == nil {
		return nil
	}
	return &model.DonationCampaign{
		Id:               c.Id,
		PetName:          c.PetName,
		DonationImg:      c.DonationImg,
		MaxDonation:      c.MaxDonation,
		DonationLastDate: c.DonationLastDate,
		Pause:            c.Pause,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		AuthorEmail:      c.AuthorEmail,
		AuthorName:       c.AuthorName,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *CampaignMapper) ToEntities(campaigns []*model.DonationCampaign) []*entity.DonationCampaign {
	entities := make([]*entity.DonationCampaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
