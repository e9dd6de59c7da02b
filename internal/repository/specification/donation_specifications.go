package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByContributor filters payments and refunds by the donor's email.
type ByContributor struct {
	Email string
}

func (s ByContributor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email = ?", s.Email)
}

type ByCampaign struct {
	CampaignID uuid.UUID
}

func (s ByCampaign) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("donation_item_id = ?", s.CampaignID)
}

type ByCampaigns struct {
	CampaignIDs []uuid.UUID
}

func (s ByCampaigns) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("donation_item_id IN ?", s.CampaignIDs)
}
