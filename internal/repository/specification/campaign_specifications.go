package specification

import (
	"time"

	"gorm.io/gorm"
)

// CampaignActiveOn keeps campaigns whose last donation date is on or after Date.
type CampaignActiveOn struct {
	Date time.Time
}

func (s CampaignActiveOn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("donation_last_date >= ?", s.Date.Format("2006-01-02"))
}

type CampaignPaused struct {
	Paused bool
}

func (s CampaignPaused) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pause = ?", s.Paused)
}

type RandomOrder struct{}

func (s RandomOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("RANDOM()")
}
