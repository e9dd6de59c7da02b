package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignDateLayout is the wire format of a campaign's last donation date.
const CampaignDateLayout = "02,01,2006"

type DonationCampaign struct {
	Id               uuid.UUID
	PetName          string
	DonationImg      string
	MaxDonation      int64 // major currency units
	DonationLastDate time.Time
	Pause            bool
	ShortDescription string
	LongDescription  string
	AuthorEmail      string
	AuthorName       string
	CreatedAt        time.Time
}

// CampaignProgress is a campaign enriched with its funded amount (minor units) and percentage.
type CampaignProgress struct {
	DonationCampaign
	Raised   int64
	Progress int
}

type CampaignSort string

const (
	CampaignSortAsc  CampaignSort = "Asc"
	CampaignSortDesc CampaignSort = "Desc"
)
