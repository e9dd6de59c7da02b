package dto

import (
	"time"

	"github.com/google/uuid"
)

// Campaign dates travel as DD,MM,YYYY.
type CampaignRequest struct {
	PetName          string `json:"pet_name" validate:"required"`
	DonationImg      string `json:"donation_img" validate:"required,url"`
	MaxDonation      int64  `json:"max_donation" validate:"gt=0"`
	DonationLastDate string `json:"donation_last_date" validate:"required"`
	ShortDescription string `json:"short_description" validate:"required"`
	LongDescription  string `json:"long_description"`
	AuthorName       string `json:"author_name"`
}

type CampaignResponse struct {
	Id               uuid.UUID `json:"id"`
	PetName          string    `json:"pet_name"`
	DonationImg      string    `json:"donation_img"`
	MaxDonation      int64     `json:"max_donation"`
	DonationLastDate string    `json:"donation_last_date"`
	Pause            bool      `json:"pause"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	AuthorEmail      string    `json:"author_email"`
	AuthorName       string    `json:"author_name"`
	CreatedAt        time.Time `json:"created_at"`
}

type CampaignProgressResponse struct {
	CampaignResponse
	Raised   int64 `json:"raised"`
	Progress int   `json:"progress"`
}

type CampaignPageResponse struct {
	Items []CampaignResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type PauseResponse struct {
	Pause bool `json:"pause"`
}
