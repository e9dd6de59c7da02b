package dto

import (
	"time"

	"github.com/google/uuid"
)

type PetRequest struct {
	PetName          string `json:"pet_name" validate:"required"`
	PetImg           string `json:"pet_img" validate:"required,url"`
	ImageDeleteURL   string `json:"image_delete_url" validate:"omitempty,url"`
	Age              string `json:"age" validate:"required"`
	Location         string `json:"location" validate:"required"`
	Category         string `json:"category" validate:"required"`
	ShortDescription string `json:"short_description" validate:"required"`
	LongDescription  string `json:"long_description"`
	AuthorName       string `json:"author_name"`
}

type PetResponse struct {
	Id               uuid.UUID `json:"id"`
	PetName          string    `json:"pet_name"`
	PetImg           string    `json:"pet_img"`
	Age              string    `json:"age"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	ShortDescription string    `json:"short_description"`
	LongDescription  string    `json:"long_description"`
	AuthorEmail      string    `json:"author_email"`
	AuthorName       string    `json:"author_name"`
	Adopted          bool      `json:"adopted"`
	CreatedAt        time.Time `json:"created_at"`
}

type PetDetailResponse struct {
	PetResponse
	AdoptRequest *AdoptionRequestResponse `json:"adopt_request"`
}

type PetPageResponse struct {
	Items []PetResponse `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type UpsertResponse[T any] struct {
	Created bool `json:"created"`
	Item    T    `json:"item"`
}

// PetImageCleanupMessage asks the cleanup consumer to remove a deleted pet's hosted image.
type PetImageCleanupMessage struct {
	PetId          uuid.UUID `json:"pet_id"`
	ImageDeleteURL string    `json:"image_delete_url"`
}
