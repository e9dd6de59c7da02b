package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdoptionRequest struct {
	PetId     uuid.UUID `json:"pet_id" validate:"required"`
	AdoptName string    `json:"adopt_name" validate:"required"`
	Phone     string    `json:"phone" validate:"required"`
	Address   string    `json:"address" validate:"required"`
}

type AdoptionRequestResponse struct {
	Id          uuid.UUID `json:"id"`
	PetId       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	PetImg      string    `json:"pet_img"`
	AdoptEmail  string    `json:"adopt_email"`
	AdoptName   string    `json:"adopt_name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	AuthorEmail string    `json:"author_email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AcceptAdoptionResponse struct {
	Accepted AdoptionRequestResponse `json:"accepted"`
	Rejected int                     `json:"rejected"`
	PetId    uuid.UUID               `json:"pet_id"`
}
