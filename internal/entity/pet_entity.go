package entity

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	Id               uuid.UUID
	PetName          string
	PetImg           string
	ImageDeleteURL   string
	Age              string
	Location         string
	Category         string
	ShortDescription string
	LongDescription  string
	AuthorEmail      string
	AuthorName       string
	Adopted          bool
	CreatedAt        time.Time
}

type PetFilter struct {
	Search   string
	Category string
}
