package serverutils

import (
	"math"
	"strconv"

	"pet-house-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps Page*Limit within int32.
	MaxPage = math.MaxInt32 / MaxLimit
)

type Page struct {
	Page  int
	Limit int
}

func (p Page) Offset() int {
	return p.Page * p.Limit
}

// ParsePagination reads a 0-based page and a limit. Missing values fall back to defaults,
// malformed or out of range values are InvalidInput.
func ParsePagination(ctx *fiber.Ctx) (Page, error) {
	return parsePage(ctx, 0)
}

// ParsePublicPagination reads the 1-based page used by the public listings and
// normalises it to 0-based.
func ParsePublicPagination(ctx *fiber.Ctx) (Page, error) {
	p, err := parsePage(ctx, 1)
	if err != nil {
		return Page{}, err
	}
	p.Page--
	return p, nil
}

func parsePage(ctx *fiber.Ctx, minPage int) (Page, error) {
	p := Page{Page: minPage, Limit: DefaultLimit}

	if raw := ctx.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, apperror.InvalidInput("page must be an integer")
		}
		if page < minPage {
			return Page{}, apperror.InvalidInput("page must be at least " + strconv.Itoa(minPage))
		}
		if page-minPage > MaxPage {
			return Page{}, apperror.InvalidInput("page must be at most " + strconv.Itoa(MaxPage+minPage))
		}
		p.Page = page
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, apperror.InvalidInput("limit must be an integer")
		}
		if limit < 1 || limit > MaxLimit {
			return Page{}, apperror.InvalidInput("limit must be between 1 and 100")
		}
		p.Limit = limit
	}

	return p, nil
}

// ParseUUIDParam reads a path parameter as a UUID.
func ParseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidInput("invalid " + name)
	}
	return id, nil
}

// ParseUUIDQuery is ParseUUIDParam for query parameters.
func ParseUUIDQuery(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Query(name))
	if err != nil {
		return uuid.Nil, apperror.InvalidInput("invalid " + name)
	}
	return id, nil
}
