package controller

import (
	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPetController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Options(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	CountMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	MarkAdopted(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type petController struct {
	service service.IPetService
	auth    *serverutils.AuthMiddleware
}

func NewPetController(service service.IPetService, auth *serverutils.AuthMiddleware) IPetController {
	return &petController{
		service: service,
		auth:    auth,
	}
}

func (c *petController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pets")
	h.Get("/", c.List)
	h.Get("/options", c.Options)

	h.Post("/", c.auth.Authenticate, c.Create)
	h.Get("/mine", c.auth.Authenticate, c.Mine)
	h.Get("/mine/count", c.auth.Authenticate, c.CountMine)
	h.Get("/:id", c.auth.Authenticate, c.Show)
	h.Put("/:id", c.auth.Authenticate, c.Upsert)
	h.Patch("/:id/adopt", c.auth.Authenticate, c.MarkAdopted)
	h.Delete("/:id", c.auth.Authenticate, c.Delete)
}

func (c *petController) List(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePublicPagination(ctx)
	if err != nil {
		return err
	}
	filter := entity.PetFilter{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
	}

	res, err := c.service.List(ctx.Context(), filter, page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *petController) Options(ctx *fiber.Ctx) error {
	res, err := c.service.Options(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *petController) Create(ctx *fiber.Ctx) error {
	req, err := parsePetRequest(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Create(ctx.Context(), serverutils.GetPrincipal(ctx), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Pet created", res))
}

func (c *petController) Mine(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Mine(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *petController) CountMine(ctx *fiber.Ctx) error {
	res, err := c.service.CountMine(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *petController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Show(ctx.Context(), serverutils.GetPrincipal(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *petController) Upsert(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	req, err := parsePetRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), serverutils.GetPrincipal(ctx), id, req)
	if err != nil {
		return err
	}
	if res.Created {
		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Pet created", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pet updated", res))
}

func (c *petController) MarkAdopted(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.MarkAdopted(ctx.Context(), serverutils.GetPrincipal(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pet marked as adopted", res))
}

func (c *petController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Delete(ctx.Context(), serverutils.GetPrincipal(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Pet deleted", nil))
}

func parsePetRequest(ctx *fiber.Ctx) (*dto.PetRequest, error) {
	var req dto.PetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}
