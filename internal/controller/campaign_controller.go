package controller

import (
	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICampaignController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Random(ctx *fiber.Ctx) error
	Donations(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	CountMine(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	TogglePause(ctx *fiber.Ctx) error
}

type campaignController struct {
	service service.ICampaignService
	auth    *serverutils.AuthMiddleware
}

func NewCampaignController(service service.ICampaignService, auth *serverutils.AuthMiddleware) ICampaignController {
	return &campaignController{
		service: service,
		auth:    auth,
	}
}

func (c *campaignController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/campaigns")
	h.Get("/", c.List)
	h.Get("/random", c.Random)
	h.Get("/:id/donations", c.Donations)

	h.Post("/", c.auth.Authenticate, c.Create)
	h.Get("/mine", c.auth.Authenticate, c.Mine)
	h.Get("/mine/count", c.auth.Authenticate, c.CountMine)
	h.Get("/:id", c.auth.Authenticate, c.Show)
	h.Patch("/:id", c.auth.Authenticate, c.Upsert)
	h.Patch("/:id/pause", c.auth.Authenticate, c.TogglePause)
}

func (c *campaignController) List(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePublicPagination(ctx)
	if err != nil {
		return err
	}
	sort := entity.CampaignSort(ctx.Query("sort", string(entity.CampaignSortDesc)))

	res, err := c.service.List(ctx.Context(), sort, page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *campaignController) Random(ctx *fiber.Ctx) error {
	res, err := c.service.Random(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *campaignController) Donations(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Donations(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *campaignController) Create(ctx *fiber.Ctx) error {
	req, err := parseCampaignRequest(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Create(ctx.Context(), serverutils.GetPrincipal(ctx), req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Campaign created", res))
}

func (c *campaignController) Mine(ctx *fiber.Ctx) error {
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

func (c *campaignController) CountMine(ctx *fiber.Ctx) error {
	res, err := c.service.CountMine(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *campaignController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *campaignController) Upsert(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	req, err := parseCampaignRequest(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Upsert(ctx.Context(), serverutils.GetPrincipal(ctx), id, req)
	if err != nil {
		return err
	}
	if res.Created {
		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Campaign created", res))
	}
	return ctx.JSON(serverutils.SuccessResponse("Campaign updated", res))
}

func (c *campaignController) TogglePause(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.TogglePause(ctx.Context(), serverutils.GetPrincipal(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Pause toggled", res))
}

func parseCampaignRequest(ctx *fiber.Ctx) (*dto.CampaignRequest, error) {
	var req dto.CampaignRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}
	return &req, nil
}
