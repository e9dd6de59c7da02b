package controller

import (
	"pet-house-be/internal/dto"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDonationController interface {
	RegisterRoutes(r fiber.Router)
	CreateIntent(ctx *fiber.Ctx) error
	Record(ctx *fiber.Ctx) error
	Mine(ctx *fiber.Ctx) error
	CountMine(ctx *fiber.Ctx) error
	Refund(ctx *fiber.Ctx) error
	RefundsMine(ctx *fiber.Ctx) error
	CountRefundsMine(ctx *fiber.Ctx) error
}

type donationController struct {
	service service.IDonationService
	auth    *serverutils.AuthMiddleware
}

func NewDonationController(service service.IDonationService, auth *serverutils.AuthMiddleware) IDonationController {
	return &donationController{
		service: service,
		auth:    auth,
	}
}

func (c *donationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/donations", c.auth.Authenticate)
	h.Post("/intent", c.CreateIntent)
	h.Post("/", c.Record)
	h.Get("/mine", c.Mine)
	h.Get("/mine/count", c.CountMine)
	h.Get("/refunds/mine", c.RefundsMine)
	h.Get("/refunds/mine/count", c.CountRefundsMine)
	h.Delete("/:id", c.Refund)
}

func (c *donationController) CreateIntent(ctx *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateIntent(ctx.Context(), serverutils.GetPrincipal(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment intent created", res))
}

func (c *donationController) Record(ctx *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Record(ctx.Context(), serverutils.GetPrincipal(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Donation recorded", res))
}

func (c *donationController) Mine(ctx *fiber.Ctx) error {
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

func (c *donationController) CountMine(ctx *fiber.Ctx) error {
	res, err := c.service.CountMine(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *donationController) Refund(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Refund(ctx.Context(), serverutils.GetPrincipal(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Donation refunded", res))
}

func (c *donationController) RefundsMine(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.RefundsMine(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *donationController) CountRefundsMine(ctx *fiber.Ctx) error {
	res, err := c.service.CountRefundsMine(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
