package controller

import (
	"pet-house-be/internal/dto"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdoptionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Incoming(ctx *fiber.Ctx) error
	CountIncoming(ctx *fiber.Ctx) error
	Accepted(ctx *fiber.Ctx) error
	CountAccepted(ctx *fiber.Ctx) error
	Outgoing(ctx *fiber.Ctx) error
	CountOutgoing(ctx *fiber.Ctx) error
	CountReceived(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
	Withdraw(ctx *fiber.Ctx) error
}

type adoptionController struct {
	service service.IAdoptionService
	auth    *serverutils.AuthMiddleware
}

func NewAdoptionController(service service.IAdoptionService, auth *serverutils.AuthMiddleware) IAdoptionController {
	return &adoptionController{
		service: service,
		auth:    auth,
	}
}

func (c *adoptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/adoptions", c.auth.Authenticate)
	h.Post("/", c.Create)
	h.Get("/incoming", c.Incoming)
	h.Get("/incoming/count", c.CountIncoming)
	h.Get("/accepted", c.Accepted)
	h.Get("/accepted/count", c.CountAccepted)
	h.Get("/outgoing", c.Outgoing)
	h.Get("/outgoing/count", c.CountOutgoing)
	h.Get("/received/count", c.CountReceived)
	h.Patch("/:id/accept", c.Accept)
	h.Patch("/:id/reject", c.Reject)
	h.Delete("/:id", c.Withdraw)
}

func (c *adoptionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAdoptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), serverutils.GetPrincipal(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Adoption request sent", res))
}

func (c *adoptionController) Incoming(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Incoming(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) CountIncoming(ctx *fiber.Ctx) error {
	res, err := c.service.CountIncoming(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) Accepted(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Accepted(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) CountAccepted(ctx *fiber.Ctx) error {
	res, err := c.service.CountAccepted(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) Outgoing(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Outgoing(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) CountOutgoing(ctx *fiber.Ctx) error {
	res, err := c.service.CountOutgoing(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adoptionController) CountReceived(ctx *fiber.Ctx) error {
	res, err := c.service.CountReceived(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// Accept takes the pet id as ?pet_id= so a request can never settle a different pet.
func (c *adoptionController) Accept(ctx *fiber.Ctx) error {
	requestId, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	petId, err := serverutils.ParseUUIDQuery(ctx, "pet_id")
	if err != nil {
		return err
	}

	res, err := c.service.Accept(ctx.Context(), serverutils.GetPrincipal(ctx), requestId, petId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Adoption accepted", res))
}

func (c *adoptionController) Reject(ctx *fiber.Ctx) error {
	requestId, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	res, err := c.service.Reject(ctx.Context(), serverutils.GetPrincipal(ctx), requestId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Adoption rejected", res))
}

func (c *adoptionController) Withdraw(ctx *fiber.Ctx) error {
	requestId, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.Withdraw(ctx.Context(), serverutils.GetPrincipal(ctx), requestId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Adoption request withdrawn", nil))
}
