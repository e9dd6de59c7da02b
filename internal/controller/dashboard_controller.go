package controller

import (
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Counts(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
	auth    *serverutils.AuthMiddleware
}

func NewDashboardController(service service.IDashboardService, auth *serverutils.AuthMiddleware) IDashboardController {
	return &dashboardController{
		service: service,
		auth:    auth,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard", c.auth.Authenticate)
	h.Get("/history", c.History)
	h.Get("/counts", c.Counts)
}

func (c *dashboardController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *dashboardController) Counts(ctx *fiber.Ctx) error {
	res, err := c.service.Counts(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
