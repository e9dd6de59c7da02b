package controller

import (
	"strconv"

	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetUsers(ctx *fiber.Ctx) error
	CountUsers(ctx *fiber.Ctx) error
	MakeAdmin(ctx *fiber.Ctx) error
	ToggleBan(ctx *fiber.Ctx) error
	GetPets(ctx *fiber.Ctx) error
	CountPets(ctx *fiber.Ctx) error
	ToggleAdopted(ctx *fiber.Ctx) error
	GetCampaigns(ctx *fiber.Ctx) error
	CountCampaigns(ctx *fiber.Ctx) error
	GetDashboardHistory(ctx *fiber.Ctx) error
	GetMemberStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	auth    *serverutils.AuthMiddleware
}

func NewAdminController(service service.IAdminService, auth *serverutils.AuthMiddleware) IAdminController {
	return &adminController{
		service: service,
		auth:    auth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", c.auth.Authenticate, serverutils.AdminOnly)

	h.Get("/users", c.GetUsers)
	h.Get("/users/count", c.CountUsers)
	h.Patch("/users/:email/admin", c.MakeAdmin)
	h.Patch("/users/:email/ban", c.ToggleBan)

	h.Get("/pets", c.GetPets)
	h.Get("/pets/count", c.CountPets)
	h.Patch("/pets/:id/adopted", c.ToggleAdopted)

	h.Get("/campaigns", c.GetCampaigns)
	h.Get("/campaigns/count", c.CountCampaigns)

	h.Get("/dashboard/history", c.GetDashboardHistory)
	h.Get("/dashboard/members", c.GetMemberStats)

	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

// --- Users ---

func (c *adminController) GetUsers(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetUsers(ctx.Context(), serverutils.GetPrincipal(ctx), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CountUsers(ctx *fiber.Ctx) error {
	res, err := c.service.CountUsers(ctx.Context(), serverutils.GetPrincipal(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) MakeAdmin(ctx *fiber.Ctx) error {
	res, err := c.service.MakeAdmin(ctx.Context(), serverutils.GetPrincipal(ctx), ctx.Params("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Role updated", res))
}

// ToggleBan flips the status the caller saw, passed as ?status=.
func (c *adminController) ToggleBan(ctx *fiber.Ctx) error {
	res, err := c.service.ToggleBan(ctx.Context(), serverutils.GetPrincipal(ctx), ctx.Params("email"), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Status updated", res))
}

func (c *adminController) GetMemberStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetMemberStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// --- Pets ---

func (c *adminController) GetPets(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetPets(ctx.Context(), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CountPets(ctx *fiber.Ctx) error {
	res, err := c.service.CountPets(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) ToggleAdopted(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	current, err := strconv.ParseBool(ctx.Query("adopted", "false"))
	if err != nil {
		return apperror.InvalidInput("adopted must be true or false")
	}

	res, err := c.service.ToggleAdopted(ctx.Context(), id, current)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Adopted flag updated", res))
}

// --- Campaigns ---

func (c *adminController) GetCampaigns(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetCampaigns(ctx.Context(), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) CountCampaigns(ctx *fiber.Ctx) error {
	res, err := c.service.CountCampaigns(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) GetDashboardHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardHistory(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

// --- Logs ---

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, err := serverutils.ParsePagination(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetLogs(ctx.Context(), ctx.Query("level"), page)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
