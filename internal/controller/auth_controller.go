package controller

import (
	"time"

	"pet-house-be/internal/config"
	"pet-house-be/internal/dto"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	IssueToken(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
	CheckAdmin(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	auth    *serverutils.AuthMiddleware
	cfg     config.AuthConfig
}

func NewAuthController(service service.IAuthService, auth *serverutils.AuthMiddleware, cfg config.AuthConfig) IAuthController {
	return &authController{
		service: service,
		auth:    auth,
		cfg:     cfg,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/token", c.IssueToken)
	h.Post("/logout", c.Logout)
	h.Post("/register", c.Register)
	h.Get("/status/:email", c.GetStatus)
	h.Get("/check-admin/:email", c.auth.Authenticate, c.CheckAdmin)
}

func (c *authController) IssueToken(ctx *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	token, err := c.service.IssueToken(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     c.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(c.cfg.TokenTTL),
		HTTPOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: c.sameSite(),
	})
	return ctx.JSON(serverutils.SuccessResponse("Token issued", dto.TokenResponse{Success: true}))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.cfg.CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.cfg.CookieSecure,
		SameSite: c.sameSite(),
	})
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

// Cross-site cookies need SameSite=None, which browsers only accept on secure cookies.
func (c *authController) sameSite() string {
	if c.cfg.CookieSecure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.InvalidInput("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if !res.Created {
		return ctx.JSON(serverutils.SuccessResponse("User already exists", res))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User registered", res))
}

func (c *authController) GetStatus(ctx *fiber.Ctx) error {
	res, err := c.service.GetStatus(ctx.Context(), ctx.Params("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *authController) CheckAdmin(ctx *fiber.Ctx) error {
	res, err := c.service.CheckAdmin(ctx.Context(), serverutils.GetPrincipal(ctx), ctx.Params("email"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
