package serverutils

import (
	"context"
	"strings"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// PrincipalResolver turns the email carried by a verified token into a Principal with its stored role.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, email string) (entity.Principal, error)
}

type AuthMiddleware struct {
	secret     []byte
	cookieName string
	resolver   PrincipalResolver
}

func NewAuthMiddleware(secret, cookieName string, resolver PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		secret:     []byte(secret),
		cookieName: cookieName,
		resolver:   resolver,
	}
}

// Authenticate accepts the token from the auth cookie first, then from an Authorization: Bearer header.
func (m *AuthMiddleware) Authenticate(ctx *fiber.Ctx) error {
	tokenStr := ctx.Cookies(m.cookieName)
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}

	email, err := m.verify(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	principal, err := m.resolver.ResolvePrincipal(ctx.UserContext(), email)
	if err != nil {
		status := apperror.HTTPStatus(apperror.KindOf(err))
		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}

	ctx.Locals(principalKey, principal)
	return ctx.Next()
}

func (m *AuthMiddleware) verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", apperror.NotAuthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.NotAuthorized("invalid claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", apperror.NotAuthorized("token has no email")
	}
	return email, nil
}

// AdminOnly must run after Authenticate.
func AdminOnly(ctx *fiber.Ctx) error {
	if !GetPrincipal(ctx).IsAdmin() {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
	}
	return ctx.Next()
}

// GetPrincipal returns the zero Principal on routes without Authenticate.
func GetPrincipal(ctx *fiber.Ctx) entity.Principal {
	principal, _ := ctx.Locals(principalKey).(entity.Principal)
	return principal
}
