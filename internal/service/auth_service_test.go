package service

import (
	"context"
	"testing"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/memory"
	"pet-house-be/internal/repository/unitofwork/uowtest"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture() (*uowtest.Store, *recordingPublisher, *memory.RoleCache, IAuthService) {
	store := uowtest.NewStore()
	pub := &recordingPublisher{}
	roles := memory.NewRoleCache(time.Minute)
	svc := NewAuthService(uowtest.NewFactory(store), roles, pub, logger.NewNopLogger(), testSecret, time.Hour)
	return store, pub, roles, svc
}

func TestRegisterIsIdempotent(t *testing.T) {
	store, pub, _, svc := newAuthFixture()
	ctx := context.Background()
	req := &dto.RegisterUserRequest{Email: "ana@example.com", Name: "Ana"}

	first, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "user", first.User.Role)

	second, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "ana@example.com", Name: "Someone Else"})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, "Ana", second.User.Name)

	assert.Len(t, store.Users, 1)
	assert.Len(t, pub.registered, 1)
}

func TestIssueTokenSignsEmailAndTouchesLogin(t *testing.T) {
	store, _, _, svc := newAuthFixture()
	ctx := context.Background()
	_, err := svc.Register(ctx, &dto.RegisterUserRequest{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	signed, err := svc.IssueToken(ctx, &dto.TokenRequest{Email: "ana@example.com"})
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "ana@example.com", claims["email"])

	require.NotNil(t, store.Users["ana@example.com"].LastLoginAt)
}

func TestResolvePrincipal(t *testing.T) {
	store, _, roles, svc := newAuthFixture()
	ctx := context.Background()
	store.Users["boss@example.com"] = &entity.User{Email: "boss@example.com", Role: entity.UserRoleAdmin, Status: entity.UserStatusActive}
	store.Users["bad@example.com"] = &entity.User{Email: "bad@example.com", Role: entity.UserRoleUser, Status: entity.UserStatusBan}

	t.Run("unknown email is a plain user", func(t *testing.T) {
		p, err := svc.ResolvePrincipal(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, p.IsAdmin())
	})

	t.Run("stored admin role", func(t *testing.T) {
		p, err := svc.ResolvePrincipal(ctx, "boss@example.com")
		require.NoError(t, err)
		assert.True(t, p.IsAdmin())
	})

	t.Run("banned account is refused", func(t *testing.T) {
		_, err := svc.ResolvePrincipal(ctx, "bad@example.com")
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("role is served from cache until invalidated", func(t *testing.T) {
		store.Users["boss@example.com"].Role = entity.UserRoleUser

		p, err := svc.ResolvePrincipal(ctx, "boss@example.com")
		require.NoError(t, err)
		assert.True(t, p.IsAdmin())

		roles.Invalidate("boss@example.com")
		p, err = svc.ResolvePrincipal(ctx, "boss@example.com")
		require.NoError(t, err)
		assert.False(t, p.IsAdmin())
	})
}

func TestCheckAdmin(t *testing.T) {
	_, _, _, svc := newAuthFixture()
	admin := entity.Principal{Email: "boss@example.com", Role: entity.UserRoleAdmin}

	res, err := svc.CheckAdmin(context.Background(), admin, "boss@example.com")
	require.NoError(t, err)
	assert.True(t, res.Admin)

	_, err = svc.CheckAdmin(context.Background(), admin, "other@example.com")
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}
