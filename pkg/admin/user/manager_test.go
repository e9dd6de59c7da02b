package user

import (
	"context"
	"testing"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRoles struct {
	invalidated []string
}

func (r *recordingRoles) Invalidate(email string) {
	r.invalidated = append(r.invalidated, email)
}

var admin = entity.Principal{Email: "root@example.com", Role: entity.UserRoleAdmin}

func setup(users ...*entity.User) (*Manager, *uowtest.Store, *recordingRoles) {
	store := uowtest.NewStore()
	for _, u := range users {
		u.Id = uuid.New()
		store.Users[u.Email] = u
	}
	roles := &recordingRoles{}
	return NewManager(logger.NewNopLogger(), roles), store, roles
}

func TestMakeAdmin(t *testing.T) {
	m, store, roles := setup(&entity.User{Email: "a@example.com", Role: entity.UserRoleUser})
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	user, err := m.MakeAdmin(context.Background(), uow, admin, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, user.Role)
	assert.Equal(t, entity.UserRoleAdmin, store.Users["a@example.com"].Role)
	assert.Equal(t, []string{"a@example.com"}, roles.invalidated)

	_, err = m.MakeAdmin(context.Background(), uow, admin, "ghost@example.com")
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestToggleBan(t *testing.T) {
	m, store, roles := setup(&entity.User{Email: "a@example.com", Status: entity.UserStatusActive})
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	user, err := m.ToggleBan(context.Background(), uow, admin, "a@example.com", entity.UserStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusBan, user.Status)

	user, err = m.ToggleBan(context.Background(), uow, admin, "a@example.com", entity.UserStatusBan)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.Len(t, roles.invalidated, 2)

	_, err = m.ToggleBan(context.Background(), uow, admin, admin.Email, entity.UserStatusActive)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
}

func TestMemberStats(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)
	stale := now.Add(-8 * 24 * time.Hour)

	m, store, _ := setup(
		&entity.User{Email: "a@example.com", Role: entity.UserRoleUser, LastLoginAt: &recent},
		&entity.User{Email: "b@example.com", Role: entity.UserRoleUser, LastLoginAt: &stale},
		&entity.User{Email: "c@example.com", Role: entity.UserRoleUser},
		&entity.User{Email: "root@example.com", Role: entity.UserRoleAdmin, LastLoginAt: &recent},
	)
	m.now = func() time.Time { return now }

	stats, err := m.MemberStats(context.Background(), uowtest.NewFactory(store).NewUnitOfWork(context.Background()))
	require.NoError(t, err)
	assert.Equal(t, &entity.MemberStats{Active: 2, Inactive: 2, All: 4, User: 3, Admin: 1}, stats)
}
