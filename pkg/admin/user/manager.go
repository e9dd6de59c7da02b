package user

import (
	"context"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
)

// InactiveAfter is how long without a login before a member counts as inactive.
const InactiveAfter = 7 * 24 * time.Hour

// RoleInvalidator drops a cached role so the next request sees the stored one.
type RoleInvalidator interface {
	Invalidate(email string)
}

// Manager handles user-related admin operations
type Manager struct {
	logger logger.ILogger
	roles  RoleInvalidator
	now    func() time.Time
}

func NewManager(logger logger.ILogger, roles RoleInvalidator) *Manager {
	return &Manager{
		logger: logger,
		roles:  roles,
		now:    time.Now,
	}
}

// MakeAdmin promotes a user. Promoting an existing admin is a no-op.
func (m *Manager) MakeAdmin(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Principal, email string) (*entity.User, error) {
	user, err := m.find(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.UserRoleAdmin {
		if err := uow.UserRepository().UpdateRole(ctx, email, entity.UserRoleAdmin); err != nil {
			return nil, apperror.Store(err)
		}
		user.Role = entity.UserRoleAdmin
		m.roles.Invalidate(email)
	}

	m.logger.Info("ADMIN_USER", "User promoted to admin", map[string]interface{}{
		"email": email,
		"by":    actor.Email,
	})
	return user, nil
}

// ToggleBan flips between Active and Ban based on the status the caller last saw,
// so a stale double click does not undo itself.
func (m *Manager) ToggleBan(ctx context.Context, uow unitofwork.UnitOfWork, actor entity.Principal, email string, current entity.UserStatus) (*entity.User, error) {
	if email == actor.Email {
		return nil, apperror.InvalidInput("admins cannot ban themselves")
	}

	user, err := m.find(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	next := entity.UserStatusBan
	if current == entity.UserStatusBan {
		next = entity.UserStatusActive
	}

	if err := uow.UserRepository().UpdateStatus(ctx, email, next); err != nil {
		return nil, apperror.Store(err)
	}
	user.Status = next
	m.roles.Invalidate(email)

	m.logger.Info("ADMIN_USER", "User status changed", map[string]interface{}{
		"email":  email,
		"status": string(next),
		"by":     actor.Email,
	})
	return user, nil
}

// MemberStats counts Active/Inactive by last login and User/Admin by role.
func (m *Manager) MemberStats(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.MemberStats, error) {
	repo := uow.UserRepository()
	cutoff := m.now().Add(-InactiveAfter)

	all, err := repo.Count(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	inactive, err := repo.Count(ctx, specification.LastLoginBefore{Time: cutoff})
	if err != nil {
		return nil, apperror.Store(err)
	}
	admins, err := repo.Count(ctx, specification.ByRole{Role: string(entity.UserRoleAdmin)})
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &entity.MemberStats{
		Active:   all - inactive,
		Inactive: inactive,
		All:      all,
		User:     all - admins,
		Admin:    admins,
	}, nil
}

func (m *Manager) find(ctx context.Context, uow unitofwork.UnitOfWork, email string) (*entity.User, error) {
	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return user, nil
}
