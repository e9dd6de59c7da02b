package service

import (
	"context"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/memory"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/activity"
	"pet-house-be/pkg/admin/mapper"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type IAuthService interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (string, error)
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegisterUserResponse, error)
	GetStatus(ctx context.Context, email string) (*dto.UserStatusResponse, error)
	CheckAdmin(ctx context.Context, principal entity.Principal, email string) (*dto.CheckAdminResponse, error)
	ResolvePrincipal(ctx context.Context, email string) (entity.Principal, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	roles      *memory.RoleCache
	publisher  activity.Publisher
	logger     logger.ILogger
	secret     []byte
	tokenTTL   time.Duration
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	roles *memory.RoleCache,
	publisher activity.Publisher,
	logger logger.ILogger,
	secret string,
	tokenTTL time.Duration,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		roles:      roles,
		publisher:  publisher,
		logger:     logger,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
	}
}

// IssueToken signs a token for the given email and records the login. Identity is asserted
// by the frontend's identity provider; this endpoint only mints the session cookie.
func (s *authService) IssueToken(ctx context.Context, req *dto.TokenRequest) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": req.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}
	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().TouchLastLogin(ctx, req.Email, now); err != nil {
		s.logger.Warn("AUTH", "Failed to record last login", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
	}

	return signedToken, nil
}

// Register is idempotent by email: an existing user is returned unchanged.
func (s *authService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.RegisterUserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.UserRepository()

	existing, err := repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if existing != nil {
		return &dto.RegisterUserResponse{Created: false, User: mapper.UserToProfileResponse(existing)}, nil
	}

	user := &entity.User{
		Id:        uuid.New(),
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      entity.UserRoleUser,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now(),
	}

	if err := repo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if again, findErr := repo.FindByEmail(ctx, req.Email); findErr == nil && again != nil {
			return &dto.RegisterUserResponse{Created: false, User: mapper.UserToProfileResponse(again)}, nil
		}
		return nil, apperror.Store(err)
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"email": user.Email})
	s.publisher.PublishUserRegistered(ctx, user)

	return &dto.RegisterUserResponse{Created: true, User: mapper.UserToProfileResponse(user)}, nil
}

func (s *authService) GetStatus(ctx context.Context, email string) (*dto.UserStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindByEmail(ctx, email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}
	return &dto.UserStatusResponse{Email: user.Email, Status: string(user.Status)}, nil
}

func (s *authService) CheckAdmin(ctx context.Context, principal entity.Principal, email string) (*dto.CheckAdminResponse, error) {
	if principal.Email != email {
		return nil, apperror.Forbidden("forbidden access")
	}
	return &dto.CheckAdminResponse{Admin: principal.IsAdmin()}, nil
}

// ResolvePrincipal reads the stored role through the role cache. Unknown emails are plain
// users; banned accounts are refused.
func (s *authService) ResolvePrincipal(ctx context.Context, email string) (entity.Principal, error) {
	cached, ok := s.roles.Get(email)
	if !ok {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		user, err := uow.UserRepository().FindByEmail(ctx, email)
		if err != nil {
			return entity.Principal{}, apperror.Store(err)
		}

		cached = memory.CachedRole{Role: entity.UserRoleUser, Status: entity.UserStatusActive}
		if user != nil {
			cached = memory.CachedRole{Role: user.Role, Status: user.Status}
		}
		s.roles.Save(email, cached)
	}

	if cached.Status == entity.UserStatusBan {
		return entity.Principal{}, apperror.Forbidden("account is banned")
	}
	return entity.Principal{Email: email, Role: cached.Role}, nil
}
