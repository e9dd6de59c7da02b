package service

import (
	"context"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/admin/mapper"
	"pet-house-be/pkg/admin/user"
	"pet-house-be/pkg/donation/history"
	"pet-house-be/pkg/donation/progress"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetUsers(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.UserProfileResponse, error)
	CountUsers(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	MakeAdmin(ctx context.Context, principal entity.Principal, email string) (*dto.UpdateRoleResponse, error)
	ToggleBan(ctx context.Context, principal entity.Principal, email string, current string) (*dto.UpdateStatusResponse, error)
	GetMemberStats(ctx context.Context) (*dto.MemberStatsResponse, error)

	GetPets(ctx context.Context, page serverutils.Page) ([]dto.PetResponse, error)
	CountPets(ctx context.Context) (*dto.CountResponse, error)
	ToggleAdopted(ctx context.Context, petId uuid.UUID, current bool) (*dto.UpdateAdoptedResponse, error)

	GetCampaigns(ctx context.Context, page serverutils.Page) ([]dto.CampaignProgressResponse, error)
	CountCampaigns(ctx context.Context) (*dto.CountResponse, error)
	GetDashboardHistory(ctx context.Context) (*entity.DashboardHistory, error)

	GetLogs(ctx context.Context, level string, page serverutils.Page) ([]dto.LogListResponse, error)
	GetLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error)
}

type adminService struct {
	uowFactory  unitofwork.RepositoryFactory
	logger      logger.ILogger
	userManager *user.Manager
	progress    *progress.Aggregator
	history     *history.Builder
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	logger logger.ILogger,
	userManager *user.Manager,
	progress *progress.Aggregator,
	history *history.Builder,
) IAdminService {
	return &adminService{
		uowFactory:  uowFactory,
		logger:      logger,
		userManager: userManager,
		progress:    progress,
		history:     history,
	}
}

// --- Users ---

func (s *adminService) GetUsers(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx,
		specification.ExcludeEmail{Email: principal.Email},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.UsersToProfileResponse(users), nil
}

func (s *adminService) CountUsers(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.UserRepository().Count(ctx, specification.ExcludeEmail{Email: principal.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func (s *adminService) MakeAdmin(ctx context.Context, principal entity.Principal, email string) (*dto.UpdateRoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	u, err := s.userManager.MakeAdmin(ctx, uow, principal, email)
	if err != nil {
		return nil, err
	}
	return &dto.UpdateRoleResponse{Email: u.Email, Role: string(u.Role)}, nil
}

func (s *adminService) ToggleBan(ctx context.Context, principal entity.Principal, email string, current string) (*dto.UpdateStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	u, err := s.userManager.ToggleBan(ctx, uow, principal, email, entity.UserStatus(current))
	if err != nil {
		return nil, err
	}
	return &dto.UpdateStatusResponse{Email: u.Email, Status: string(u.Status)}, nil
}

func (s *adminService) GetMemberStats(ctx context.Context) (*dto.MemberStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := s.userManager.MemberStats(ctx, uow)
	if err != nil {
		return nil, err
	}
	return &dto.MemberStatsResponse{
		Active:   stats.Active,
		Inactive: stats.Inactive,
		All:      stats.All,
		User:     stats.User,
		Admin:    stats.Admin,
	}, nil
}

// --- Pets ---

func (s *adminService) GetPets(ctx context.Context, page serverutils.Page) ([]dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pets, err := uow.PetRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.PetsToResponse(pets), nil
}

func (s *adminService) CountPets(ctx context.Context) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.PetRepository().Count(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

// ToggleAdopted flips the flag relative to the value the admin saw.
func (s *adminService) ToggleAdopted(ctx context.Context, petId uuid.UUID, current bool) (*dto.UpdateAdoptedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet, err := uow.PetRepository().FindByID(ctx, petId)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet == nil {
		return nil, apperror.NotFound("pet not found")
	}

	next := !current
	if err := uow.PetRepository().SetAdopted(ctx, petId, next); err != nil {
		return nil, apperror.Store(err)
	}

	s.logger.Info("ADMIN_PET", "Pet adopted flag changed", map[string]interface{}{
		"pet_id":  petId.String(),
		"adopted": next,
	})
	return &dto.UpdateAdoptedResponse{Adopted: next}, nil
}

// --- Campaigns ---

func (s *adminService) GetCampaigns(ctx context.Context, page serverutils.Page) ([]dto.CampaignProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}

	withProgress, err := s.progress.Attach(ctx, uow, campaigns)
	if err != nil {
		return nil, err
	}
	return mapper.CampaignProgressToResponse(withProgress), nil
}

func (s *adminService) CountCampaigns(ctx context.Context) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CampaignRepository().Count(ctx)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func (s *adminService) GetDashboardHistory(ctx context.Context) (*entity.DashboardHistory, error) {
	return s.history.Build(ctx, s.uowFactory.NewUnitOfWork(ctx), history.AllScope())
}

// --- Logs ---

func (s *adminService) GetLogs(ctx context.Context, level string, page serverutils.Page) ([]dto.LogListResponse, error) {
	entries, err := s.logger.GetLogs(level, page.Limit, page.Offset())
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.LogEntriesToListResponse(entries), nil
}

func (s *adminService) GetLogDetail(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, apperror.NotFound("log not found")
	}
	res := mapper.LogEntryToDetailResponse(*entry)
	return &res, nil
}
