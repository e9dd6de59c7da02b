package service

import (
	"context"
	"strings"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/admin/mapper"
	"pet-house-be/pkg/donation/progress"

	"github.com/google/uuid"
)

const randomCampaignCount = 3

type ICampaignService interface {
	List(ctx context.Context, sort entity.CampaignSort, page serverutils.Page) (*dto.CampaignPageResponse, error)
	Random(ctx context.Context) ([]dto.CampaignResponse, error)
	Donations(ctx context.Context, id uuid.UUID) ([]dto.DonationResponse, error)
	Create(ctx context.Context, principal entity.Principal, req *dto.CampaignRequest) (*dto.CampaignResponse, error)
	Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.CampaignProgressResponse, error)
	CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error)
	Upsert(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.CampaignRequest) (*dto.UpsertResponse[dto.CampaignResponse], error)
	TogglePause(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PauseResponse, error)
}

type campaignService struct {
	uowFactory unitofwork.RepositoryFactory
	progress   *progress.Aggregator
	logger     logger.ILogger
	now        func() time.Time
}

func NewCampaignService(uowFactory unitofwork.RepositoryFactory, progress *progress.Aggregator, logger logger.ILogger) ICampaignService {
	return &campaignService{
		uowFactory: uowFactory,
		progress:   progress,
		logger:     logger,
		now:        time.Now,
	}
}

// ParseCampaignDate reads a DD,MM,YYYY date.
func ParseCampaignDate(value string) (time.Time, error) {
	t, err := time.Parse(entity.CampaignDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, apperror.InvalidInput("donation_last_date must be DD,MM,YYYY")
	}
	return t, nil
}

func (s *campaignService) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}

// List shows campaigns still accepting donations. Anything other than Asc sorts descending.
func (s *campaignService) List(ctx context.Context, sort entity.CampaignSort, page serverutils.Page) (*dto.CampaignPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	active := specification.CampaignActiveOn{Date: s.today()}

	total, err := uow.CampaignRepository().Count(ctx, active)
	if err != nil {
		return nil, apperror.Store(err)
	}

	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		active,
		specification.OrderBy{Field: "donation_last_date", Desc: sort != entity.CampaignSortAsc},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.CampaignPageResponse{
		Items: mapper.CampaignsToResponse(campaigns),
		Total: total,
		Page:  page.Page + 1,
		Limit: page.Limit,
	}, nil
}

func (s *campaignService) Random(ctx context.Context) ([]dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.CampaignActiveOn{Date: s.today()},
		specification.CampaignPaused{Paused: false},
		specification.RandomOrder{},
		specification.Pagination{Limit: randomCampaignCount},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.CampaignsToResponse(campaigns), nil
}

func (s *campaignService) Donations(ctx context.Context, id uuid.UUID) ([]dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	payments, err := uow.DonationPaymentRepository().FindAll(ctx,
		specification.ByCampaign{CampaignID: id},
		specification.OrderBy{Field: "date", Desc: true},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.DonationsToResponse(payments), nil
}

func (s *campaignService) Create(ctx context.Context, principal entity.Principal, req *dto.CampaignRequest) (*dto.CampaignResponse, error) {
	campaign := &entity.DonationCampaign{
		Id:          uuid.New(),
		AuthorEmail: principal.Email,
		CreatedAt:   time.Now(),
	}
	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, apperror.Store(err)
	}

	s.logger.Info("CAMPAIGN", "Campaign created", map[string]interface{}{
		"campaign_id": campaign.Id.String(),
		"author":      principal.Email,
	})

	res := mapper.CampaignToResponse(campaign)
	return &res, nil
}

func (s *campaignService) Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.CampaignProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.AuthoredBy{Email: principal.Email},
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

func (s *campaignService) CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.CampaignRepository().Count(ctx, specification.AuthoredBy{Email: principal.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func (s *campaignService) Show(ctx context.Context, id uuid.UUID) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := findCampaign(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	res := mapper.CampaignToResponse(campaign)
	return &res, nil
}

// Upsert updates the campaign if it exists, otherwise inserts one under a server-generated id.
// Pause state, author and creation time survive an update.
func (s *campaignService) Upsert(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.CampaignRequest) (*dto.UpsertResponse[dto.CampaignResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := uow.CampaignRepository().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}

	if campaign == nil {
		created, err := s.Create(ctx, principal, req)
		if err != nil {
			return nil, err
		}
		return &dto.UpsertResponse[dto.CampaignResponse]{Created: true, Item: *created}, nil
	}

	if !principal.CanActAs(campaign.AuthorEmail) {
		return nil, apperror.Forbidden("only the author or an admin can edit this campaign")
	}
	if err := applyCampaignRequest(campaign, req); err != nil {
		return nil, err
	}
	if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.UpsertResponse[dto.CampaignResponse]{Created: false, Item: mapper.CampaignToResponse(campaign)}, nil
}

func (s *campaignService) TogglePause(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PauseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := findCampaign(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if !principal.CanActAs(campaign.AuthorEmail) {
		return nil, apperror.Forbidden("only the author or an admin can pause this campaign")
	}

	next := !campaign.Pause
	if err := uow.CampaignRepository().SetPause(ctx, id, next); err != nil {
		return nil, apperror.Store(err)
	}

	s.logger.Info("CAMPAIGN", "Campaign pause toggled", map[string]interface{}{
		"campaign_id": id.String(),
		"pause":       next,
		"by":          principal.Email,
	})
	return &dto.PauseResponse{Pause: next}, nil
}

func findCampaign(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.DonationCampaign, error) {
	campaign, err := uow.CampaignRepository().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if campaign == nil {
		return nil, apperror.NotFound("campaign not found")
	}
	return campaign, nil
}

func applyCampaignRequest(c *entity.DonationCampaign, req *dto.CampaignRequest) error {
	lastDate, err := ParseCampaignDate(req.DonationLastDate)
	if err != nil {
		return err
	}
	c.PetName = req.PetName
	c.DonationImg = req.DonationImg
	c.MaxDonation = req.MaxDonation
	c.DonationLastDate = lastDate
	c.ShortDescription = req.ShortDescription
	c.LongDescription = req.LongDescription
	if req.AuthorName != "" {
		c.AuthorName = req.AuthorName
	}
	return nil
}
