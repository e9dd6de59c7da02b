package service

import (
	"context"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/donation/history"

	"golang.org/x/sync/errgroup"
)

type IDashboardService interface {
	History(ctx context.Context, principal entity.Principal) (*entity.DashboardHistory, error)
	Counts(ctx context.Context, principal entity.Principal) (*dto.UserDashboardCountsResponse, error)
}

type dashboardService struct {
	uowFactory unitofwork.RepositoryFactory
	history    *history.Builder
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, history *history.Builder) IDashboardService {
	return &dashboardService{
		uowFactory: uowFactory,
		history:    history,
	}
}

// History covers donations and refunds on campaigns the caller authored.
func (s *dashboardService) History(ctx context.Context, principal entity.Principal) (*entity.DashboardHistory, error) {
	return s.history.Build(ctx, s.uowFactory.NewUnitOfWork(ctx), history.AuthorScope(principal.Email))
}

func (s *dashboardService) Counts(ctx context.Context, principal entity.Principal) (*dto.UserDashboardCountsResponse, error) {
	mine := specification.AuthoredBy{Email: principal.Email}
	var counts entity.UserDashboardCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.uowFactory.NewUnitOfWork(gctx).PetRepository().Count(gctx, mine)
		counts.Pets = n
		return err
	})
	g.Go(func() error {
		n, err := s.uowFactory.NewUnitOfWork(gctx).AdoptionRequestRepository().Count(gctx, mine)
		counts.Requests = n
		return err
	})
	g.Go(func() error {
		n, err := s.uowFactory.NewUnitOfWork(gctx).CampaignRepository().Count(gctx, mine)
		counts.Campaigns = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.UserDashboardCountsResponse{
		Pets:      counts.Pets,
		Requests:  counts.Requests,
		Campaigns: counts.Campaigns,
	}, nil
}
