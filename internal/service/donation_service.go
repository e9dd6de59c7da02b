package service

import (
	"context"
	"errors"
	"math"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/activity"
	"pet-house-be/pkg/admin/mapper"
	"pet-house-be/pkg/donation/refund"
	"pet-house-be/pkg/payment"

	"github.com/google/uuid"
)

const defaultDonationItem = "Pet House Donation"

type IDonationService interface {
	CreateIntent(ctx context.Context, principal entity.Principal, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	Record(ctx context.Context, principal entity.Principal, req *dto.RecordPaymentRequest) (*dto.DonationResponse, error)
	Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.MyDonationResponse, error)
	CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	Refund(ctx context.Context, principal entity.Principal, paymentId uuid.UUID) (*dto.RefundResponse, error)
	RefundsMine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.RefundResponse, error)
	CountRefundsMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
}

type donationService struct {
	uowFactory unitofwork.RepositoryFactory
	gateway    payment.Gateway
	refunds    *refund.Processor
	history    refund.HistoryInvalidator
	publisher  activity.Publisher
	logger     logger.ILogger
}

func NewDonationService(
	uowFactory unitofwork.RepositoryFactory,
	gateway payment.Gateway,
	refunds *refund.Processor,
	history refund.HistoryInvalidator,
	publisher activity.Publisher,
	logger logger.ILogger,
) IDonationService {
	return &donationService{
		uowFactory: uowFactory,
		gateway:    gateway,
		refunds:    refunds,
		history:    history,
		publisher:  publisher,
		logger:     logger,
	}
}

// CreateIntent opens a gateway transaction for price (major units). Midtrans charges whole
// rupiah, so price must be a whole number of at least 1. A campaign id, when given, must name
// an unpaused campaign and supplies the item name.
func (s *donationService) CreateIntent(ctx context.Context, principal entity.Principal, req *dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	amount := int64(math.Round(req.Price * 100))
	if amount < 100 || amount%100 != 0 {
		return nil, apperror.InvalidInput("price must be a whole amount of at least 1")
	}

	itemName := defaultDonationItem
	if req.CampaignId != uuid.Nil {
		campaign, err := s.openCampaign(ctx, s.uowFactory.NewUnitOfWork(ctx), req.CampaignId)
		if err != nil {
			return nil, err
		}
		itemName = campaign.PetName
	}

	intent, err := s.gateway.CreatePayment(ctx, payment.PaymentRequest{
		OrderID:       uuid.New().String(),
		Amount:        amount,
		CustomerEmail: principal.Email,
		ItemName:      itemName,
	})
	if err != nil {
		s.logger.Warn("DONATION", "Payment intent failed", map[string]interface{}{
			"email":  principal.Email,
			"amount": amount,
			"error":  err.Error(),
		})
		if errors.Is(err, payment.ErrInvalidAmount) {
			return nil, apperror.InvalidInput(err.Error())
		}
		return nil, apperror.Gateway(err)
	}

	return &dto.PaymentIntentResponse{
		OrderId:      intent.OrderID,
		ClientSecret: intent.ClientToken,
		RedirectURL:  intent.RedirectURL,
		Amount:       amount,
	}, nil
}

// Record stores a settled payment. The contributor is always the caller.
func (s *donationService) Record(ctx context.Context, principal entity.Principal, req *dto.RecordPaymentRequest) (*dto.DonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	campaign, err := s.openCampaign(ctx, uow, req.DonationItemId)
	if err != nil {
		return nil, err
	}

	p := &entity.DonationPayment{
		Id:             uuid.New(),
		DonationItemId: campaign.Id,
		UserEmail:      principal.Email,
		UserName:       req.UserName,
		Amount:         req.Amount,
		Date:           time.Now(),
		TransactionId:  req.TransactionId,
	}
	if err := uow.DonationPaymentRepository().Create(ctx, p); err != nil {
		return nil, apperror.Store(err)
	}

	s.logger.Info("DONATION", "Donation recorded", map[string]interface{}{
		"payment_id":  p.Id.String(),
		"campaign_id": campaign.Id.String(),
		"amount":      p.Amount,
		"by":          principal.Email,
	})

	s.history.Invalidate(ctx, campaign.AuthorEmail)
	s.publisher.PublishDonationReceived(ctx, p)

	res := mapper.DonationToResponse(p)
	return &res, nil
}

func (s *donationService) Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.MyDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, err := uow.DonationPaymentRepository().FindWithCampaign(ctx,
		specification.ByContributor{Email: principal.Email},
		specification.OrderBy{Field: "date", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.MyDonationsToResponse(items), nil
}

func (s *donationService) CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.DonationPaymentRepository().Count(ctx, specification.ByContributor{Email: principal.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func (s *donationService) Refund(ctx context.Context, principal entity.Principal, paymentId uuid.UUID) (*dto.RefundResponse, error) {
	record, err := s.refunds.Refund(ctx, s.uowFactory.NewUnitOfWork(ctx), principal, paymentId)
	if err != nil {
		return nil, err
	}
	res := mapper.RefundToResponse(record)
	return &res, nil
}

func (s *donationService) RefundsMine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	refunds, err := uow.RefundRepository().FindAll(ctx,
		specification.ByContributor{Email: principal.Email},
		specification.OrderBy{Field: "refunded_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.RefundsToResponse(refunds), nil
}

func (s *donationService) CountRefundsMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.RefundRepository().Count(ctx, specification.ByContributor{Email: principal.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func (s *donationService) openCampaign(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.DonationCampaign, error) {
	campaign, err := findCampaign(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if campaign.Pause {
		return nil, apperror.InvalidInput("campaign is paused")
	}
	return campaign, nil
}
