package service

import (
	"context"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/admin/mapper"
	"pet-house-be/pkg/adoption"

	"github.com/google/uuid"
)

type IAdoptionService interface {
	Create(ctx context.Context, principal entity.Principal, req *dto.CreateAdoptionRequest) (*dto.AdoptionRequestResponse, error)

	Incoming(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error)
	CountIncoming(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	Accepted(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error)
	CountAccepted(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	Outgoing(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error)
	CountOutgoing(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	CountReceived(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)

	Accept(ctx context.Context, principal entity.Principal, requestId, petId uuid.UUID) (*dto.AcceptAdoptionResponse, error)
	Reject(ctx context.Context, principal entity.Principal, requestId uuid.UUID) (*dto.AdoptionRequestResponse, error)
	Withdraw(ctx context.Context, principal entity.Principal, requestId uuid.UUID) error
}

type adoptionService struct {
	uowFactory unitofwork.RepositoryFactory
	resolver   *adoption.Resolver
	logger     logger.ILogger
}

func NewAdoptionService(uowFactory unitofwork.RepositoryFactory, resolver *adoption.Resolver, logger logger.ILogger) IAdoptionService {
	return &adoptionService{
		uowFactory: uowFactory,
		resolver:   resolver,
		logger:     logger,
	}
}

// Create files a Pending request. Pet details are copied from the pet, not trusted from the body.
func (s *adoptionService) Create(ctx context.Context, principal entity.Principal, req *dto.CreateAdoptionRequest) (*dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pet, err := uow.PetRepository().FindByID(ctx, req.PetId)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet == nil {
		return nil, apperror.NotFound("pet not found")
	}
	if pet.Adopted {
		return nil, apperror.InvalidInput("pet is already adopted")
	}
	if pet.AuthorEmail == principal.Email {
		return nil, apperror.InvalidInput("you cannot adopt your own pet")
	}

	existing, err := uow.AdoptionRequestRepository().FindOne(ctx,
		specification.ByPet{PetID: pet.Id},
		specification.ByAdopter{Email: principal.Email},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if existing != nil {
		return nil, apperror.InvalidInput("you already requested this pet")
	}

	request := &entity.AdoptionRequest{
		Id:          uuid.New(),
		PetId:       pet.Id,
		PetName:     pet.PetName,
		PetImg:      pet.PetImg,
		AdoptEmail:  principal.Email,
		AdoptName:   req.AdoptName,
		Phone:       req.Phone,
		Address:     req.Address,
		AuthorEmail: pet.AuthorEmail,
		Status:      entity.AdoptionStatusPending,
		CreatedAt:   time.Now(),
	}
	if err := uow.AdoptionRequestRepository().Create(ctx, request); err != nil {
		return nil, apperror.Store(err)
	}

	s.logger.Info("ADOPTION", "Adoption request created", map[string]interface{}{
		"request_id": request.Id.String(),
		"pet_id":     pet.Id.String(),
		"adopter":    principal.Email,
	})

	res := mapper.AdoptionToResponse(request)
	return &res, nil
}

func (s *adoptionService) list(ctx context.Context, page serverutils.Page, filters ...specification.Specification) ([]dto.AdoptionRequestResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	reqs, err := uow.AdoptionRequestRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.AdoptionsToResponse(reqs), nil
}

func (s *adoptionService) count(ctx context.Context, filters ...specification.Specification) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.AdoptionRequestRepository().Count(ctx, filters...)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

func pendingOnMyPets(principal entity.Principal) []specification.Specification {
	return []specification.Specification{
		specification.AuthoredBy{Email: principal.Email},
		specification.ByAdoptionStatus{Status: string(entity.AdoptionStatusPending)},
	}
}

func acceptedOnMyPets(principal entity.Principal) []specification.Specification {
	return []specification.Specification{
		specification.AuthoredBy{Email: principal.Email},
		specification.ByAdoptionStatus{Status: string(entity.AdoptionStatusAccepted)},
	}
}

func (s *adoptionService) Incoming(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error) {
	return s.list(ctx, page, pendingOnMyPets(principal)...)
}

func (s *adoptionService) CountIncoming(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	return s.count(ctx, pendingOnMyPets(principal)...)
}

func (s *adoptionService) Accepted(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error) {
	return s.list(ctx, page, acceptedOnMyPets(principal)...)
}

func (s *adoptionService) CountAccepted(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	return s.count(ctx, acceptedOnMyPets(principal)...)
}

func (s *adoptionService) Outgoing(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.AdoptionRequestResponse, error) {
	return s.list(ctx, page, specification.ByAdopter{Email: principal.Email})
}

func (s *adoptionService) CountOutgoing(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	return s.count(ctx, specification.ByAdopter{Email: principal.Email})
}

// CountReceived counts every request on the caller's pets, whatever its status.
func (s *adoptionService) CountReceived(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	return s.count(ctx, specification.AuthoredBy{Email: principal.Email})
}

func (s *adoptionService) Accept(ctx context.Context, principal entity.Principal, requestId, petId uuid.UUID) (*dto.AcceptAdoptionResponse, error) {
	outcome, err := s.resolver.Accept(ctx, s.uowFactory.NewUnitOfWork(ctx), principal, requestId, petId)
	if err != nil {
		return nil, err
	}
	return &dto.AcceptAdoptionResponse{
		Accepted: mapper.AdoptionToResponse(outcome.Accepted),
		Rejected: len(outcome.Rejected),
		PetId:    outcome.Pet.Id,
	}, nil
}

func (s *adoptionService) Reject(ctx context.Context, principal entity.Principal, requestId uuid.UUID) (*dto.AdoptionRequestResponse, error) {
	req, err := s.resolver.Reject(ctx, s.uowFactory.NewUnitOfWork(ctx), principal, requestId)
	if err != nil {
		return nil, err
	}
	res := mapper.AdoptionToResponse(req)
	return &res, nil
}

func (s *adoptionService) Withdraw(ctx context.Context, principal entity.Principal, requestId uuid.UUID) error {
	return s.resolver.Withdraw(ctx, s.uowFactory.NewUnitOfWork(ctx), principal, requestId)
}
