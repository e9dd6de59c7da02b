package service

import (
	"context"
	"encoding/json"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/pkg/serverutils"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IPetService interface {
	List(ctx context.Context, filter entity.PetFilter, page serverutils.Page) (*dto.PetPageResponse, error)
	Options(ctx context.Context) ([]string, error)
	Create(ctx context.Context, principal entity.Principal, req *dto.PetRequest) (*dto.PetResponse, error)
	Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.PetResponse, error)
	CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error)
	Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PetDetailResponse, error)
	Upsert(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.PetRequest) (*dto.UpsertResponse[dto.PetResponse], error)
	MarkAdopted(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.UpdateAdoptedResponse, error)
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}

type petService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewPetService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, logger logger.ILogger) IPetService {
	return &petService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

// List shows unadopted pets, newest first.
func (s *petService) List(ctx context.Context, filter entity.PetFilter, page serverutils.Page) (*dto.PetPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	filters := []specification.Specification{
		specification.PetAdopted{Adopted: false},
		specification.PetNameContains{Search: filter.Search},
		specification.PetCategoryContains{Category: filter.Category},
	}

	total, err := uow.PetRepository().Count(ctx, filters...)
	if err != nil {
		return nil, apperror.Store(err)
	}

	pets, err := uow.PetRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &dto.PetPageResponse{
		Items: mapper.PetsToResponse(pets),
		Total: total,
		Page:  page.Page + 1,
		Limit: page.Limit,
	}, nil
}

func (s *petService) Options(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	names, err := uow.PetRepository().ListNames(ctx, specification.PetAdopted{Adopted: false})
	if err != nil {
		return nil, apperror.Store(err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (s *petService) Create(ctx context.Context, principal entity.Principal, req *dto.PetRequest) (*dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet := &entity.Pet{
		Id:          uuid.New(),
		AuthorEmail: principal.Email,
		CreatedAt:   time.Now(),
	}
	applyPetRequest(pet, req)

	if err := uow.PetRepository().Create(ctx, pet); err != nil {
		return nil, apperror.Store(err)
	}

	res := mapper.PetToResponse(pet)
	return &res, nil
}

func (s *petService) Mine(ctx context.Context, principal entity.Principal, page serverutils.Page) ([]dto.PetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pets, err := uow.PetRepository().FindAll(ctx,
		specification.AuthoredBy{Email: principal.Email},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return mapper.PetsToResponse(pets), nil
}

func (s *petService) CountMine(ctx context.Context, principal entity.Principal) (*dto.CountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.PetRepository().Count(ctx, specification.AuthoredBy{Email: principal.Email})
	if err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.CountResponse{Count: count}, nil
}

// Show includes the caller's own adoption request for the pet, if any.
func (s *petService) Show(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.PetDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet, err := uow.PetRepository().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet == nil {
		return nil, apperror.NotFound("pet not found")
	}

	own, err := uow.AdoptionRequestRepository().FindOne(ctx,
		specification.ByPet{PetID: id},
		specification.ByAdopter{Email: principal.Email},
	)
	if err != nil {
		return nil, apperror.Store(err)
	}

	res := &dto.PetDetailResponse{PetResponse: mapper.PetToResponse(pet)}
	if own != nil {
		r := mapper.AdoptionToResponse(own)
		res.AdoptRequest = &r
	}
	return res, nil
}

// Upsert updates the pet if it exists, otherwise inserts a new pet under a server-generated id.
func (s *petService) Upsert(ctx context.Context, principal entity.Principal, id uuid.UUID, req *dto.PetRequest) (*dto.UpsertResponse[dto.PetResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet, err := uow.PetRepository().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}

	if pet == nil {
		created, err := s.Create(ctx, principal, req)
		if err != nil {
			return nil, err
		}
		return &dto.UpsertResponse[dto.PetResponse]{Created: true, Item: *created}, nil
	}

	if !principal.CanActAs(pet.AuthorEmail) {
		return nil, apperror.Forbidden("only the author or an admin can edit this pet")
	}

	applyPetRequest(pet, req)
	if err := uow.PetRepository().Update(ctx, pet); err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.UpsertResponse[dto.PetResponse]{Created: false, Item: mapper.PetToResponse(pet)}, nil
}

func (s *petService) MarkAdopted(ctx context.Context, principal entity.Principal, id uuid.UUID) (*dto.UpdateAdoptedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet, err := s.ownedPet(ctx, uow, principal, id)
	if err != nil {
		return nil, err
	}

	if err := uow.PetRepository().SetAdopted(ctx, pet.Id, true); err != nil {
		return nil, apperror.Store(err)
	}
	return &dto.UpdateAdoptedResponse{Adopted: true}, nil
}

func (s *petService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	pet, err := s.ownedPet(ctx, uow, principal, id)
	if err != nil {
		return err
	}

	if err := uow.PetRepository().Delete(ctx, pet.Id); err != nil {
		return apperror.Store(err)
	}

	if pet.ImageDeleteURL != "" {
		payload, _ := json.Marshal(dto.PetImageCleanupMessage{PetId: pet.Id, ImageDeleteURL: pet.ImageDeleteURL})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("PET", "Failed to queue image cleanup", map[string]interface{}{
				"pet_id": pet.Id.String(),
				"error":  err.Error(),
			})
		}
	}

	s.logger.Info("PET", "Pet deleted", map[string]interface{}{
		"pet_id": pet.Id.String(),
		"by":     principal.Email,
	})
	return nil
}

func (s *petService) ownedPet(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, id uuid.UUID) (*entity.Pet, error) {
	pet, err := uow.PetRepository().FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet == nil {
		return nil, apperror.NotFound("pet not found")
	}
	if !principal.CanActAs(pet.AuthorEmail) {
		return nil, apperror.Forbidden("only the author or an admin can change this pet")
	}
	return pet, nil
}

func applyPetRequest(pet *entity.Pet, req *dto.PetRequest) {
	pet.PetName = req.PetName
	pet.PetImg = req.PetImg
	pet.ImageDeleteURL = req.ImageDeleteURL
	pet.Age = req.Age
	pet.Location = req.Location
	pet.Category = req.Category
	pet.ShortDescription = req.ShortDescription
	pet.LongDescription = req.LongDescription
	pet.AuthorName = req.AuthorName
}
