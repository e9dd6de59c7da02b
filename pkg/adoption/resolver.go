package adoption

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/activity"

	"github.com/google/uuid"
)

// Notifier tells requesters how their adoption request ended.
type Notifier interface {
	SendAdoptionOutcome(to, petName string, accepted bool) error
}

// Resolver settles adoption requests. A pet has at most one Accepted request.
type Resolver struct {
	logger    logger.ILogger
	publisher activity.Publisher
	notifier  Notifier
}

func NewResolver(logger logger.ILogger, publisher activity.Publisher, notifier Notifier) *Resolver {
	return &Resolver{
		logger:    logger,
		publisher: publisher,
		notifier:  notifier,
	}
}

// Accept marks requestID as the pet's adopter, rejects every competing request and flags the
// pet adopted, all in one transaction holding the pet's row lock. Having no competitors is fine.
func (r *Resolver) Accept(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, requestID, petID uuid.UUID) (*entity.AdoptionOutcome, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Store(err)
	}
	defer uow.Rollback()

	pet, err := uow.PetRepository().FindByIDForUpdate(ctx, petID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet == nil {
		return nil, apperror.NotFound("pet not found")
	}

	target, err := uow.AdoptionRequestRepository().FindByID(ctx, requestID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if target == nil || target.PetId != petID {
		return nil, apperror.NotFound("adoption request not found for this pet")
	}

	if !principal.CanActAs(pet.AuthorEmail) {
		return nil, apperror.Forbidden("only the pet's author or an admin can accept requests")
	}
	if target.Status != entity.AdoptionStatusPending {
		return nil, apperror.InvalidInput("adoption request is already " + string(target.Status))
	}

	siblings, err := uow.AdoptionRequestRepository().FindByPet(ctx, petID)
	if err != nil {
		return nil, apperror.Store(err)
	}

	var rejected []*entity.AdoptionRequest
	for _, s := range siblings {
		if s.Id == target.Id {
			continue
		}
		if s.Status == entity.AdoptionStatusAccepted {
			return nil, apperror.InvalidInput("pet already has an accepted adopter")
		}
		if s.Status == entity.AdoptionStatusPending {
			s.Status = entity.AdoptionStatusRejected
			rejected = append(rejected, s)
		}
	}

	if _, err := uow.AdoptionRequestRepository().RejectOthers(ctx, petID, target.Id); err != nil {
		return nil, apperror.Store(err)
	}
	if err := uow.AdoptionRequestRepository().UpdateStatus(ctx, target.Id, entity.AdoptionStatusAccepted); err != nil {
		return nil, apperror.Store(err)
	}
	if err := uow.PetRepository().SetAdopted(ctx, petID, true); err != nil {
		return nil, apperror.Store(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Store(err)
	}

	target.Status = entity.AdoptionStatusAccepted
	pet.Adopted = true
	outcome := &entity.AdoptionOutcome{Pet: pet, Accepted: target, Rejected: rejected}

	r.logger.Info("ADOPTION", "Adoption request accepted", map[string]interface{}{
		"pet_id":     petID.String(),
		"request_id": requestID.String(),
		"rejected":   len(rejected),
		"by":         principal.Email,
	})

	r.publisher.PublishAdoptionAccepted(ctx, outcome)
	r.notify(target, pet.PetName, true)
	for _, req := range rejected {
		r.notify(req, pet.PetName, false)
	}

	return outcome, nil
}

// Reject declines a single pending request. The pet stays available.
func (r *Resolver) Reject(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, requestID uuid.UUID) (*entity.AdoptionRequest, error) {
	req, err := uow.AdoptionRequestRepository().FindByID(ctx, requestID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if req == nil {
		return nil, apperror.NotFound("adoption request not found")
	}

	owner := req.AuthorEmail
	pet, err := uow.PetRepository().FindByID(ctx, req.PetId)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if pet != nil {
		owner = pet.AuthorEmail
	}

	if !principal.CanActAs(owner) {
		return nil, apperror.Forbidden("only the pet's author or an admin can reject requests")
	}
	if req.Status != entity.AdoptionStatusPending {
		return nil, apperror.InvalidInput("adoption request is already " + string(req.Status))
	}

	if err := uow.AdoptionRequestRepository().UpdateStatus(ctx, req.Id, entity.AdoptionStatusRejected); err != nil {
		return nil, apperror.Store(err)
	}
	req.Status = entity.AdoptionStatusRejected

	r.notify(req, req.PetName, false)
	return req, nil
}

// Withdraw lets the requester delete their own request while it is not accepted.
func (r *Resolver) Withdraw(ctx context.Context, uow unitofwork.UnitOfWork, principal entity.Principal, requestID uuid.UUID) error {
	req, err := uow.AdoptionRequestRepository().FindByID(ctx, requestID)
	if err != nil {
		return apperror.Store(err)
	}
	if req == nil {
		return apperror.NotFound("adoption request not found")
	}
	if principal.Email != req.AdoptEmail {
		return apperror.Forbidden("only the requester can withdraw a request")
	}
	if req.Status == entity.AdoptionStatusAccepted {
		return apperror.InvalidInput("an accepted request cannot be withdrawn")
	}

	if err := uow.AdoptionRequestRepository().Delete(ctx, req.Id); err != nil {
		return apperror.Store(err)
	}
	return nil
}

func (r *Resolver) notify(req *entity.AdoptionRequest, petName string, accepted bool) {
	if r.notifier == nil || req.AdoptEmail == "" {
		return
	}
	if err := r.notifier.SendAdoptionOutcome(req.AdoptEmail, petName, accepted); err != nil {
		r.logger.Warn("ADOPTION", "Failed to send adoption outcome email", map[string]interface{}{
			"request_id": req.Id.String(),
			"to":         req.AdoptEmail,
			"error":      err.Error(),
		})
	}
}
