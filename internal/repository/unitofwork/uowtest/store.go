// Package uowtest provides an in-memory unit of work for service and domain tests.
package uowtest

import (
	"context"
	"errors"
	"sync"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/contract"
	"pet-house-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrInjected = errors.New("injected store failure")

// Store is shared by every unit of work created from its Factory. Begin snapshots it and
// Rollback restores the snapshot, so tests observe real transactional behaviour.
type Store struct {
	mu sync.Mutex

	Users     map[string]*entity.User
	Pets      map[uuid.UUID]*entity.Pet
	Campaigns map[uuid.UUID]*entity.DonationCampaign
	Payments  map[uuid.UUID]*entity.DonationPayment
	Refunds   []*entity.Refund
	Requests  map[uuid.UUID]*entity.AdoptionRequest

	// Failure injection
	FailSum           error
	FailLedger        error
	FailRefundCreate  error
	FailPaymentDelete error
	FailRejectOthers  error

	Commits   int
	Rollbacks int
	Locks     []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		Users:     map[string]*entity.User{},
		Pets:      map[uuid.UUID]*entity.Pet{},
		Campaigns: map[uuid.UUID]*entity.DonationCampaign{},
		Payments:  map[uuid.UUID]*entity.DonationPayment{},
		Requests:  map[uuid.UUID]*entity.AdoptionRequest{},
	}
}

type snapshot struct {
	users     map[string]entity.User
	pets      map[uuid.UUID]entity.Pet
	campaigns map[uuid.UUID]entity.DonationCampaign
	payments  map[uuid.UUID]entity.DonationPayment
	refunds   []entity.Refund
	requests  map[uuid.UUID]entity.AdoptionRequest
}

func (s *Store) snapshot() *snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		users:     map[string]entity.User{},
		pets:      map[uuid.UUID]entity.Pet{},
		campaigns: map[uuid.UUID]entity.DonationCampaign{},
		payments:  map[uuid.UUID]entity.DonationPayment{},
		requests:  map[uuid.UUID]entity.AdoptionRequest{},
	}
	for k, v := range s.Users {
		snap.users[k] = *v
	}
	for k, v := range s.Pets {
		snap.pets[k] = *v
	}
	for k, v := range s.Campaigns {
		snap.campaigns[k] = *v
	}
	for k, v := range s.Payments {
		snap.payments[k] = *v
	}
	for _, v := range s.Refunds {
		snap.refunds = append(snap.refunds, *v)
	}
	for k, v := range s.Requests {
		snap.requests[k] = *v
	}
	return snap
}

func (s *Store) restore(snap *snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Users = map[string]*entity.User{}
	for k, v := range snap.users {
		v := v
		s.Users[k] = &v
	}
	s.Pets = map[uuid.UUID]*entity.Pet{}
	for k, v := range snap.pets {
		v := v
		s.Pets[k] = &v
	}
	s.Campaigns = map[uuid.UUID]*entity.DonationCampaign{}
	for k, v := range snap.campaigns {
		v := v
		s.Campaigns[k] = &v
	}
	s.Payments = map[uuid.UUID]*entity.DonationPayment{}
	for k, v := range snap.payments {
		v := v
		s.Payments[k] = &v
	}
	s.Refunds = nil
	for _, v := range snap.refunds {
		v := v
		s.Refunds = append(s.Refunds, &v)
	}
	s.Requests = map[uuid.UUID]*entity.AdoptionRequest{}
	for k, v := range snap.requests {
		v := v
		s.Requests[k] = &v
	}
}

// Factory implements unitofwork.RepositoryFactory over a Store.
type Factory struct {
	Store *Store
}

func NewFactory(store *Store) *Factory {
	return &Factory{Store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.Store}
}

type UnitOfWork struct {
	store *Store
	snap  *snapshot
}

func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.snap != nil {
		return errors.New("transaction already started")
	}
	u.snap = u.store.snapshot()
	return nil
}

func (u *UnitOfWork) Commit() error {
	if u.snap == nil {
		return errors.New("no transaction to commit")
	}
	u.snap = nil
	u.store.mu.Lock()
	u.store.Commits++
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Rollback() error {
	if u.snap == nil {
		return nil
	}
	u.store.restore(u.snap)
	u.snap = nil
	u.store.mu.Lock()
	u.store.Rollbacks++
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return &userRepo{store: u.store}
}

func (u *UnitOfWork) PetRepository() contract.PetRepository {
	return &petRepo{store: u.store}
}

func (u *UnitOfWork) CampaignRepository() contract.CampaignRepository {
	return &campaignRepo{store: u.store}
}

func (u *UnitOfWork) DonationPaymentRepository() contract.DonationPaymentRepository {
	return &paymentRepo{store: u.store}
}

func (u *UnitOfWork) RefundRepository() contract.RefundRepository {
	return &refundRepo{store: u.store}
}

func (u *UnitOfWork) AdoptionRequestRepository() contract.AdoptionRequestRepository {
	return &requestRepo{store: u.store}
}
