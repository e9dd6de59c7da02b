package adoption

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to       string
	accepted bool
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (n *fakeNotifier) SendAdoptionOutcome(to, petName string, accepted bool) error {
	n.sent = append(n.sent, sentMail{to: to, accepted: accepted})
	return n.err
}

type fakePublisher struct {
	accepted []*entity.AdoptionOutcome
}

func (p *fakePublisher) PublishUserRegistered(context.Context, *entity.User) {}
func (p *fakePublisher) PublishDonationReceived(context.Context, *entity.DonationPayment) {}
func (p *fakePublisher) PublishDonationRefunded(context.Context, *entity.Refund) {}
func (p *fakePublisher) PublishAdoptionAccepted(_ context.Context, o *entity.AdoptionOutcome) {
	p.accepted = append(p.accepted, o)
}

const ownerEmail = "owner@example.com"

var owner = entity.Principal{Email: ownerEmail, Role: entity.UserRoleUser}

type fixture struct {
	store     *uowtest.Store
	factory   *uowtest.Factory
	notifier  *fakeNotifier
	publisher *fakePublisher
	resolver  *Resolver
	pet       *entity.Pet
}

func newFixture() *fixture {
	store := uowtest.NewStore()
	pet := &entity.Pet{Id: uuid.New(), PetName: "Bella", AuthorEmail: ownerEmail}
	store.Pets[pet.Id] = pet

	f := &fixture{
		store:     store,
		factory:   uowtest.NewFactory(store),
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
		pet:       pet,
	}
	f.resolver = NewResolver(logger.NewNopLogger(), f.publisher, f.notifier)
	return f
}

func (f *fixture) addRequest(adopter string, status entity.AdoptionStatus) *entity.AdoptionRequest {
	req := &entity.AdoptionRequest{
		Id:          uuid.New(),
		PetId:       f.pet.Id,
		PetName:     f.pet.PetName,
		AdoptEmail:  adopter,
		AuthorEmail: ownerEmail,
		Status:      status,
		CreatedAt:   time.Now().Add(time.Duration(len(f.store.Requests)) * time.Second),
	}
	f.store.Requests[req.Id] = req
	return req
}

func (f *fixture) accept(principal entity.Principal, requestID, petID uuid.UUID) (*entity.AdoptionOutcome, error) {
	ctx := context.Background()
	return f.resolver.Accept(ctx, f.factory.NewUnitOfWork(ctx), principal, requestID, petID)
}

func TestAcceptSoleRequester(t *testing.T) {
	f := newFixture()
	only := f.addRequest("solo@example.com", entity.AdoptionStatusPending)

	outcome, err := f.accept(owner, only.Id, f.pet.Id)
	require.NoError(t, err)

	assert.Empty(t, outcome.Rejected)
	assert.Equal(t, entity.AdoptionStatusAccepted, f.store.Requests[only.Id].Status)
	assert.True(t, f.store.Pets[f.pet.Id].Adopted)
	assert.Equal(t, 1, f.store.Commits)
	assert.Equal(t, []uuid.UUID{f.pet.Id}, f.store.Locks)
	assert.Equal(t, []sentMail{{to: "solo@example.com", accepted: true}}, f.notifier.sent)
	require.Len(t, f.publisher.accepted, 1)
}

func TestAcceptRejectsEveryCompetitor(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("%d competitors", n), func(t *testing.T) {
			f := newFixture()
			target := f.addRequest("chosen@example.com", entity.AdoptionStatusPending)
			for i := 0; i < n; i++ {
				f.addRequest(fmt.Sprintf("c%d@example.com", i), entity.AdoptionStatusPending)
			}
			earlier := f.addRequest("earlier@example.com", entity.AdoptionStatusRejected)

			outcome, err := f.accept(owner, target.Id, f.pet.Id)
			require.NoError(t, err)
			assert.Len(t, outcome.Rejected, n)

			accepted := 0
			for _, req := range f.store.Requests {
				if req.Status == entity.AdoptionStatusAccepted {
					accepted++
					assert.Equal(t, target.Id, req.Id)
				} else {
					assert.Equal(t, entity.AdoptionStatusRejected, req.Status)
				}
			}
			assert.Equal(t, 1, accepted)
			assert.True(t, f.store.Pets[f.pet.Id].Adopted)

			// Accepted mail plus one per newly rejected request; the earlier rejection is not re-notified.
			assert.Len(t, f.notifier.sent, n+1)
			for _, m := range f.notifier.sent {
				assert.NotEqual(t, earlier.AdoptEmail, m.to)
			}
		})
	}
}

func TestAcceptLeavesOtherPetsAlone(t *testing.T) {
	f := newFixture()
	target := f.addRequest("chosen@example.com", entity.AdoptionStatusPending)

	otherPet := &entity.Pet{Id: uuid.New(), AuthorEmail: ownerEmail}
	f.store.Pets[otherPet.Id] = otherPet
	unrelated := &entity.AdoptionRequest{Id: uuid.New(), PetId: otherPet.Id, Status: entity.AdoptionStatusPending}
	f.store.Requests[unrelated.Id] = unrelated

	_, err := f.accept(owner, target.Id, f.pet.Id)
	require.NoError(t, err)

	assert.Equal(t, entity.AdoptionStatusPending, f.store.Requests[unrelated.Id].Status)
	assert.False(t, f.store.Pets[otherPet.Id].Adopted)
}

func TestAcceptByAdmin(t *testing.T) {
	f := newFixture()
	target := f.addRequest("chosen@example.com", entity.AdoptionStatusPending)

	_, err := f.accept(entity.Principal{Email: "root@example.com", Role: entity.UserRoleAdmin}, target.Id, f.pet.Id)
	require.NoError(t, err)
	assert.True(t, f.store.Pets[f.pet.Id].Adopted)
}

func TestAcceptFailures(t *testing.T) {
	tests := []struct {
		name      string
		principal entity.Principal
		setup     func(f *fixture) (requestID, petID uuid.UUID)
		kind      apperror.Kind
	}{
		{
			name:      "missing pet",
			principal: owner,
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				return f.addRequest("a@example.com", entity.AdoptionStatusPending).Id, uuid.New()
			},
			kind: apperror.KindNotFound,
		},
		{
			name:      "missing request",
			principal: owner,
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				return uuid.New(), f.pet.Id
			},
			kind: apperror.KindNotFound,
		},
		{
			name:      "request belongs to another pet",
			principal: owner,
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				other := &entity.Pet{Id: uuid.New(), AuthorEmail: ownerEmail}
				f.store.Pets[other.Id] = other
				return f.addRequest("a@example.com", entity.AdoptionStatusPending).Id, other.Id
			},
			kind: apperror.KindNotFound,
		},
		{
			name:      "caller is not the author",
			principal: entity.Principal{Email: "stranger@example.com", Role: entity.UserRoleUser},
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				return f.addRequest("a@example.com", entity.AdoptionStatusPending).Id, f.pet.Id
			},
			kind: apperror.KindForbidden,
		},
		{
			name:      "target already rejected",
			principal: owner,
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				return f.addRequest("a@example.com", entity.AdoptionStatusRejected).Id, f.pet.Id
			},
			kind: apperror.KindInvalidInput,
		},
		{
			name:      "another request already accepted",
			principal: owner,
			setup: func(f *fixture) (uuid.UUID, uuid.UUID) {
				f.addRequest("winner@example.com", entity.AdoptionStatusAccepted)
				return f.addRequest("late@example.com", entity.AdoptionStatusPending).Id, f.pet.Id
			},
			kind: apperror.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			requestID, petID := tt.setup(f)
			before := map[uuid.UUID]entity.AdoptionStatus{}
			for id, req := range f.store.Requests {
				before[id] = req.Status
			}

			_, err := f.accept(tt.principal, requestID, petID)
			require.Error(t, err)
			assert.Equal(t, tt.kind, apperror.KindOf(err))

			assert.Zero(t, f.store.Commits)
			assert.False(t, f.store.Pets[f.pet.Id].Adopted)
			for id, req := range f.store.Requests {
				assert.Equal(t, before[id], req.Status)
			}
			assert.Empty(t, f.notifier.sent)
			assert.Empty(t, f.publisher.accepted)
		})
	}
}

func TestAcceptStoreFailureRollsBack(t *testing.T) {
	f := newFixture()
	target := f.addRequest("chosen@example.com", entity.AdoptionStatusPending)
	competitor := f.addRequest("other@example.com", entity.AdoptionStatusPending)
	f.store.FailRejectOthers = uowtest.ErrInjected

	_, err := f.accept(owner, target.Id, f.pet.Id)
	require.Error(t, err)
	assert.Equal(t, apperror.KindStoreFailure, apperror.KindOf(err))
	assert.Equal(t, 1, f.store.Rollbacks)
	assert.Equal(t, entity.AdoptionStatusPending, f.store.Requests[competitor.Id].Status)
	assert.Equal(t, entity.AdoptionStatusPending, f.store.Requests[target.Id].Status)
}

func TestAcceptSucceedsWhenMailFails(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("smtp down")
	target := f.addRequest("chosen@example.com", entity.AdoptionStatusPending)

	_, err := f.accept(owner, target.Id, f.pet.Id)
	require.NoError(t, err)
	assert.True(t, f.store.Pets[f.pet.Id].Adopted)
}

func TestReject(t *testing.T) {
	f := newFixture()
	req := f.addRequest("a@example.com", entity.AdoptionStatusPending)
	ctx := context.Background()

	_, err := f.resolver.Reject(ctx, f.factory.NewUnitOfWork(ctx), entity.Principal{Email: "a@example.com"}, req.Id)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	got, err := f.resolver.Reject(ctx, f.factory.NewUnitOfWork(ctx), owner, req.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionStatusRejected, got.Status)
	assert.Equal(t, entity.AdoptionStatusRejected, f.store.Requests[req.Id].Status)
	assert.False(t, f.store.Pets[f.pet.Id].Adopted)
	assert.Equal(t, []sentMail{{to: "a@example.com", accepted: false}}, f.notifier.sent)

	_, err = f.resolver.Reject(ctx, f.factory.NewUnitOfWork(ctx), owner, req.Id)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))

	_, err = f.resolver.Reject(ctx, f.factory.NewUnitOfWork(ctx), owner, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestWithdraw(t *testing.T) {
	f := newFixture()
	pending := f.addRequest("a@example.com", entity.AdoptionStatusPending)
	accepted := f.addRequest("b@example.com", entity.AdoptionStatusAccepted)
	ctx := context.Background()
	uow := f.factory.NewUnitOfWork(ctx)

	err := f.resolver.Withdraw(ctx, uow, owner, pending.Id)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	err = f.resolver.Withdraw(ctx, uow, entity.Principal{Email: "b@example.com"}, accepted.Id)
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))

	require.NoError(t, f.resolver.Withdraw(ctx, uow, entity.Principal{Email: "a@example.com"}, pending.Id))
	assert.NotContains(t, f.store.Requests, pending.Id)

	err = f.resolver.Withdraw(ctx, uow, entity.Principal{Email: "a@example.com"}, pending.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
