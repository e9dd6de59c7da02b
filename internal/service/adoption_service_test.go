package service

import (
	"context"
	"testing"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork/uowtest"
	"pet-house-be/pkg/adoption"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentNotifier struct{}

func (silentNotifier) SendAdoptionOutcome(string, string, bool) error { return nil }

func newAdoptionFixture() (*uowtest.Store, *entity.Pet, IAdoptionService) {
	store := uowtest.NewStore()
	log := logger.NewNopLogger()
	pet := &entity.Pet{
		Id:          uuid.New(),
		PetName:     "Luna",
		PetImg:      "https://img.example.com/luna.png",
		AuthorEmail: "owner@example.com",
	}
	store.Pets[pet.Id] = pet
	resolver := adoption.NewResolver(log, &recordingPublisher{}, silentNotifier{})
	return store, pet, NewAdoptionService(uowtest.NewFactory(store), resolver, log)
}

var adopter = entity.Principal{Email: "adopter@example.com", Role: entity.UserRoleUser}

func TestCreateAdoptionRequest(t *testing.T) {
	store, pet, svc := newAdoptionFixture()

	res, err := svc.Create(context.Background(), adopter, &dto.CreateAdoptionRequest{
		PetId:     pet.Id,
		AdoptName: "Ada",
		Phone:     "0800",
		Address:   "Somewhere 1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pending", res.Status)
	assert.Equal(t, "Luna", res.PetName)
	assert.Equal(t, "owner@example.com", res.AuthorEmail)
	assert.Equal(t, "adopter@example.com", res.AdoptEmail)
	assert.Len(t, store.Requests, 1)
}

func TestCreateAdoptionRequestRejected(t *testing.T) {
	tests := []struct {
		name      string
		principal entity.Principal
		prepare   func(store *uowtest.Store, pet *entity.Pet) uuid.UUID
		wantKind  apperror.Kind
		wantCount int
	}{
		{
			name:      "unknown pet",
			principal: adopter,
			prepare:   func(*uowtest.Store, *entity.Pet) uuid.UUID { return uuid.New() },
			wantKind:  apperror.KindNotFound,
		},
		{
			name:      "already adopted",
			principal: adopter,
			prepare: func(_ *uowtest.Store, pet *entity.Pet) uuid.UUID {
				pet.Adopted = true
				return pet.Id
			},
			wantKind: apperror.KindInvalidInput,
		},
		{
			name:      "own pet",
			principal: entity.Principal{Email: "owner@example.com", Role: entity.UserRoleUser},
			prepare:   func(_ *uowtest.Store, pet *entity.Pet) uuid.UUID { return pet.Id },
			wantKind:  apperror.KindInvalidInput,
		},
		{
			name:      "duplicate request",
			principal: adopter,
			prepare: func(store *uowtest.Store, pet *entity.Pet) uuid.UUID {
				id := uuid.New()
				store.Requests[id] = &entity.AdoptionRequest{
					Id:          id,
					PetId:       pet.Id,
					AdoptEmail:  adopter.Email,
					AuthorEmail: pet.AuthorEmail,
					Status:      entity.AdoptionStatusPending,
				}
				return pet.Id
			},
			wantKind:  apperror.KindInvalidInput,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, pet, svc := newAdoptionFixture()
			petId := tt.prepare(store, pet)

			_, err := svc.Create(context.Background(), tt.principal, &dto.CreateAdoptionRequest{PetId: petId, AdoptName: "Ada"})
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Len(t, store.Requests, tt.wantCount)
		})
	}
}

func TestIncomingListsPendingOnMyPets(t *testing.T) {
	store, pet, svc := newAdoptionFixture()
	for i, status := range []entity.AdoptionStatus{entity.AdoptionStatusPending, entity.AdoptionStatusRejected, entity.AdoptionStatusPending} {
		id := uuid.New()
		store.Requests[id] = &entity.AdoptionRequest{
			Id:          id,
			PetId:       pet.Id,
			AdoptEmail:  "a" + string(rune('0'+i)) + "@example.com",
			AuthorEmail: pet.AuthorEmail,
			Status:      status,
		}
	}
	owner := entity.Principal{Email: "owner@example.com", Role: entity.UserRoleUser}

	count, err := svc.CountIncoming(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)

	received, err := svc.CountReceived(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(3), received.Count)
}
