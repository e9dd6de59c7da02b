package progress

import (
	"context"
	"testing"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork/uowtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		maxDonation int64
		want        int
		ok          bool
	}{
		{"worked example", 25000, 500, 50, true},
		{"no payments", 0, 500, 0, true},
		{"fully funded", 50000, 500, 100, true},
		{"overfunded is uncapped", 75000, 500, 150, true},
		{"rounds half up", 250, 100, 3, true},
		{"rounds down below half", 249, 100, 2, true},
		{"zero target clamps", 10000, 0, 0, false},
		{"negative target clamps", 10000, -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Percent(tt.total, tt.maxDonation)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAttach(t *testing.T) {
	store := uowtest.NewStore()
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	funded := &entity.DonationCampaign{Id: uuid.New(), MaxDonation: 500}
	empty := &entity.DonationCampaign{Id: uuid.New(), MaxDonation: 100}
	broken := &entity.DonationCampaign{Id: uuid.New(), MaxDonation: 0}

	for _, amount := range []int64{10000, 15000} {
		store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: funded.Id, Amount: amount}
	}
	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: broken.Id, Amount: 999}
	// Payment for a campaign outside the page must not leak in.
	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: uuid.New(), Amount: 1_000_000}

	agg := NewAggregator(logger.NewNopLogger())
	result, err := agg.Attach(context.Background(), uow, []*entity.DonationCampaign{funded, empty, broken})
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, funded.Id, result[0].Id)
	assert.Equal(t, 50, result[0].Progress)
	assert.Equal(t, int64(25000), result[0].Raised)

	assert.Equal(t, 0, result[1].Progress)
	assert.Equal(t, int64(0), result[1].Raised)

	assert.Equal(t, 0, result[2].Progress)
	assert.Equal(t, int64(999), result[2].Raised)
}

func TestAttachEmptyPage(t *testing.T) {
	store := uowtest.NewStore()
	store.FailSum = uowtest.ErrInjected
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	result, err := NewAggregator(logger.NewNopLogger()).Attach(context.Background(), uow, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestAttachStoreFailure(t *testing.T) {
	store := uowtest.NewStore()
	store.FailSum = uowtest.ErrInjected
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	_, err := NewAggregator(logger.NewNopLogger()).Attach(context.Background(), uow, []*entity.DonationCampaign{{Id: uuid.New(), MaxDonation: 10}})
	require.Error(t, err)
	assert.Equal(t, apperror.KindStoreFailure, apperror.KindOf(err))
	assert.ErrorIs(t, err, uowtest.ErrInjected)
}
