package service

import (
	"context"
	"testing"
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork/uowtest"
	"pet-house-be/pkg/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type donationFixture struct {
	store       *uowtest.Store
	gateway     *stubGateway
	publisher   *recordingPublisher
	invalidator *recordingInvalidator
	svc         IDonationService
	campaign    *entity.DonationCampaign
}

func newDonationFixture() *donationFixture {
	f := &donationFixture{
		store:       uowtest.NewStore(),
		gateway:     &stubGateway{},
		publisher:   &recordingPublisher{},
		invalidator: &recordingInvalidator{},
	}
	f.svc = NewDonationService(uowtest.NewFactory(f.store), f.gateway, nil, f.invalidator, f.publisher, logger.NewNopLogger())
	f.campaign = &entity.DonationCampaign{
		Id:               uuid.New(),
		PetName:          "Milo",
		MaxDonation:      500,
		DonationLastDate: time.Now().AddDate(0, 1, 0),
		AuthorEmail:      "author@example.com",
	}
	f.store.Campaigns[f.campaign.Id] = f.campaign
	return f
}

var donor = entity.Principal{Email: "donor@example.com", Role: entity.UserRoleUser}

func TestRecordDonation(t *testing.T) {
	f := newDonationFixture()

	res, err := f.svc.Record(context.Background(), donor, &dto.RecordPaymentRequest{
		DonationItemId: f.campaign.Id,
		Amount:         2500,
		TransactionId:  "tx-1",
		UserName:       "Dee",
	})
	require.NoError(t, err)

	assert.Equal(t, "donor@example.com", res.UserEmail)
	assert.Equal(t, int64(2500), res.Amount)
	require.Len(t, f.store.Payments, 1)
	assert.Equal(t, []string{"author@example.com"}, f.invalidator.authors)
	require.Len(t, f.publisher.received, 1)
	assert.Equal(t, "tx-1", f.publisher.received[0].TransactionId)
}

func TestRecordDonationRejected(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(f *donationFixture) uuid.UUID
		wantKind apperror.Kind
	}{
		{
			name:     "unknown campaign",
			prepare:  func(f *donationFixture) uuid.UUID { return uuid.New() },
			wantKind: apperror.KindNotFound,
		},
		{
			name: "paused campaign",
			prepare: func(f *donationFixture) uuid.UUID {
				f.campaign.Pause = true
				return f.campaign.Id
			},
			wantKind: apperror.KindInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDonationFixture()
			id := tt.prepare(f)

			_, err := f.svc.Record(context.Background(), donor, &dto.RecordPaymentRequest{
				DonationItemId: id,
				Amount:         100,
				TransactionId:  "tx",
			})
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Empty(t, f.store.Payments)
			assert.Empty(t, f.publisher.received)
			assert.Empty(t, f.invalidator.authors)
		})
	}
}

func TestCreateIntent(t *testing.T) {
	t.Run("converts price to minor units", func(t *testing.T) {
		f := newDonationFixture()
		res, err := f.svc.CreateIntent(context.Background(), donor, &dto.PaymentIntentRequest{Price: 125, CampaignId: f.campaign.Id})
		require.NoError(t, err)

		assert.Equal(t, int64(12500), res.Amount)
		assert.NotEmpty(t, res.OrderId)
		assert.Equal(t, "snap-"+res.OrderId, res.ClientSecret)
		require.Len(t, f.gateway.requests, 1)
		assert.Equal(t, "Milo", f.gateway.requests[0].ItemName)
		assert.Equal(t, "donor@example.com", f.gateway.requests[0].CustomerEmail)
	})

	t.Run("price the gateway cannot charge is rejected", func(t *testing.T) {
		for _, price := range []float64{0.004, 0.5, 10.75, -3} {
			f := newDonationFixture()
			_, err := f.svc.CreateIntent(context.Background(), donor, &dto.PaymentIntentRequest{Price: price})
			assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err), "price %v", price)
			assert.Empty(t, f.gateway.requests, "price %v", price)
		}
	})

	t.Run("gateway amount rejection is invalid input", func(t *testing.T) {
		f := newDonationFixture()
		f.gateway.err = payment.ErrInvalidAmount
		_, err := f.svc.CreateIntent(context.Background(), donor, &dto.PaymentIntentRequest{Price: 10})
		assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newDonationFixture()
		f.gateway.fail = true
		_, err := f.svc.CreateIntent(context.Background(), donor, &dto.PaymentIntentRequest{Price: 10})
		assert.Equal(t, apperror.KindGatewayFailure, apperror.KindOf(err))
	})
}
