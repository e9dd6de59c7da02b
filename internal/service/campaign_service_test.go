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
	"pet-house-be/pkg/donation/progress"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCampaignFixture() (*uowtest.Store, ICampaignService) {
	store := uowtest.NewStore()
	log := logger.NewNopLogger()
	return store, NewCampaignService(uowtest.NewFactory(store), progress.NewAggregator(log), log)
}

func campaignRequest(date string) *dto.CampaignRequest {
	return &dto.CampaignRequest{
		PetName:          "Milo",
		DonationImg:      "https://img.example.com/milo.png",
		MaxDonation:      500,
		DonationLastDate: date,
		ShortDescription: "Surgery fund",
	}
}

func TestParseCampaignDate(t *testing.T) {
	got, err := ParseCampaignDate("31,12,2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"2026-12-31", "31/12/2026", "32,12,2026", ""} {
		_, err := ParseCampaignDate(bad)
		assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err), bad)
	}
}

func TestCreateCampaign(t *testing.T) {
	store, svc := newCampaignFixture()
	author := entity.Principal{Email: "author@example.com", Role: entity.UserRoleUser}

	res, err := svc.Create(context.Background(), author, campaignRequest("01,02,2027"))
	require.NoError(t, err)
	assert.Equal(t, "01,02,2027", res.DonationLastDate)
	assert.Equal(t, "author@example.com", res.AuthorEmail)
	assert.Len(t, store.Campaigns, 1)

	_, err = svc.Create(context.Background(), author, campaignRequest("2027-02-01"))
	assert.Equal(t, apperror.KindInvalidInput, apperror.KindOf(err))
	assert.Len(t, store.Campaigns, 1)
}

func TestTogglePause(t *testing.T) {
	store, svc := newCampaignFixture()
	c := &entity.DonationCampaign{Id: uuid.New(), AuthorEmail: "author@example.com", MaxDonation: 100}
	store.Campaigns[c.Id] = c
	ctx := context.Background()

	_, err := svc.TogglePause(ctx, entity.Principal{Email: "stranger@example.com", Role: entity.UserRoleUser}, c.Id)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.False(t, store.Campaigns[c.Id].Pause)

	author := entity.Principal{Email: "author@example.com", Role: entity.UserRoleUser}
	res, err := svc.TogglePause(ctx, author, c.Id)
	require.NoError(t, err)
	assert.True(t, res.Pause)

	admin := entity.Principal{Email: "boss@example.com", Role: entity.UserRoleAdmin}
	res, err = svc.TogglePause(ctx, admin, c.Id)
	require.NoError(t, err)
	assert.False(t, res.Pause)

	_, err = svc.TogglePause(ctx, admin, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpsertCampaign(t *testing.T) {
	store, svc := newCampaignFixture()
	ctx := context.Background()
	existing := &entity.DonationCampaign{Id: uuid.New(), AuthorEmail: "author@example.com", MaxDonation: 100, Pause: true}
	store.Campaigns[existing.Id] = existing

	t.Run("missing id inserts under a new id", func(t *testing.T) {
		missing := uuid.New()
		res, err := svc.Upsert(ctx, entity.Principal{Email: "new@example.com"}, missing, campaignRequest("01,02,2027"))
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.NotEqual(t, missing, res.Item.Id)
	})

	t.Run("stranger cannot edit", func(t *testing.T) {
		_, err := svc.Upsert(ctx, entity.Principal{Email: "stranger@example.com"}, existing.Id, campaignRequest("01,02,2027"))
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("admin edit keeps pause and author", func(t *testing.T) {
		res, err := svc.Upsert(ctx, entity.Principal{Email: "boss@example.com", Role: entity.UserRoleAdmin}, existing.Id, campaignRequest("01,03,2027"))
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.True(t, res.Item.Pause)
		assert.Equal(t, "author@example.com", res.Item.AuthorEmail)
		assert.Equal(t, int64(500), store.Campaigns[existing.Id].MaxDonation)
	})
}
