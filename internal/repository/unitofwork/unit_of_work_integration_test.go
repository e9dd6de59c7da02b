package unitofwork_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/model"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"
	"pet-house-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestDonationTotalsAndRefundSwap(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db)

	author := "author-" + uuid.NewString() + "@example.com"
	campaign := &entity.DonationCampaign{
		Id:               uuid.New(),
		PetName:          "Integration Pup",
		MaxDonation:      100,
		DonationLastDate: time.Now().AddDate(0, 1, 0),
		AuthorEmail:      author,
	}

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.CampaignRepository().Create(ctx, campaign))

	payments := []*entity.DonationPayment{
		{Id: uuid.New(), DonationItemId: campaign.Id, UserEmail: "a@example.com", UserName: "A", Amount: 2500, Date: time.Now()},
		{Id: uuid.New(), DonationItemId: campaign.Id, UserEmail: "b@example.com", UserName: "B", Amount: 2500, Date: time.Now()},
	}
	for _, p := range payments {
		require.NoError(t, uow.DonationPaymentRepository().Create(ctx, p))
	}

	totals, err := uow.DonationPaymentRepository().SumByCampaigns(ctx, []uuid.UUID{campaign.Id, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), totals[campaign.Id])
	assert.Len(t, totals, 1)

	t.Run("Rollback keeps the payment", func(t *testing.T) {
		tx := factory.NewUnitOfWork(ctx)
		require.NoError(t, tx.Begin(ctx))
		require.NoError(t, tx.RefundRepository().Create(ctx, entity.NewRefundFromPayment(payments[0], "rk-1", time.Now())))
		require.NoError(t, tx.DonationPaymentRepository().Delete(ctx, payments[0].Id))
		require.NoError(t, tx.Rollback())

		found, err := uow.DonationPaymentRepository().FindByID(ctx, payments[0].Id)
		require.NoError(t, err)
		assert.NotNil(t, found)
	})

	t.Run("Commit swaps payment for refund", func(t *testing.T) {
		tx := factory.NewUnitOfWork(ctx)
		require.NoError(t, tx.Begin(ctx))
		defer tx.Rollback()
		require.NoError(t, tx.RefundRepository().Create(ctx, entity.NewRefundFromPayment(payments[0], "rk-2", time.Now())))
		require.NoError(t, tx.DonationPaymentRepository().Delete(ctx, payments[0].Id))
		require.NoError(t, tx.Commit())

		found, err := uow.DonationPaymentRepository().FindByID(ctx, payments[0].Id)
		require.NoError(t, err)
		assert.Nil(t, found)

		count, err := uow.RefundRepository().Count(ctx, specification.ByCampaign{CampaignID: campaign.Id})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	db.Where("donation_item_id = ?", campaign.Id).Delete(&model.Refund{})
	db.Where("donation_item_id = ?", campaign.Id).Delete(&model.DonationPayment{})
	db.Where("id = ?", campaign.Id).Delete(&model.DonationCampaign{})
}

func TestRejectOthersLeavesTargetPending(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	pet := &entity.Pet{Id: uuid.New(), PetName: "Lock Test", AuthorEmail: "owner@example.com"}
	require.NoError(t, uow.PetRepository().Create(ctx, pet))

	target := &entity.AdoptionRequest{Id: uuid.New(), PetId: pet.Id, AdoptEmail: "x@example.com", AuthorEmail: pet.AuthorEmail, Status: entity.AdoptionStatusPending}
	other := &entity.AdoptionRequest{Id: uuid.New(), PetId: pet.Id, AdoptEmail: "y@example.com", AuthorEmail: pet.AuthorEmail, Status: entity.AdoptionStatusPending}
	require.NoError(t, uow.AdoptionRequestRepository().Create(ctx, target))
	require.NoError(t, uow.AdoptionRequestRepository().Create(ctx, other))

	require.NoError(t, uow.Begin(ctx))
	locked, err := uow.PetRepository().FindByIDForUpdate(ctx, pet.Id)
	require.NoError(t, err)
	require.NotNil(t, locked)

	n, err := uow.AdoptionRequestRepository().RejectOthers(ctx, pet.Id, target.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, uow.Commit())

	got, err := uow.AdoptionRequestRepository().FindByID(ctx, target.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.AdoptionStatusPending, got.Status)

	db.Where("pet_id = ?", pet.Id).Delete(&model.AdoptionRequest{})
	db.Where("id = ?", pet.Id).Delete(&model.Pet{})
}
