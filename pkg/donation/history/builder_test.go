package history

import (
	"context"
	"sync"
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

type mapCache struct {
	mu          sync.Mutex
	entries     map[string]*entity.DashboardHistory
	invalidated []string
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]*entity.DashboardHistory{}}
}

func (c *mapCache) Get(ctx context.Context, scope string) (*entity.DashboardHistory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.entries[scope]
	return h, ok
}

func (c *mapCache) Set(ctx context.Context, scope string, h *entity.DashboardHistory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[scope] = h
}

func (c *mapCache) Invalidate(ctx context.Context, scopes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range scopes {
		delete(c.entries, s)
		c.invalidated = append(c.invalidated, s)
	}
}

func seed(store *uowtest.Store) (mine, theirs *entity.DonationCampaign) {
	mine = &entity.DonationCampaign{Id: uuid.New(), AuthorEmail: "me@example.com", MaxDonation: 100}
	theirs = &entity.DonationCampaign{Id: uuid.New(), AuthorEmail: "other@example.com", MaxDonation: 100}
	store.Campaigns[mine.Id] = mine
	store.Campaigns[theirs.Id] = theirs

	day := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: mine.Id, Amount: 1000, UserName: "a", Date: day}
	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: mine.Id, Amount: 2000, UserName: "b", Date: day.Add(time.Hour)}
	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: theirs.Id, Amount: 9900, UserName: "c", Date: day}
	store.Refunds = append(store.Refunds, &entity.Refund{DonationItemId: mine.Id, Amount: 500, UserName: "a", Date: day, RefundedAt: day.AddDate(0, 0, 2)})
	return mine, theirs
}

func TestBuildAuthorScope(t *testing.T) {
	store := uowtest.NewStore()
	seed(store)
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	b := NewBuilder(logger.NewNopLogger(), nil)
	h, err := b.Build(context.Background(), uow, AuthorScope("me@example.com"))
	require.NoError(t, err)

	require.Len(t, h.DailyTotals, 1)
	assert.Equal(t, 30.0, h.DailyTotals[0].Donated)
	assert.Equal(t, 5.0, h.DailyTotals[0].Refunded)
	assert.Len(t, h.Ledger, 3)
}

func TestBuildRefundStaysOnDonationDay(t *testing.T) {
	store := uowtest.NewStore()
	campaign := &entity.DonationCampaign{Id: uuid.New(), AuthorEmail: "me@example.com", MaxDonation: 100}
	store.Campaigns[campaign.Id] = campaign

	donated := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	payment := &entity.DonationPayment{Id: uuid.New(), DonationItemId: campaign.Id, Amount: 500, UserName: "a", Date: donated}
	store.Refunds = append(store.Refunds, entity.NewRefundFromPayment(payment, "refund-tx", donated.AddDate(0, 0, 4)))
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	h, err := NewBuilder(logger.NewNopLogger(), nil).Build(context.Background(), uow, AuthorScope("me@example.com"))
	require.NoError(t, err)

	require.Len(t, h.DailyTotals, 1)
	assert.Equal(t, "2024-06-01", h.DailyTotals[0].Date)
	assert.Equal(t, 5.0, h.DailyTotals[0].Refunded)
	require.Len(t, h.Ledger, 1)
	assert.True(t, h.Ledger[0].Refund)
	assert.Equal(t, donated, h.Ledger[0].Date)
}

func TestBuildAllScope(t *testing.T) {
	store := uowtest.NewStore()
	seed(store)
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	h, err := NewBuilder(logger.NewNopLogger(), nil).Build(context.Background(), uow, AllScope())
	require.NoError(t, err)

	require.Len(t, h.DailyTotals, 1)
	assert.Equal(t, 129.0, h.DailyTotals[0].Donated)
	assert.Len(t, h.Ledger, 4)
}

func TestBuildAuthorWithoutCampaigns(t *testing.T) {
	store := uowtest.NewStore()
	seed(store)
	store.FailLedger = uowtest.ErrInjected // never reached
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	h, err := NewBuilder(logger.NewNopLogger(), nil).Build(context.Background(), uow, AuthorScope("nobody@example.com"))
	require.NoError(t, err)
	assert.Empty(t, h.DailyTotals)
	assert.Empty(t, h.Ledger)
}

func TestBuildStoreFailure(t *testing.T) {
	store := uowtest.NewStore()
	seed(store)
	store.FailLedger = uowtest.ErrInjected
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())

	_, err := NewBuilder(logger.NewNopLogger(), nil).Build(context.Background(), uow, AllScope())
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindStoreFailure))
}

func TestBuildUsesCacheUntilInvalidated(t *testing.T) {
	store := uowtest.NewStore()
	mine, _ := seed(store)
	uow := uowtest.NewFactory(store).NewUnitOfWork(context.Background())
	cache := newMapCache()
	b := NewBuilder(logger.NewNopLogger(), cache)
	ctx := context.Background()

	first, err := b.Build(ctx, uow, AuthorScope("me@example.com"))
	require.NoError(t, err)

	store.Payments[uuid.New()] = &entity.DonationPayment{DonationItemId: mine.Id, Amount: 7000, Date: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	cached, err := b.Build(ctx, uow, AuthorScope("me@example.com"))
	require.NoError(t, err)
	assert.Same(t, first, cached)

	b.Invalidate(ctx, "me@example.com")
	assert.ElementsMatch(t, []string{"author:me@example.com", "all"}, cache.invalidated)

	fresh, err := b.Build(ctx, uow, AuthorScope("me@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 100.0, fresh.DailyTotals[0].Donated)
}

func TestScopeKeys(t *testing.T) {
	assert.Equal(t, "all", AllScope().Key())
	assert.Equal(t, "author:me@example.com", AuthorScope("me@example.com").Key())
	assert.Equal(t, []string{"author:me@example.com", "all"}, ScopesFor("me@example.com"))
}
