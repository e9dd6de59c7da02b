package history

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/specification"
	"pet-house-be/internal/repository/unitofwork"

	"golang.org/x/sync/errgroup"
)

const scopeAll = "all"

// Cache stores built histories per scope key. Implementations must treat their own
// failures as misses.
type Cache interface {
	Get(ctx context.Context, scope string) (*entity.DashboardHistory, bool)
	Set(ctx context.Context, scope string, h *entity.DashboardHistory)
	Invalidate(ctx context.Context, scopes ...string)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*entity.DashboardHistory, bool) { return nil, false }
func (noopCache) Set(context.Context, string, *entity.DashboardHistory) {}
func (noopCache) Invalidate(context.Context, ...string) {}

// Scope selects whose campaigns feed the history. An empty AuthorEmail means every campaign.
type Scope struct {
	AuthorEmail string
}

func AuthorScope(email string) Scope {
	return Scope{AuthorEmail: email}
}

func AllScope() Scope {
	return Scope{}
}

func (s Scope) Key() string {
	if s.AuthorEmail == "" {
		return scopeAll
	}
	return "author:" + s.AuthorEmail
}

// ScopesFor lists the cache keys a write to one of authorEmail's campaigns makes stale.
func ScopesFor(authorEmail string) []string {
	return []string{AuthorScope(authorEmail).Key(), scopeAll}
}

type Builder struct {
	logger logger.ILogger
	cache  Cache
}

func NewBuilder(logger logger.ILogger, cache Cache) *Builder {
	if cache == nil {
		cache = noopCache{}
	}
	return &Builder{
		logger: logger,
		cache:  cache,
	}
}

// Build must not be called with a uow that has an open transaction: the two ledger reads run concurrently.
func (b *Builder) Build(ctx context.Context, uow unitofwork.UnitOfWork, scope Scope) (*entity.DashboardHistory, error) {
	if cached, ok := b.cache.Get(ctx, scope.Key()); ok {
		return cached, nil
	}

	var specs []specification.Specification
	if scope.AuthorEmail != "" {
		ids, err := uow.CampaignRepository().FindIDs(ctx, specification.AuthoredBy{Email: scope.AuthorEmail})
		if err != nil {
			return nil, apperror.Store(err)
		}
		if len(ids) == 0 {
			return Merge(nil, nil), nil
		}
		specs = append(specs, specification.ByCampaigns{CampaignIDs: ids})
	}

	var donations, refunds []entity.LedgerRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		donations, err = uow.DonationPaymentRepository().FindLedger(gctx, specs...)
		return err
	})
	g.Go(func() error {
		var err error
		refunds, err = uow.RefundRepository().FindLedger(gctx, specs...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Store(err)
	}

	h := Merge(donations, refunds)
	b.cache.Set(ctx, scope.Key(), h)

	b.logger.Debug("HISTORY", "Dashboard history built", map[string]interface{}{
		"scope":     scope.Key(),
		"donations": len(donations),
		"refunds":   len(refunds),
		"days":      len(h.DailyTotals),
	})
	return h, nil
}

// Invalidate drops cached histories affected by a write to one of authorEmail's campaigns.
func (b *Builder) Invalidate(ctx context.Context, authorEmail string) {
	b.cache.Invalidate(ctx, ScopesFor(authorEmail)...)
}
