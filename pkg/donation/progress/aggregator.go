package progress

import (
	"context"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/apperror"
	"pet-house-be/internal/pkg/logger"
	"pet-house-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Percent returns round(total / (maxDonation*100) * 100), where total is in minor units and
// maxDonation in major units. The result is not capped at 100. ok is false when the target
// is not positive, in which case the percentage is 0.
func Percent(total, maxDonation int64) (int, bool) {
	if maxDonation <= 0 {
		return 0, false
	}
	if total <= 0 {
		return 0, true
	}
	// half-up, in integers
	return int((2*total + maxDonation) / (2 * maxDonation)), true
}

// Aggregator attaches funding progress to campaigns.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// Attach sums payments for the whole page in one grouped query. Output order matches input order.
func (a *Aggregator) Attach(ctx context.Context, uow unitofwork.UnitOfWork, campaigns []*entity.DonationCampaign) ([]*entity.CampaignProgress, error) {
	result := make([]*entity.CampaignProgress, 0, len(campaigns))
	if len(campaigns) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.Id
	}

	totals, err := uow.DonationPaymentRepository().SumByCampaigns(ctx, ids)
	if err != nil {
		return nil, apperror.Store(err)
	}

	for _, c := range campaigns {
		raised := totals[c.Id]
		pct, ok := Percent(raised, c.MaxDonation)
		if !ok {
			a.logger.Warn("PROGRESS", "Campaign has a non-positive donation target", map[string]interface{}{
				"campaign_id":  c.Id.String(),
				"max_donation": c.MaxDonation,
			})
		}
		result = append(result, &entity.CampaignProgress{
			DonationCampaign: *c,
			Raised:           raised,
			Progress:         pct,
		})
	}

	return result, nil
}
