package history

import (
	"sort"
	"time"

	"pet-house-be/internal/entity"
)

const dayLayout = "2006-01-02"

// DayKey is the UTC calendar date of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

type dayBucket struct {
	donated  int64
	refunded int64
}

// Merge groups donations and refunds by day and builds the reverse-chronological ledger.
// Totals are summed in minor units and converted once, so the per-day figures do not
// depend on input order.
func Merge(donations, refunds []entity.LedgerRecord) *entity.DashboardHistory {
	buckets := make(map[string]*dayBucket)
	bucket := func(t time.Time) *dayBucket {
		key := DayKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{}
			buckets[key] = b
		}
		return b
	}

	ledger := make([]entity.LedgerEntry, 0, len(donations)+len(refunds))

	for _, d := range donations {
		bucket(d.Timestamp).donated += d.Amount
		ledger = append(ledger, entity.LedgerEntry{Date: d.Timestamp, Amount: toMajor(d.Amount), Name: d.Name})
	}
	for _, r := range refunds {
		bucket(r.Timestamp).refunded += r.Amount
		ledger = append(ledger, entity.LedgerEntry{Date: r.Timestamp, Amount: toMajor(r.Amount), Name: r.Name, Refund: true})
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	totals := make([]entity.DailyTotal, len(days))
	for i, day := range days {
		b := buckets[day]
		totals[i] = entity.DailyTotal{
			Date:     day,
			Donated:  toMajor(b.donated),
			Refunded: toMajor(b.refunded),
		}
	}

	// Donations were appended first, so a stable sort keeps them ahead of refunds on ties.
	sort.SliceStable(ledger, func(a, b int) bool {
		return ledger[a].Date.After(ledger[b].Date)
	})

	return &entity.DashboardHistory{
		DailyTotals: totals,
		Ledger:      ledger,
	}
}

func toMajor(amount int64) float64 {
	return float64(amount) / 100
}
