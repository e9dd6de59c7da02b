package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerRecord is the common shape of a payment or refund as read for history building.
type LedgerRecord struct {
	CampaignId uuid.UUID
	Amount     int64
	Name       string
	Timestamp  time.Time
	Refund     bool
}

type DailyTotal struct {
	Date     string  `json:"date"`
	Donated  float64 `json:"donated"`
	Refunded float64 `json:"refunded"`
}

type LedgerEntry struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Name   string    `json:"name"`
	Refund bool      `json:"refund"`
}

type DashboardHistory struct {
	DailyTotals []DailyTotal  `json:"dailyTotals"`
	Ledger      []LedgerEntry `json:"ledger"`
}

type UserDashboardCounts struct {
	Pets      int64
	Requests  int64
	Campaigns int64
}
