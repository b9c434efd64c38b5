package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot represents current-week and current-month inflow/outflow totals
type Snapshot struct {
	WeekIn   decimal.Decimal `json:"week_in"`
	WeekOut  decimal.Decimal `json:"week_out"`
	MonthIn  decimal.Decimal `json:"month_in"`
	MonthOut decimal.Decimal `json:"month_out"`
}

// MonthBucket represents one month of the cash-flow forecast
type MonthBucket struct {
	Month          time.Time       `json:"month"` // first day of the month
	Label          string          `json:"label"` // e.g. "Jan 2026", display only
	Inflow         decimal.Decimal `json:"inflow"`
	Outflow        decimal.Decimal `json:"outflow"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}
