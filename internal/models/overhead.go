package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recurrence is how often a recurring overhead falls due
type Recurrence string

const (
	RecurrenceMonthly   Recurrence = "monthly"
	RecurrenceQuarterly Recurrence = "quarterly"
	RecurrenceYearly    Recurrence = "yearly"
)

// Valid reports whether the recurrence is one of the known values
func (r Recurrence) Valid() bool {
	return r == RecurrenceMonthly || r == RecurrenceQuarterly || r == RecurrenceYearly
}

// Overhead is a fixed periodic obligation not tied to a specific order
// (rent, salaries, utilities). It is a template: it never appears on the
// timeline directly and must be expanded into dated events first.
// Amounts are defined in the base currency.
type Overhead struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Recurrence Recurrence      `json:"recurrence"`
	StartDate  time.Time       `json:"start_date"`
	CreatedAt  time.Time       `json:"created_at"`
}
