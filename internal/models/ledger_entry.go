package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection is the direction of a manual ledger entry
type EntryDirection string

const (
	DirectionIncome  EntryDirection = "income"
	DirectionExpense EntryDirection = "expense"
)

// Valid reports whether the direction is one of the two known values
func (d EntryDirection) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// LedgerEntry represents a one-off entry recorded by the operator.
// The amount is already in the base currency; no conversion applies.
type LedgerEntry struct {
	ID          int64           `json:"id"`
	Direction   EntryDirection  `json:"direction"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}
