package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable represents money owed to a supplier against a purchase order
type Payable struct {
	ID              int64           `json:"id"`
	JobRef          string          `json:"job_ref"`
	Supplier        string          `json:"supplier"`
	POAmount        decimal.Decimal `json:"po_amount"`
	Currency        string          `json:"currency"`
	POIssueDate     time.Time       `json:"po_issue_date"`
	PaymentTermDays int             `json:"payment_term_days"`
	CreatedAt       time.Time       `json:"created_at"`
}
