package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receivable represents money expected from a customer for an invoiced shipment
type Receivable struct {
	ID              int64           `json:"id"`
	JobRef          string          `json:"job_ref"`
	StyleRef        string          `json:"style_ref"`
	InvoiceAmount   decimal.Decimal `json:"invoice_amount"`
	Currency        string          `json:"currency"`
	ShipDate        *time.Time      `json:"ship_date,omitempty"` // nil until the order ships
	PaymentTermDays int             `json:"payment_term_days"`
	CreatedAt       time.Time       `json:"created_at"`
}
