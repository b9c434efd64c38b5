package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowDirection is the direction of a cash-flow event
type FlowDirection string

const (
	Inflow  FlowDirection = "inflow"
	Outflow FlowDirection = "outflow"
)

// SourceKind identifies which source collection an event was derived from
type SourceKind string

const (
	SourceInvoice  SourceKind = "invoice"
	SourcePO       SourceKind = "po"
	SourceManual   SourceKind = "manual"
	SourceOverhead SourceKind = "overhead"
)

// CashFlowEvent is the normalized, dated, base-currency representation of a
// receivable, payable, ledger entry, or expanded overhead occurrence. Events
// are derived on every read and never stored; the ID is deterministic so the
// same inputs always produce the same event list.
type CashFlowEvent struct {
	ID               string           `json:"id"`
	Date             time.Time        `json:"date"`
	Direction        FlowDirection    `json:"direction"`
	SourceKind       SourceKind       `json:"source_kind"`
	Description      string           `json:"description"`
	Amount           decimal.Decimal  `json:"amount"` // always base currency
	OriginalAmount   *decimal.Decimal `json:"original_amount,omitempty"`
	OriginalCurrency string           `json:"original_currency,omitempty"`
	JobRef           string           `json:"job_ref,omitempty"`
}
