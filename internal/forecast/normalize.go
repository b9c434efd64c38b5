package forecast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchops/merch-service/internal/models"
)

// UnknownCurrencyPolicy controls what happens to an amount whose currency is
// missing from the rate table.
type UnknownCurrencyPolicy int

const (
	// TreatAsBase applies a multiplier of 1, matching the historical
	// dashboard behavior. The affected code is still reported.
	TreatAsBase UnknownCurrencyPolicy = iota
	// ExcludeUnknown drops the record from the timeline instead.
	ExcludeUnknown
)

// Options configures the derivation pipeline
type Options struct {
	BaseCurrency    string
	UnknownCurrency UnknownCurrencyPolicy
	WindowMonths    int // overhead expansion window, 0 means DefaultWindowMonths
}

// Report counts the records the normalizer could not fully resolve. Nothing
// here is fatal; callers decide whether to warn the operator.
type Report struct {
	DroppedMissingDate     int      `json:"dropped_missing_date"`
	DroppedUnknownCurrency int      `json:"dropped_unknown_currency"`
	UnknownCurrencies      []string `json:"unknown_currencies,omitempty"` // distinct codes, first-seen order
}

// Normalize converts an amount from the given currency into the base
// currency. The boolean reports whether the currency was resolvable: true
// for the base currency itself and for any code present in the rate table.
// When it is false the amount is returned unconverted.
func Normalize(amount decimal.Decimal, currency string, rates models.RateTable, baseCurrency string) (decimal.Decimal, bool) {
	if currency == "" || currency == baseCurrency {
		return amount, true
	}
	rate, ok := rates[currency]
	if !ok {
		return amount, false
	}
	return amount.Mul(rate), true
}

// DueDate shifts an issue date forward by termDays calendar days
func DueDate(issue time.Time, termDays int) time.Time {
	return issue.AddDate(0, 0, termDays)
}

// NormalizeEvents produces one cash-flow event per resolvable receivable,
// payable, and ledger entry. Receivables without a ship date have no
// forecastable due date yet and are excluded; payables and entries without a
// usable date are likewise dropped rather than emitted with a corrupt date.
// Drops and unknown currency codes are tallied in the report.
func NormalizeEvents(receivables []models.Receivable, payables []models.Payable, entries []models.LedgerEntry, rates models.RateTable, opts Options) ([]models.CashFlowEvent, Report) {
	var report Report
	seen := make(map[string]bool)
	noteUnknown := func(code string) {
		if !seen[code] {
			seen[code] = true
			report.UnknownCurrencies = append(report.UnknownCurrencies, code)
		}
	}

	events := make([]models.CashFlowEvent, 0, len(receivables)+len(payables)+len(entries))

	for _, rec := range receivables {
		if rec.ShipDate == nil || rec.ShipDate.IsZero() {
			report.DroppedMissingDate++
			continue
		}
		amount, known := Normalize(rec.InvoiceAmount, rec.Currency, rates, opts.BaseCurrency)
		if !known {
			noteUnknown(rec.Currency)
			if opts.UnknownCurrency == ExcludeUnknown {
				report.DroppedUnknownCurrency++
				continue
			}
		}
		orig := rec.InvoiceAmount
		events = append(events, models.CashFlowEvent{
			ID:               fmt.Sprintf("rcv-%d", rec.ID),
			Date:             DueDate(*rec.ShipDate, rec.PaymentTermDays),
			Direction:        models.Inflow,
			SourceKind:       models.SourceInvoice,
			Description:      fmt.Sprintf("Invoice %s %s", rec.JobRef, rec.StyleRef),
			Amount:           amount,
			OriginalAmount:   &orig,
			OriginalCurrency: rec.Currency,
			JobRef:           rec.JobRef,
		})
	}

	for _, pay := range payables {
		if pay.POIssueDate.IsZero() {
			report.DroppedMissingDate++
			continue
		}
		amount, known := Normalize(pay.POAmount, pay.Currency, rates, opts.BaseCurrency)
		if !known {
			noteUnknown(pay.Currency)
			if opts.UnknownCurrency == ExcludeUnknown {
				report.DroppedUnknownCurrency++
				continue
			}
		}
		orig := pay.POAmount
		events = append(events, models.CashFlowEvent{
			ID:               fmt.Sprintf("pay-%d", pay.ID),
			Date:             DueDate(pay.POIssueDate, pay.PaymentTermDays),
			Direction:        models.Outflow,
			SourceKind:       models.SourcePO,
			Description:      fmt.Sprintf("PO %s %s", pay.JobRef, pay.Supplier),
			Amount:           amount,
			OriginalAmount:   &orig,
			OriginalCurrency: pay.Currency,
			JobRef:           pay.JobRef,
		})
	}

	for _, entry := range entries {
		if entry.Date.IsZero() {
			report.DroppedMissingDate++
			continue
		}
		direction := models.Outflow
		if entry.Direction == models.DirectionIncome {
			direction = models.Inflow
		}
		// Manual entries are recorded in the base currency already
		events = append(events, models.CashFlowEvent{
			ID:          fmt.Sprintf("led-%d", entry.ID),
			Date:        entry.Date,
			Direction:   direction,
			SourceKind:  models.SourceManual,
			Description: entry.Description,
			Amount:      entry.Amount,
		})
	}

	return events, report
}
