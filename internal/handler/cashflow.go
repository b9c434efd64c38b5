package handler

import (
	"net/http"

	"github.com/merchops/merch-service/internal/models"
)

type timelineResponse struct {
	Events                 []models.CashFlowEvent `json:"events"`
	DroppedMissingDate     int                    `json:"dropped_missing_date,omitempty"`
	DroppedUnknownCurrency int                    `json:"dropped_unknown_currency,omitempty"`
	UnknownCurrencies      []string               `json:"unknown_currencies,omitempty"`
}

// Timeline returns the full sorted cash-flow timeline. Normalization
// warnings ride along so the ledger view can surface them.
func (h *Handler) Timeline(w http.ResponseWriter, r *http.Request) {
	now, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	events, report := h.svc.Timeline(now)
	writeJSON(w, http.StatusOK, timelineResponse{
		Events:                 events,
		DroppedMissingDate:     report.DroppedMissingDate,
		DroppedUnknownCurrency: report.DroppedUnknownCurrency,
		UnknownCurrencies:      report.UnknownCurrencies,
	})
}

// Snapshot returns current-week and current-month totals for the summary cards
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	now, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Snapshot(now))
}

// Forecast returns the monthly running-balance forecast for the chart
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	now, err := asOf(r)
	if err != nil {
		http.Error(w, "invalid as_of, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Forecast(now))
}
