package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/merchops/merch-service/internal/models"
)

// pathID reads the {id} route variable
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

type receivableRequest struct {
	JobRef          string          `json:"job_ref"`
	StyleRef        string          `json:"style_ref"`
	InvoiceAmount   decimal.Decimal `json:"invoice_amount"`
	Currency        string          `json:"currency"`
	ShipDate        string          `json:"ship_date"` // YYYY-MM-DD, empty if unshipped
	PaymentTermDays int             `json:"payment_term_days"`
}

// CreateReceivable handles receivable creation
func (h *Handler) CreateReceivable(w http.ResponseWriter, r *http.Request) {
	var req receivableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rec := models.Receivable{
		JobRef:          req.JobRef,
		StyleRef:        req.StyleRef,
		InvoiceAmount:   req.InvoiceAmount,
		Currency:        req.Currency,
		PaymentTermDays: req.PaymentTermDays,
	}
	if req.ShipDate != "" {
		shipDate, err := parseDate(req.ShipDate)
		if err != nil {
			http.Error(w, "invalid ship_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		rec.ShipDate = &shipDate
	}
	if err := h.svc.CreateReceivable(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// ListReceivables returns all receivables
func (h *Handler) ListReceivables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListReceivables())
}

// DeleteReceivable removes a receivable
func (h *Handler) DeleteReceivable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteReceivable(id); err != nil {
		notFound(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type payableRequest struct {
	JobRef          string          `json:"job_ref"`
	Supplier        string          `json:"supplier"`
	POAmount        decimal.Decimal `json:"po_amount"`
	Currency        string          `json:"currency"`
	POIssueDate     string          `json:"po_issue_date"` // YYYY-MM-DD
	PaymentTermDays int             `json:"payment_term_days"`
}

// CreatePayable handles payable creation
func (h *Handler) CreatePayable(w http.ResponseWriter, r *http.Request) {
	var req payableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	issueDate, err := parseDate(req.POIssueDate)
	if err != nil {
		http.Error(w, "invalid po_issue_date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	pay := models.Payable{
		JobRef:          req.JobRef,
		Supplier:        req.Supplier,
		POAmount:        req.POAmount,
		Currency:        req.Currency,
		POIssueDate:     issueDate,
		PaymentTermDays: req.PaymentTermDays,
	}
	if err := h.svc.CreatePayable(&pay); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, pay)
}

// ListPayables returns all payables
func (h *Handler) ListPayables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListPayables())
}

// DeletePayable removes a payable
func (h *Handler) DeletePayable(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeletePayable(id); err != nil {
		notFound(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ledgerEntryRequest struct {
	Direction   models.EntryDirection `json:"direction"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Amount      decimal.Decimal       `json:"amount"`
	Date        string                `json:"date"` // YYYY-MM-DD
}

// CreateLedgerEntry handles manual ledger entry creation
func (h *Handler) CreateLedgerEntry(w http.ResponseWriter, r *http.Request) {
	var req ledgerEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	entryDate, err := parseDate(req.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	entry := models.LedgerEntry{
		Direction:   req.Direction,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        entryDate,
	}
	if err := h.svc.CreateLedgerEntry(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// ListLedgerEntries returns all manual ledger entries
func (h *Handler) ListLedgerEntries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListLedgerEntries())
}

// DeleteLedgerEntry removes a manual ledger entry
func (h *Handler) DeleteLedgerEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteLedgerEntry(id); err != nil {
		notFound(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type overheadRequest struct {
	Name       string            `json:"name"`
	Amount     decimal.Decimal   `json:"amount"`
	Recurrence models.Recurrence `json:"recurrence"`
	StartDate  string            `json:"start_date"` // YYYY-MM-DD, optional
}

// CreateOverhead handles recurring overhead creation
func (h *Handler) CreateOverhead(w http.ResponseWriter, r *http.Request) {
	var req overheadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	oh := models.Overhead{
		Name:       req.Name,
		Amount:     req.Amount,
		Recurrence: req.Recurrence,
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		oh.StartDate = startDate
	}
	if err := h.svc.CreateOverhead(&oh); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, oh)
}

// ListOverheads returns all recurring overheads
func (h *Handler) ListOverheads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListOverheads())
}

// DeleteOverhead removes a recurring overhead
func (h *Handler) DeleteOverhead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteOverhead(id); err != nil {
		notFound(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
