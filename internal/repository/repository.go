package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/merchops/merch-service/internal/models"
)

// Repository holds the dashboard's working set in memory. Records live for
// the lifetime of the process; durability is out of scope for this service.
type Repository struct {
	mu  sync.RWMutex
	seq int64

	receivables map[int64]models.Receivable
	payables    map[int64]models.Payable
	entries     map[int64]models.LedgerEntry
	overheads   map[int64]models.Overhead

	users   map[string]models.User // keyed by email
	userSeq int64

	rates         models.RateTable
	ratesLoadedAt time.Time
}

// NewRepository initializes an empty repository
func NewRepository() *Repository {
	return &Repository{
		receivables: make(map[int64]models.Receivable),
		payables:    make(map[int64]models.Payable),
		entries:     make(map[int64]models.LedgerEntry),
		overheads:   make(map[int64]models.Overhead),
		users:       make(map[string]models.User),
	}
}

// nextID returns the next record ID. Callers must hold mu.
func (r *Repository) nextID() int64 {
	r.seq++
	return r.seq
}

// CreateReceivable stores a new receivable and assigns its ID
func (r *Repository) CreateReceivable(rec *models.Receivable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID()
	rec.CreatedAt = time.Now()
	r.receivables[rec.ID] = *rec
	return nil
}

// ListReceivables returns all receivables ordered by ID
func (r *Repository) ListReceivables() []models.Receivable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Receivable, 0, len(r.receivables))
	for _, rec := range r.receivables {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteReceivable removes a receivable by ID
func (r *Repository) DeleteReceivable(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.receivables[id]; !ok {
		return fmt.Errorf("receivable %d not found", id)
	}
	delete(r.receivables, id)
	return nil
}

// CreatePayable stores a new payable and assigns its ID
func (r *Repository) CreatePayable(pay *models.Payable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pay.ID = r.nextID()
	pay.CreatedAt = time.Now()
	r.payables[pay.ID] = *pay
	return nil
}

// ListPayables returns all payables ordered by ID
func (r *Repository) ListPayables() []models.Payable {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Payable, 0, len(r.payables))
	for _, pay := range r.payables {
		out = append(out, pay)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeletePayable removes a payable by ID
func (r *Repository) DeletePayable(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payables[id]; !ok {
		return fmt.Errorf("payable %d not found", id)
	}
	delete(r.payables, id)
	return nil
}

// CreateLedgerEntry stores a new manual ledger entry and assigns its ID
func (r *Repository) CreateLedgerEntry(entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID()
	entry.CreatedAt = time.Now()
	r.entries[entry.ID] = *entry
	return nil
}

// ListLedgerEntries returns all manual ledger entries ordered by ID
func (r *Repository) ListLedgerEntries() []models.LedgerEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.LedgerEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteLedgerEntry removes a manual ledger entry by ID
func (r *Repository) DeleteLedgerEntry(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return fmt.Errorf("ledger entry %d not found", id)
	}
	delete(r.entries, id)
	return nil
}

// CreateOverhead stores a new recurring overhead and assigns its ID
func (r *Repository) CreateOverhead(oh *models.Overhead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oh.ID = r.nextID()
	oh.CreatedAt = time.Now()
	r.overheads[oh.ID] = *oh
	return nil
}

// ListOverheads returns all recurring overheads ordered by ID
func (r *Repository) ListOverheads() []models.Overhead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Overhead, 0, len(r.overheads))
	for _, oh := range r.overheads {
		out = append(out, oh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// DeleteOverhead removes a recurring overhead by ID
func (r *Repository) DeleteOverhead(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.overheads[id]; !ok {
		return fmt.Errorf("overhead %d not found", id)
	}
	delete(r.overheads, id)
	return nil
}

// CreateUser stores a new user account
func (r *Repository) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return fmt.Errorf("email already registered")
	}
	r.userSeq++
	user.ID = r.userSeq
	user.CreatedAt = time.Now()
	r.users[user.Email] = *user
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return &user, nil
}

// SetRates replaces the currency rate table
func (r *Repository) SetRates(rates models.RateTable, loadedAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := make(models.RateTable, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	r.rates = copied
	r.ratesLoadedAt = loadedAt
}

// Rates returns a copy of the current rate table and when it was loaded.
// The zero time means no table has been loaded yet.
func (r *Repository) Rates() (models.RateTable, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	copied := make(models.RateTable, len(r.rates))
	for code, rate := range r.rates {
		copied[code] = rate
	}
	return copied, r.ratesLoadedAt
}
