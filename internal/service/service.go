package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/merchops/merch-service/internal/config"
	"github.com/merchops/merch-service/internal/forecast"
	"github.com/merchops/merch-service/internal/integrations/rates"
	"github.com/merchops/merch-service/internal/models"
	"github.com/merchops/merch-service/internal/repository"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	parser *rates.Parser
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, parser *rates.Parser, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, parser: parser, log: log, config: cfg}
}

// Register creates a new user with hashed password
func (s *Service) Register(username, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// CreateReceivable validates and stores a receivable. A missing ship date is
// allowed: the order simply has no forecastable due date yet.
func (s *Service) CreateReceivable(rec *models.Receivable) error {
	if rec.InvoiceAmount.Sign() <= 0 {
		return fmt.Errorf("invoice amount must be positive")
	}
	if rec.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if rec.PaymentTermDays < 0 {
		return fmt.Errorf("payment term days must not be negative")
	}
	if err := s.repo.CreateReceivable(rec); err != nil {
		return err
	}
	s.log.Infof("Receivable created: %s %s %s", rec.JobRef, rec.InvoiceAmount, rec.Currency)
	return nil
}

// ListReceivables returns all receivables
func (s *Service) ListReceivables() []models.Receivable {
	return s.repo.ListReceivables()
}

// DeleteReceivable removes a receivable
func (s *Service) DeleteReceivable(id int64) error {
	return s.repo.DeleteReceivable(id)
}

// CreatePayable validates and stores a payable
func (s *Service) CreatePayable(pay *models.Payable) error {
	if pay.POAmount.Sign() <= 0 {
		return fmt.Errorf("po amount must be positive")
	}
	if pay.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if pay.PaymentTermDays < 0 {
		return fmt.Errorf("payment term days must not be negative")
	}
	if err := s.repo.CreatePayable(pay); err != nil {
		return err
	}
	s.log.Infof("Payable created: %s %s %s", pay.JobRef, pay.POAmount, pay.Currency)
	return nil
}

// ListPayables returns all payables
func (s *Service) ListPayables() []models.Payable {
	return s.repo.ListPayables()
}

// DeletePayable removes a payable
func (s *Service) DeletePayable(id int64) error {
	return s.repo.DeletePayable(id)
}

// CreateLedgerEntry validates and stores a manual ledger entry. Invalid
// entries are rejected here and never reach the forecasting engine.
func (s *Service) CreateLedgerEntry(entry *models.LedgerEntry) error {
	if entry.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if entry.Description == "" {
		return fmt.Errorf("description is required")
	}
	if !entry.Direction.Valid() {
		return fmt.Errorf("direction must be %q or %q", models.DirectionIncome, models.DirectionExpense)
	}
	if entry.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	if err := s.repo.CreateLedgerEntry(entry); err != nil {
		return err
	}
	s.log.Infof("Ledger entry created: %s %s", entry.Direction, entry.Amount)
	return nil
}

// ListLedgerEntries returns all manual ledger entries
func (s *Service) ListLedgerEntries() []models.LedgerEntry {
	return s.repo.ListLedgerEntries()
}

// DeleteLedgerEntry removes a manual ledger entry
func (s *Service) DeleteLedgerEntry(id int64) error {
	return s.repo.DeleteLedgerEntry(id)
}

// CreateOverhead validates and stores a recurring overhead definition
func (s *Service) CreateOverhead(oh *models.Overhead) error {
	if oh.Name == "" {
		return fmt.Errorf("name is required")
	}
	if oh.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if !oh.Recurrence.Valid() {
		return fmt.Errorf("recurrence must be %q, %q or %q", models.RecurrenceMonthly, models.RecurrenceQuarterly, models.RecurrenceYearly)
	}
	if err := s.repo.CreateOverhead(oh); err != nil {
		return err
	}
	s.log.Infof("Overhead created: %s %s %s", oh.Name, oh.Amount, oh.Recurrence)
	return nil
}

// ListOverheads returns all recurring overheads
func (s *Service) ListOverheads() []models.Overhead {
	return s.repo.ListOverheads()
}

// DeleteOverhead removes a recurring overhead
func (s *Service) DeleteOverhead(id int64) error {
	return s.repo.DeleteOverhead(id)
}

// LoadRates parses an uploaded rate document and replaces the rate table.
// When the document carries no date the current time is recorded instead.
func (s *Service) LoadRates(body []byte) (models.RateTable, error) {
	table, docDate, err := s.parser.Parse(body)
	if err != nil {
		return nil, err
	}
	loadedAt := docDate
	if loadedAt.IsZero() {
		loadedAt = time.Now()
	}
	s.repo.SetRates(table, loadedAt)
	s.log.Infof("Rate table loaded: %d currencies, dated %s", len(table), loadedAt.Format("2006-01-02"))
	return table, nil
}

// Rates returns the current rate table and when it was loaded
func (s *Service) Rates() (models.RateTable, time.Time) {
	return s.repo.Rates()
}

// engineOptions maps configuration onto the derivation pipeline options
func (s *Service) engineOptions() forecast.Options {
	policy := forecast.TreatAsBase
	if s.config.UnknownCurrencyPolicy == "exclude" {
		policy = forecast.ExcludeUnknown
	}
	return forecast.Options{
		BaseCurrency:    s.config.BaseCurrency,
		UnknownCurrency: policy,
		WindowMonths:    s.config.ForecastWindowMonths,
	}
}

// inputs gathers the four source collections and the rate table
func (s *Service) inputs() forecast.Inputs {
	ratesTable, _ := s.repo.Rates()
	return forecast.Inputs{
		Receivables: s.repo.ListReceivables(),
		Payables:    s.repo.ListPayables(),
		Entries:     s.repo.ListLedgerEntries(),
		Overheads:   s.repo.ListOverheads(),
		Rates:       ratesTable,
	}
}

// Timeline re-derives the full cash-flow timeline as of the given instant.
// Normalization warnings are logged but never fail the request.
func (s *Service) Timeline(asOf time.Time) ([]models.CashFlowEvent, forecast.Report) {
	timeline, report := forecast.BuildTimeline(s.inputs(), asOf, s.engineOptions())
	if report.DroppedMissingDate > 0 {
		s.log.Warnf("Timeline dropped %d records with missing or unresolvable dates", report.DroppedMissingDate)
	}
	if len(report.UnknownCurrencies) > 0 {
		s.log.Warnf("No exchange rate for %v, policy %q applied", report.UnknownCurrencies, s.config.UnknownCurrencyPolicy)
	}
	return timeline, report
}

// Snapshot computes current-week and current-month totals as of the given instant
func (s *Service) Snapshot(asOf time.Time) models.Snapshot {
	timeline, _ := s.Timeline(asOf)
	return forecast.Snapshots(timeline, asOf)
}

// Forecast computes the monthly running-balance forecast as of the given instant
func (s *Service) Forecast(asOf time.Time) []models.MonthBucket {
	timeline, _ := s.Timeline(asOf)
	return forecast.Forecast(timeline)
}

// RatesLoadedAt reports when the rate table was last loaded, if ever
func (s *Service) RatesLoadedAt() (time.Time, bool) {
	_, loadedAt := s.repo.Rates()
	return loadedAt, !loadedAt.IsZero()
}
