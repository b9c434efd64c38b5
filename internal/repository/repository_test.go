package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchops/merch-service/internal/models"
)

func TestReceivableLifecycle(t *testing.T) {
	repo := NewRepository()

	first := models.Receivable{JobRef: "JOB-1", InvoiceAmount: decimal.NewFromInt(100), Currency: "USD"}
	second := models.Receivable{JobRef: "JOB-2", InvoiceAmount: decimal.NewFromInt(200), Currency: "EUR"}
	require.NoError(t, repo.CreateReceivable(&first))
	require.NoError(t, repo.CreateReceivable(&second))
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	list := repo.ListReceivables()
	require.Len(t, list, 2)
	assert.Equal(t, "JOB-1", list[0].JobRef)
	assert.Equal(t, "JOB-2", list[1].JobRef)

	require.NoError(t, repo.DeleteReceivable(first.ID))
	assert.Len(t, repo.ListReceivables(), 1)
	assert.Error(t, repo.DeleteReceivable(first.ID))
}

func TestDeleteMissingRecords(t *testing.T) {
	repo := NewRepository()
	assert.Error(t, repo.DeletePayable(99))
	assert.Error(t, repo.DeleteLedgerEntry(99))
	assert.Error(t, repo.DeleteOverhead(99))
}

func TestIDsAreUniqueAcrossKinds(t *testing.T) {
	repo := NewRepository()
	rec := models.Receivable{InvoiceAmount: decimal.NewFromInt(1), Currency: "PKR"}
	pay := models.Payable{POAmount: decimal.NewFromInt(1), Currency: "PKR", POIssueDate: time.Now()}
	entry := models.LedgerEntry{Direction: models.DirectionIncome, Description: "x", Amount: decimal.NewFromInt(1), Date: time.Now()}
	oh := models.Overhead{Name: "Rent", Amount: decimal.NewFromInt(1), Recurrence: models.RecurrenceMonthly}

	require.NoError(t, repo.CreateReceivable(&rec))
	require.NoError(t, repo.CreatePayable(&pay))
	require.NoError(t, repo.CreateLedgerEntry(&entry))
	require.NoError(t, repo.CreateOverhead(&oh))

	ids := map[int64]bool{rec.ID: true, pay.ID: true, entry.ID: true, oh.ID: true}
	assert.Len(t, ids, 4)
}

func TestUserStorage(t *testing.T) {
	repo := NewRepository()
	user := models.User{Email: "ops@example.com", Username: "ops", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(&user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindUserByEmail("ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindUserByEmail("nobody@example.com")
	assert.Error(t, err)

	duplicate := models.User{Email: "ops@example.com"}
	assert.Error(t, repo.CreateUser(&duplicate))
}

func TestRatesAreCopiedOnReadAndWrite(t *testing.T) {
	repo := NewRepository()
	table, loadedAt := repo.Rates()
	assert.Empty(t, table)
	assert.True(t, loadedAt.IsZero())

	source := models.RateTable{"USD": decimal.NewFromInt(280)}
	when := time.Date(2025, time.August, 29, 0, 0, 0, 0, time.UTC)
	repo.SetRates(source, when)

	// mutating the caller's map must not affect the stored table
	source["USD"] = decimal.NewFromInt(999)
	stored, gotWhen := repo.Rates()
	assert.True(t, stored["USD"].Equal(decimal.NewFromInt(280)))
	assert.Equal(t, when, gotWhen)

	// and mutating a returned copy must not affect the stored table either
	stored["USD"] = decimal.NewFromInt(1)
	again, _ := repo.Rates()
	assert.True(t, again["USD"].Equal(decimal.NewFromInt(280)))
}
