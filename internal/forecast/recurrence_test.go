package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchops/merch-service/internal/models"
)

func TestExpandMonthlyFillsEveryMonth(t *testing.T) {
	overheads := []models.Overhead{{ID: 1, Name: "Office rent", Amount: dec("50000"), Recurrence: models.RecurrenceMonthly}}

	events := Expand(overheads, date(2025, time.September, 14), 6)
	require.Len(t, events, 6)
	for i, e := range events {
		assert.Equal(t, models.Outflow, e.Direction)
		assert.Equal(t, models.SourceOverhead, e.SourceKind)
		assert.True(t, e.Amount.Equal(dec("50000")))
		assert.Equal(t, 1, e.Date.Day(), "occurrence %d must be dated on the 1st", i)
	}
	assert.Equal(t, date(2025, time.September, 1), events[0].Date)
	assert.Equal(t, date(2026, time.February, 1), events[5].Date)
}

func TestExpandQuarterlyAlignsToCalendarQuarters(t *testing.T) {
	overheads := []models.Overhead{{ID: 2, Name: "Audit fee", Amount: dec("30000"), Recurrence: models.RecurrenceQuarterly}}

	// Window Feb..Jul 2025 contains the quarter starts Apr and Jul only.
	events := Expand(overheads, date(2025, time.February, 20), 6)
	require.Len(t, events, 2)
	assert.Equal(t, date(2025, time.April, 1), events[0].Date)
	assert.Equal(t, date(2025, time.July, 1), events[1].Date)
}

func TestExpandQuarterlyIgnoresStartDateMonth(t *testing.T) {
	// A quarterly overhead started in February still lands on calendar
	// quarter starts, not on Feb/May/Aug/Nov.
	overheads := []models.Overhead{{
		ID: 3, Name: "Insurance", Amount: dec("12000"),
		Recurrence: models.RecurrenceQuarterly,
		StartDate:  date(2025, time.February, 1),
	}}

	events := Expand(overheads, date(2025, time.January, 1), 6)
	require.Len(t, events, 2)
	assert.Equal(t, date(2025, time.January, 1), events[0].Date)
	assert.Equal(t, date(2025, time.April, 1), events[1].Date)
}

func TestExpandYearlyOnlyInJanuary(t *testing.T) {
	overheads := []models.Overhead{{ID: 4, Name: "Trade license", Amount: dec("90000"), Recurrence: models.RecurrenceYearly}}

	// Window containing January: exactly one occurrence.
	events := Expand(overheads, date(2025, time.November, 5), 6)
	require.Len(t, events, 1)
	assert.Equal(t, date(2026, time.January, 1), events[0].Date)

	// Window not containing January: none.
	events = Expand(overheads, date(2025, time.February, 5), 6)
	assert.Empty(t, events)
}

func TestExpandDefaultWindow(t *testing.T) {
	overheads := []models.Overhead{{ID: 5, Name: "Rent", Amount: dec("1"), Recurrence: models.RecurrenceMonthly}}
	events := Expand(overheads, date(2025, time.March, 1), 0)
	assert.Len(t, events, DefaultWindowMonths)
}

func TestExpandDeterministicIDs(t *testing.T) {
	overheads := []models.Overhead{{ID: 9, Name: "Rent", Amount: dec("100"), Recurrence: models.RecurrenceMonthly}}
	first := Expand(overheads, date(2025, time.June, 15), 3)
	second := Expand(overheads, date(2025, time.June, 15), 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "ovh-9-2025-06", first[0].ID)
}
