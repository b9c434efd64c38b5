package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchops/merch-service/internal/models"
)

func TestAssembleSortsByDate(t *testing.T) {
	a := []models.CashFlowEvent{
		{ID: "a", Date: date(2025, time.March, 10)},
		{ID: "b", Date: date(2025, time.January, 5)},
	}
	b := []models.CashFlowEvent{
		{ID: "c", Date: date(2025, time.February, 1)},
	}

	timeline := Assemble(a, b)
	require.Len(t, timeline, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{timeline[0].ID, timeline[1].ID, timeline[2].ID})
}

func TestAssembleStableOnEqualDates(t *testing.T) {
	d := date(2025, time.April, 1)
	a := []models.CashFlowEvent{{ID: "first", Date: d}, {ID: "second", Date: d}}
	b := []models.CashFlowEvent{{ID: "third", Date: d}}

	timeline := Assemble(a, b)
	assert.Equal(t, "first", timeline[0].ID)
	assert.Equal(t, "second", timeline[1].ID)
	assert.Equal(t, "third", timeline[2].ID)
}

func TestBuildTimelineIsIdempotent(t *testing.T) {
	ship := date(2025, time.January, 1)
	in := Inputs{
		Receivables: []models.Receivable{{ID: 1, JobRef: "J1", InvoiceAmount: dec("1000"), Currency: "USD", ShipDate: &ship, PaymentTermDays: 30}},
		Payables:    []models.Payable{{ID: 1, JobRef: "J2", POAmount: dec("400"), Currency: "PKR", POIssueDate: date(2025, time.January, 10), PaymentTermDays: 7}},
		Entries:     []models.LedgerEntry{{ID: 1, Direction: models.DirectionExpense, Description: "Courier", Amount: dec("250"), Date: date(2025, time.January, 12)}},
		Overheads:   []models.Overhead{{ID: 1, Name: "Rent", Amount: dec("50000"), Recurrence: models.RecurrenceMonthly}},
		Rates:       models.RateTable{"USD": dec("280")},
	}
	asOf := date(2025, time.January, 15)

	first, firstReport := BuildTimeline(in, asOf, testOpts())
	second, secondReport := BuildTimeline(in, asOf, testOpts())
	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)

	// sorted ascending
	for i := 1; i < len(first); i++ {
		assert.False(t, first[i].Date.Before(first[i-1].Date))
	}
}
