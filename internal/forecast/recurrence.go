package forecast

import (
	"fmt"
	"time"

	"github.com/merchops/merch-service/internal/models"
)

// DefaultWindowMonths is the forward window the dashboard forecasts over
const DefaultWindowMonths = 6

// Expand materializes recurring overheads into concrete outflow events
// across a forward window of windowMonths calendar months, anchored at the
// month containing asOf. Each occurrence is dated on the 1st of its month.
func Expand(overheads []models.Overhead, asOf time.Time, windowMonths int) []models.CashFlowEvent {
	if windowMonths <= 0 {
		windowMonths = DefaultWindowMonths
	}
	anchor := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	var events []models.CashFlowEvent
	for m := 0; m < windowMonths; m++ {
		month := anchor.AddDate(0, m, 0)
		for _, oh := range overheads {
			if !dueInMonth(oh.Recurrence, month.Month()) {
				continue
			}
			events = append(events, models.CashFlowEvent{
				ID:          fmt.Sprintf("ovh-%d-%s", oh.ID, month.Format("2006-01")),
				Date:        month,
				Direction:   models.Outflow,
				SourceKind:  models.SourceOverhead,
				Description: oh.Name,
				Amount:      oh.Amount, // defined in base currency, no conversion
			})
		}
	}
	return events
}

// dueInMonth reports whether a recurrence falls due in the given calendar
// month. Quarterly obligations align to calendar quarters (Jan/Apr/Jul/Oct)
// and yearly ones to January, regardless of the overhead's start date.
func dueInMonth(r models.Recurrence, m time.Month) bool {
	switch r {
	case models.RecurrenceMonthly:
		return true
	case models.RecurrenceQuarterly:
		return (int(m)-1)%3 == 0
	case models.RecurrenceYearly:
		return m == time.January
	}
	return false
}
