package forecast

import (
	"time"

	"github.com/merchops/merch-service/internal/models"
)

// Snapshots computes current-week and current-month inflow/outflow totals
// over the timeline as of the given instant. Week matching uses the ISO week
// number together with the ISO week year, so an event in week 53 of the
// prior year never matches week 1 of the current one.
func Snapshots(timeline []models.CashFlowEvent, now time.Time) models.Snapshot {
	var snap models.Snapshot
	nowWeekYear, nowWeek := now.ISOWeek()

	for _, e := range timeline {
		sameMonth := e.Date.Year() == now.Year() && e.Date.Month() == now.Month()
		weekYear, week := e.Date.ISOWeek()
		sameWeek := weekYear == nowWeekYear && week == nowWeek
		if !sameMonth && !sameWeek {
			continue
		}
		if e.Direction == models.Inflow {
			if sameWeek {
				snap.WeekIn = snap.WeekIn.Add(e.Amount)
			}
			if sameMonth {
				snap.MonthIn = snap.MonthIn.Add(e.Amount)
			}
		} else {
			if sameWeek {
				snap.WeekOut = snap.WeekOut.Add(e.Amount)
			}
			if sameMonth {
				snap.MonthOut = snap.MonthOut.Add(e.Amount)
			}
		}
	}
	return snap
}
