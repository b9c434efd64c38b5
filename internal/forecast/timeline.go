package forecast

import (
	"sort"
	"time"

	"github.com/merchops/merch-service/internal/models"
)

// Inputs bundles the four source collections and the rate table the engine
// derives from. The engine never mutates them.
type Inputs struct {
	Receivables []models.Receivable
	Payables    []models.Payable
	Entries     []models.LedgerEntry
	Overheads   []models.Overhead
	Rates       models.RateTable
}

// Assemble merges event batches into one timeline sorted ascending by date.
// Events on the same date keep their insertion order.
func Assemble(batches ...[]models.CashFlowEvent) []models.CashFlowEvent {
	var timeline []models.CashFlowEvent
	for _, batch := range batches {
		timeline = append(timeline, batch...)
	}
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})
	return timeline
}

// BuildTimeline runs the full derivation pipeline: normalize the three
// transactional sources, expand recurring overheads across the window, and
// assemble everything into one sorted timeline. The pipeline is pure:
// identical inputs and asOf always produce identical output.
func BuildTimeline(in Inputs, asOf time.Time, opts Options) ([]models.CashFlowEvent, Report) {
	events, report := NormalizeEvents(in.Receivables, in.Payables, in.Entries, in.Rates, opts)
	expanded := Expand(in.Overheads, asOf, opts.WindowMonths)
	return Assemble(events, expanded), report
}
