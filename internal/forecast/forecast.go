package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merchops/merch-service/internal/models"
)

// Forecast buckets the timeline by calendar month, sums inflow and outflow
// per bucket, and carries a cumulative running balance across the
// chronologically ordered buckets, seeded at zero. Ordering is by the
// underlying month date, never by the display label ("Dec 2025" must come
// before "Jan 2026").
func Forecast(timeline []models.CashFlowEvent) []models.MonthBucket {
	byMonth := make(map[time.Time]*models.MonthBucket)
	for _, e := range timeline {
		key := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &models.MonthBucket{Month: key, Label: key.Format("Jan 2006")}
			byMonth[key] = bucket
		}
		if e.Direction == models.Inflow {
			bucket.Inflow = bucket.Inflow.Add(e.Amount)
		} else {
			bucket.Outflow = bucket.Outflow.Add(e.Amount)
		}
	}

	months := make([]time.Time, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	buckets := make([]models.MonthBucket, 0, len(months))
	balance := decimal.Zero
	for _, k := range months {
		bucket := *byMonth[k]
		balance = balance.Add(bucket.Inflow.Sub(bucket.Outflow))
		bucket.RunningBalance = balance
		buckets = append(buckets, bucket)
	}
	return buckets
}
