package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/merchops/merch-service/internal/models"
)

func TestSnapshotsMonthTotals(t *testing.T) {
	now := date(2025, time.March, 15)
	timeline := []models.CashFlowEvent{
		{Date: date(2025, time.March, 3), Direction: models.Inflow, Amount: dec("1000")},
		{Date: date(2025, time.March, 28), Direction: models.Outflow, Amount: dec("400")},
		{Date: date(2025, time.February, 28), Direction: models.Inflow, Amount: dec("9999")}, // outside month
		{Date: date(2024, time.March, 10), Direction: models.Inflow, Amount: dec("7777")},    // same month, wrong year
	}

	snap := Snapshots(timeline, now)
	assert.True(t, snap.MonthIn.Equal(dec("1000")), "got %s", snap.MonthIn)
	assert.True(t, snap.MonthOut.Equal(dec("400")), "got %s", snap.MonthOut)
}

func TestSnapshotsWeekTotals(t *testing.T) {
	// 2025-03-12 is a Wednesday; its ISO week runs Mon 2025-03-10 .. Sun 2025-03-16.
	now := date(2025, time.March, 12)
	timeline := []models.CashFlowEvent{
		{Date: date(2025, time.March, 10), Direction: models.Inflow, Amount: dec("500")},
		{Date: date(2025, time.March, 16), Direction: models.Outflow, Amount: dec("120")},
		{Date: date(2025, time.March, 17), Direction: models.Inflow, Amount: dec("9999")}, // next week
	}

	snap := Snapshots(timeline, now)
	assert.True(t, snap.WeekIn.Equal(dec("500")), "got %s", snap.WeekIn)
	assert.True(t, snap.WeekOut.Equal(dec("120")), "got %s", snap.WeekOut)
}

func TestSnapshotsWeekNumberCoincidenceAcrossYears(t *testing.T) {
	// 2026 has 53 ISO weeks. Week 53 of 2026 (Dec 28 2026 .. Jan 3 2027)
	// must not leak into week 1 of 2027 (Jan 4 2027 onward) just because
	// both carry small week numbers.
	now := date(2027, time.January, 5) // ISO week 1 of 2027
	timeline := []models.CashFlowEvent{
		{Date: date(2026, time.December, 29), Direction: models.Inflow, Amount: dec("1000")}, // week 53 of 2026
		{Date: date(2027, time.January, 4), Direction: models.Inflow, Amount: dec("250")},    // week 1 of 2027
	}

	snap := Snapshots(timeline, now)
	assert.True(t, snap.WeekIn.Equal(dec("250")), "got %s", snap.WeekIn)
}

func TestSnapshotsWeekSpanningYearBoundary(t *testing.T) {
	// Jan 1 2027 belongs to ISO week 53 of 2026; it counts toward the week
	// totals of Dec 29 2026 but not toward its month totals.
	now := date(2026, time.December, 29)
	timeline := []models.CashFlowEvent{
		{Date: date(2027, time.January, 1), Direction: models.Outflow, Amount: dec("300")},
	}

	snap := Snapshots(timeline, now)
	assert.True(t, snap.WeekOut.Equal(dec("300")), "got %s", snap.WeekOut)
	assert.True(t, snap.MonthOut.IsZero(), "got %s", snap.MonthOut)
}

func TestSnapshotsEmptyTimeline(t *testing.T) {
	snap := Snapshots(nil, date(2025, time.July, 1))
	assert.True(t, snap.WeekIn.IsZero())
	assert.True(t, snap.WeekOut.IsZero())
	assert.True(t, snap.MonthIn.IsZero())
	assert.True(t, snap.MonthOut.IsZero())
}
