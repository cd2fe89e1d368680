package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
)

func TestMonthlyTotals(t *testing.T) {
	entries := []ledger.DatedAmount{
		{Date: date(2024, time.March, 1), Amount: dec("100.10")},
		{Date: date(2024, time.March, 20), Amount: dec("50.15")},
		{Date: date(2024, time.January, 5), Amount: dec("30")},
	}

	totals := ledger.MonthlyTotals(entries)
	require.Len(t, totals, 2)

	// Chronological order, summed per month.
	assert.Equal(t, "2024-01", totals[0].Month)
	assert.True(t, totals[0].Total.Equal(dec("30")))
	assert.Equal(t, "2024-03", totals[1].Month)
	assert.True(t, totals[1].Total.Equal(dec("150.25")))
}

func TestMergeTrend(t *testing.T) {
	income := []ledger.MonthTotal{
		{Month: "2024-01", Total: dec("1000")},
		{Month: "2024-02", Total: dec("1200")},
	}
	expenses := []ledger.MonthTotal{
		{Month: "2024-02", Total: dec("700")},
		{Month: "2024-03", Total: dec("400")},
	}
	investments := []ledger.MonthTotal{
		{Month: "2024-01", Total: dec("150")},
	}

	points := ledger.MergeTrend(income, expenses, investments)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01", points[0].Month)
	assert.True(t, points[0].Net.Equal(dec("1000")))
	assert.True(t, points[0].Investments.Equal(dec("150")))

	assert.Equal(t, "2024-02", points[1].Month)
	assert.True(t, points[1].Net.Equal(dec("500")))

	// A month with only expenses nets negative.
	assert.Equal(t, "2024-03", points[2].Month)
	assert.True(t, points[2].Income.IsZero())
	assert.True(t, points[2].Net.Equal(dec("-400")))
}

func TestTrendFilters(t *testing.T) {
	points := []ledger.TrendPoint{
		{Month: "2023-03"},
		{Month: "2024-03"},
		{Month: "2024-07"},
	}

	byYear := ledger.FilterYear(points, 2024)
	require.Len(t, byYear, 2)
	assert.Equal(t, "2024-03", byYear[0].Month)

	byMonth := ledger.FilterMonth(points, time.March)
	require.Len(t, byMonth, 2)
	assert.Equal(t, "2023-03", byMonth[0].Month)
}

func TestParseMonthName(t *testing.T) {
	m, ok := ledger.ParseMonthName("march")
	require.True(t, ok)
	assert.Equal(t, time.March, m)

	m, ok = ledger.ParseMonthName("December")
	require.True(t, ok)
	assert.Equal(t, time.December, m)

	_, ok = ledger.ParseMonthName("Mar")
	assert.False(t, ok)
}

func TestExpenseSeries_SkipsProjected(t *testing.T) {
	expenses := []ledger.Expense{
		{Date: date(2024, time.March, 1), Amount: dec("100")},
		{Date: date(2024, time.March, 5), Amount: dec("900"), Projected: true},
	}

	series := ledger.ExpenseSeries(expenses)
	require.Len(t, series, 1)
	assert.True(t, series[0].Amount.Equal(dec("100")))
}

func TestStatsForProject(t *testing.T) {
	p := ledger.Project{
		ID:           "trip",
		Name:         "Trip",
		TargetAmount: dec("1200"),
		TargetDate:   date(2024, time.July, 1),
	}
	contributions := []ledger.Contribution{
		{ProjectID: "trip", Date: date(2024, time.January, 2), Amount: dec("150")},
		{ProjectID: "trip", Date: date(2024, time.January, 20), Amount: dec("50")},
		{ProjectID: "other", Date: date(2024, time.January, 20), Amount: dec("999")},
	}

	// Roughly six months out.
	stats := ledger.StatsForProject(p, contributions, date(2024, time.January, 1))

	assert.True(t, stats.Contributed.Equal(dec("200")))
	assert.True(t, stats.Remaining.Equal(dec("1000")))
	assert.Equal(t, 6, stats.MonthsLeft)
	assert.True(t, stats.RequiredMonthly.Equal(dec("166.67")))
}

func TestStatsForProject_PastTarget(t *testing.T) {
	p := ledger.Project{
		ID:           "late",
		Name:         "Late",
		TargetAmount: dec("300"),
		TargetDate:   date(2024, time.January, 1),
	}

	stats := ledger.StatsForProject(p, nil, date(2024, time.June, 1))

	// A missed target still leaves one month of runway.
	assert.Equal(t, 1, stats.MonthsLeft)
	assert.True(t, stats.RequiredMonthly.Equal(dec("300")))
}

func TestStatsForProject_Overfunded(t *testing.T) {
	p := ledger.Project{
		ID:           "done",
		Name:         "Done",
		TargetAmount: dec("100"),
		TargetDate:   date(2024, time.December, 1),
	}
	contributions := []ledger.Contribution{
		{ProjectID: "done", Date: date(2024, time.January, 2), Amount: dec("140")},
	}

	stats := ledger.StatsForProject(p, contributions, date(2024, time.January, 1))

	assert.True(t, stats.Remaining.IsZero())
	assert.True(t, stats.RequiredMonthly.IsZero())
}

func TestOutlook(t *testing.T) {
	projects := []ledger.Project{
		{ID: "a", Name: "A", TargetAmount: dec("600"), TargetDate: date(2024, time.July, 1)},
		{ID: "b", Name: "B", TargetAmount: dec("300"), TargetDate: date(2024, time.July, 1)},
	}

	outlook := ledger.Outlook(projects, nil, dec("500"), date(2024, time.January, 1))

	// 100 + 50 required, from a 500 net.
	assert.True(t, outlook.RequiredMonthly.Equal(dec("150")))
	assert.True(t, outlook.Available.Equal(dec("350")))
}

func TestMonthJournal(t *testing.T) {
	entries := []ledger.JournalEntry{
		{ID: "1", Date: date(2024, time.March, 2)},
		{ID: "2", Date: date(2024, time.March, 20)},
		{ID: "3", Date: date(2024, time.April, 1)},
	}

	month := ledger.MonthJournal(entries, date(2024, time.March, 1))
	require.Len(t, month, 2)

	// Newest first.
	assert.Equal(t, "2", month[0].ID)
	assert.Equal(t, "1", month[1].ID)
}
