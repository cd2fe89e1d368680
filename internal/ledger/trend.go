package ledger

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmwaniki/pesa/internal/period"
)

// DatedAmount is the minimal shape the grouping functions need; every
// record collection can be lowered to it.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// MonthTotal is one month's sum for a single series.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TrendPoint is one month of the merged dashboard series.
type TrendPoint struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
	Net         decimal.Decimal `json:"net"`
}

// MonthlyTotals groups dated amounts by year-month, sums each group rounded
// to 2 decimals, and returns the totals in chronological order.
func MonthlyTotals(entries []DatedAmount) []MonthTotal {
	sums := make(map[string]decimal.Decimal)

	for _, e := range entries {
		key := period.Key(e.Date)
		sums[key] = sums[key].Add(e.Amount)
	}

	totals := make([]MonthTotal, 0, len(sums))
	for key, sum := range sums {
		totals = append(totals, MonthTotal{Month: key, Total: sum.Round(2)})
	}

	sort.Slice(totals, func(i, j int) bool { return totals[i].Month < totals[j].Month })

	return totals
}

// MergeTrend aligns the income, expense and investment monthly series on
// the union of their months, defaulting missing values to zero, and
// computes net = income - expenses per month.
func MergeTrend(income, expenses, investments []MonthTotal) []TrendPoint {
	points := make(map[string]*TrendPoint)

	at := func(month string) *TrendPoint {
		p, ok := points[month]
		if !ok {
			p = &TrendPoint{Month: month}
			points[month] = p
		}

		return p
	}

	for _, t := range income {
		at(t.Month).Income = t.Total
	}

	for _, t := range expenses {
		at(t.Month).Expenses = t.Total
	}

	for _, t := range investments {
		at(t.Month).Investments = t.Total
	}

	merged := make([]TrendPoint, 0, len(points))

	for _, p := range points {
		p.Net = p.Income.Sub(p.Expenses).Round(2)
		merged = append(merged, *p)
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Month < merged[j].Month })

	return merged
}

// FilterYear keeps only the points of the given year.
func FilterYear(points []TrendPoint, year int) []TrendPoint {
	var out []TrendPoint

	for _, p := range points {
		if t, err := period.ParseKey(p.Month); err == nil && t.Year() == year {
			out = append(out, p)
		}
	}

	return out
}

// FilterMonth keeps only the points of the given calendar month.
func FilterMonth(points []TrendPoint, m time.Month) []TrendPoint {
	var out []TrendPoint

	for _, p := range points {
		if t, err := period.ParseKey(p.Month); err == nil && t.Month() == m {
			out = append(out, p)
		}
	}

	return out
}

// ParseMonthName resolves an English month name ("March") to its
// time.Month, case-insensitively.
func ParseMonthName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}

	return 0, false
}

// IncomeSeries lowers incomes to dated amounts.
func IncomeSeries(incomes []Income) []DatedAmount {
	out := make([]DatedAmount, len(incomes))
	for i, in := range incomes {
		out[i] = DatedAmount{Date: in.Date, Amount: in.Amount}
	}

	return out
}

// ExpenseSeries lowers expenses to dated amounts. Projected rows are
// excluded; they must never feed totals.
func ExpenseSeries(expenses []Expense) []DatedAmount {
	out := make([]DatedAmount, 0, len(expenses))

	for _, e := range expenses {
		if e.Projected {
			continue
		}

		out = append(out, DatedAmount{Date: e.Date, Amount: e.Amount})
	}

	return out
}

// InvestmentSeries lowers investments to dated amounts, keeping the sign.
func InvestmentSeries(investments []Investment) []DatedAmount {
	out := make([]DatedAmount, len(investments))
	for i, iv := range investments {
		out[i] = DatedAmount{Date: iv.Date, Amount: iv.Amount}
	}

	return out
}

// ProjectStats is the funding-gap view of one savings goal.
type ProjectStats struct {
	ProjectID       string          `json:"projectId"`
	Contributed     decimal.Decimal `json:"contributed"`
	Remaining       decimal.Decimal `json:"remaining"`
	MonthsLeft      int             `json:"monthsLeft"`
	RequiredMonthly decimal.Decimal `json:"requiredMonthly"`
}

// avgDaysPerMonth converts a day distance into a month count for goal
// pacing. 365.25/12.
const avgDaysPerMonth = 30.4

// StatsForProject computes the funding gap of a goal as of now: what has
// been contributed, what remains, and the monthly amount needed to close
// the gap by the target date. A past or immediate target still leaves at
// least one month of runway.
func StatsForProject(p Project, contributions []Contribution, now time.Time) ProjectStats {
	contributed := decimal.Zero

	for _, c := range contributions {
		if c.ProjectID == p.ID {
			contributed = contributed.Add(c.Amount)
		}
	}

	contributed = contributed.Round(2)

	remaining := p.TargetAmount.Sub(contributed)
	if remaining.Sign() < 0 {
		remaining = decimal.Zero
	}

	days := p.TargetDate.Sub(now).Hours() / 24
	monthsLeft := int(math.Ceil(days / avgDaysPerMonth))

	if monthsLeft < 1 {
		monthsLeft = 1
	}

	return ProjectStats{
		ProjectID:       p.ID,
		Contributed:     contributed,
		Remaining:       remaining,
		MonthsLeft:      monthsLeft,
		RequiredMonthly: remaining.DivRound(decimal.NewFromInt(int64(monthsLeft)), 2),
	}
}

// GoalOutlook aggregates the monthly requirement over all goals against the
// net of the current month.
type GoalOutlook struct {
	RequiredMonthly decimal.Decimal `json:"requiredMonthly"`
	Available       decimal.Decimal `json:"available"`
}

// Outlook sums the required monthly amount over every goal and reports how
// much of this month's net remains after funding them.
func Outlook(projects []Project, contributions []Contribution, netThisMonth decimal.Decimal, now time.Time) GoalOutlook {
	required := decimal.Zero

	for _, p := range projects {
		required = required.Add(StatsForProject(p, contributions, now).RequiredMonthly)
	}

	required = required.Round(2)

	return GoalOutlook{
		RequiredMonthly: required,
		Available:       netThisMonth.Sub(required).Round(2),
	}
}

// MonthJournal returns the journal entries dated in the month of ym, most
// recent first.
func MonthJournal(entries []JournalEntry, ym time.Time) []JournalEntry {
	var out []JournalEntry

	for _, e := range entries {
		if period.SameMonth(e.Date, ym) {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })

	return out
}

// monthTotalFor picks one month's value out of a monthly series.
func monthTotalFor(totals []MonthTotal, key string) decimal.Decimal {
	for _, t := range totals {
		if t.Month == key {
			return t.Total
		}
	}

	return decimal.Zero
}
