package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmwaniki/pesa/internal/period"
)

// Dashboard is the derived view-model the presentation layer reads. It is
// recomputed from current state on every query; nothing here is stored.
type Dashboard struct {
	Month             string          `json:"month"`
	Income            decimal.Decimal `json:"income"`
	Expenses          decimal.Decimal `json:"expenses"`
	Net               decimal.Decimal `json:"net"`
	Journal           []JournalEntry  `json:"journal"`
	Trend             []TrendPoint    `json:"trend"`
	ProjectedExpenses []Expense       `json:"projectedExpenses"`
	Projects          []ProjectStats  `json:"projects"`
	Goals             GoalOutlook     `json:"goals"`
}

// BuildDashboard assembles the dashboard for the month of ym. Goal pacing
// is computed as of now.
func BuildDashboard(st *State, ym, now time.Time) Dashboard {
	var (
		incomeTotals     = MonthlyTotals(IncomeSeries(st.Incomes))
		expenseTotals    = MonthlyTotals(ExpenseSeries(st.Expenses))
		investmentTotals = MonthlyTotals(InvestmentSeries(st.Investments))
	)

	key := period.Key(ym)

	d := Dashboard{
		Month:             key,
		Income:            monthTotalFor(incomeTotals, key),
		Expenses:          monthTotalFor(expenseTotals, key),
		Journal:           MonthJournal(st.Journal, ym),
		Trend:             MergeTrend(incomeTotals, expenseTotals, investmentTotals),
		ProjectedExpenses: ProjectRecurring(st.Expenses, ym),
	}

	d.Net = d.Income.Sub(d.Expenses).Round(2)

	d.Projects = make([]ProjectStats, 0, len(st.Projects))
	for _, p := range st.Projects {
		d.Projects = append(d.Projects, StatsForProject(p, st.Contributions, now))
	}

	d.Goals = Outlook(st.Projects, st.Contributions, d.Net, now)

	return d
}
