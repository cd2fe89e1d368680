package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
)

func TestBuildDashboard(t *testing.T) {
	b, checking, savings := newBook(t)

	_, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("2000"), AccountID: checking,
	})
	require.NoError(t, err)

	_, err = b.AddExpense(ledger.Expense{
		Date: date(2024, time.March, 5), Category: "Groceries", Amount: dec("300"), AccountID: checking,
	})
	require.NoError(t, err)

	// A recurring charge anchored in January shows up as a projection.
	_, err = b.AddExpense(ledger.Expense{
		Date: date(2024, time.January, 5), Category: "Rent", Amount: dec("500"),
		AccountID: checking, IsRecurring: true,
	})
	require.NoError(t, err)

	_, err = b.AddTransfer(ledger.Transfer{
		Date: date(2024, time.March, 10), FromAccountID: checking, ToAccountID: savings, Amount: dec("150"),
	})
	require.NoError(t, err)

	p, err := b.AddProject(ledger.Project{
		Name: "Trip", TargetAmount: dec("1200"), TargetDate: date(2024, time.September, 1),
	})
	require.NoError(t, err)

	_, err = b.AddContribution(ledger.Contribution{
		ProjectID: p.ID, Date: date(2024, time.March, 2), Amount: dec("200"),
	})
	require.NoError(t, err)

	d := ledger.BuildDashboard(b.State(), date(2024, time.March, 1), date(2024, time.March, 1))

	assert.Equal(t, "2024-03", d.Month)
	assert.True(t, d.Income.Equal(dec("2000")))

	// Projected rows never feed totals; only the real March expense counts.
	assert.True(t, d.Expenses.Equal(dec("300")))
	assert.True(t, d.Net.Equal(dec("1700")))

	// Income, expense and both transfer legs land in the month journal.
	assert.Len(t, d.Journal, 4)

	require.Len(t, d.ProjectedExpenses, 1)
	assert.Equal(t, "Rent", d.ProjectedExpenses[0].Category)
	assert.True(t, d.ProjectedExpenses[0].Projected)

	// January and March both contribute trend points.
	require.Len(t, d.Trend, 2)
	assert.Equal(t, "2024-01", d.Trend[0].Month)
	assert.Equal(t, "2024-03", d.Trend[1].Month)

	require.Len(t, d.Projects, 1)
	assert.True(t, d.Projects[0].Contributed.Equal(dec("200")))
	assert.True(t, d.Projects[0].Remaining.Equal(dec("1000")))

	assert.True(t, d.Goals.Available.Equal(d.Net.Sub(d.Goals.RequiredMonthly)))
}
