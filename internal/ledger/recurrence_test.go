package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
)

func monthlyRent() ledger.Expense {
	return ledger.Expense{
		ID:          "rent",
		Date:        date(2024, time.January, 5),
		Category:    "Rent",
		Amount:      dec("500"),
		IsRecurring: true,
		AccountID:   "acc",
	}
}

func TestProjectRecurring_Monthly(t *testing.T) {
	expenses := []ledger.Expense{monthlyRent()}

	rows := ledger.ProjectRecurring(expenses, date(2024, time.March, 1))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "projected:rent:2024-03", row.ID)
	assert.True(t, row.Projected)
	assert.Equal(t, date(2024, time.March, 5), row.Date)
	assert.Equal(t, "Rent", row.Category)
	assert.True(t, row.Amount.Equal(dec("500")))
	assert.Equal(t, "(projected)", row.Notes)
}

func TestProjectRecurring_AnchorMonthIsTheRealRow(t *testing.T) {
	expenses := []ledger.Expense{monthlyRent()}

	assert.Empty(t, ledger.ProjectRecurring(expenses, date(2024, time.January, 1)))
}

func TestProjectRecurring_BeforeStart(t *testing.T) {
	expenses := []ledger.Expense{monthlyRent()}

	assert.Empty(t, ledger.ProjectRecurring(expenses, date(2023, time.December, 1)))
}

func TestProjectRecurring_Quarterly(t *testing.T) {
	e := monthlyRent()
	e.IsRecurring = false
	e.Recurrence = &ledger.Recurrence{
		Enabled: true,
		Period:  ledger.Quarterly,
		Start:   date(2024, time.January, 5),
	}

	expenses := []ledger.Expense{e}

	tests := []struct {
		month time.Month
		want  int
	}{
		{time.February, 0},
		{time.March, 0},
		{time.April, 1},
		{time.May, 0},
		{time.July, 1},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Len(t, ledger.ProjectRecurring(expenses, date(2024, tt.month, 1)), tt.want)
		})
	}
}

func TestProjectRecurring_Annually(t *testing.T) {
	e := monthlyRent()
	e.IsRecurring = false
	e.Recurrence = &ledger.Recurrence{
		Enabled: true,
		Period:  ledger.Annually,
		Start:   date(2024, time.January, 5),
	}

	expenses := []ledger.Expense{e}

	assert.Empty(t, ledger.ProjectRecurring(expenses, date(2024, time.June, 1)))
	assert.Len(t, ledger.ProjectRecurring(expenses, date(2025, time.January, 1)), 1)
	assert.Empty(t, ledger.ProjectRecurring(expenses, date(2025, time.February, 1)))
}

func TestProjectRecurring_EndDate(t *testing.T) {
	e := monthlyRent()
	e.Recurrence = &ledger.Recurrence{
		Enabled: true,
		Period:  ledger.Monthly,
		Start:   date(2024, time.January, 5),
		End:     date(2024, time.March, 31),
	}

	expenses := []ledger.Expense{e}

	assert.Len(t, ledger.ProjectRecurring(expenses, date(2024, time.March, 1)), 1)
	assert.Empty(t, ledger.ProjectRecurring(expenses, date(2024, time.April, 1)))
}

func TestProjectRecurring_DayClamped(t *testing.T) {
	e := monthlyRent()
	e.Date = date(2024, time.January, 31)

	rows := ledger.ProjectRecurring([]ledger.Expense{e}, date(2024, time.February, 1))
	require.Len(t, rows, 1)

	assert.Equal(t, date(2024, time.February, 28), rows[0].Date)
}

func TestProjectRecurring_SuppressedByManualEntry(t *testing.T) {
	manual := ledger.Expense{
		ID:        "manual",
		Date:      date(2024, time.March, 3),
		Category:  "Rent",
		Amount:    dec("500"),
		AccountID: "acc",
	}

	rows := ledger.ProjectRecurring([]ledger.Expense{monthlyRent(), manual}, date(2024, time.March, 1))
	assert.Empty(t, rows)

	// A different amount is a different charge and still projects.
	manual.Amount = dec("480")
	rows = ledger.ProjectRecurring([]ledger.Expense{monthlyRent(), manual}, date(2024, time.March, 1))
	assert.Len(t, rows, 1)
}

func TestProjectRecurring_DisabledRecurrenceWins(t *testing.T) {
	e := monthlyRent()

	// A structured recurrence with Enabled=false overrides the legacy flag.
	e.Recurrence = &ledger.Recurrence{Enabled: false}

	assert.Empty(t, ledger.ProjectRecurring([]ledger.Expense{e}, date(2024, time.March, 1)))
}

func TestNormalizedRecurrence(t *testing.T) {
	legacy := monthlyRent()

	rec, ok := legacy.NormalizedRecurrence()
	require.True(t, ok)
	assert.Equal(t, ledger.Monthly, rec.Period)
	assert.Equal(t, legacy.Date, rec.Start)
	assert.True(t, rec.End.IsZero())

	plain := legacy
	plain.IsRecurring = false
	_, ok = plain.NormalizedRecurrence()
	assert.False(t, ok)

	structured := plain
	structured.Recurrence = &ledger.Recurrence{Enabled: true}
	rec, ok = structured.NormalizedRecurrence()
	require.True(t, ok)
	assert.Equal(t, ledger.Monthly, rec.Period)
	assert.Equal(t, structured.Date, rec.Start)
}
