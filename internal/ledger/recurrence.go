package ledger

import (
	"strings"
	"time"

	"github.com/kmwaniki/pesa/internal/period"
)

// projectedNote is appended to the notes of synthesized rows.
const projectedNote = "(projected)"

// ProjectRecurring returns the synthetic expense rows expected in the month
// of ym from the recurring expenses in the collection. The rows are display
// artifacts: their ids never exist in the store, so edits and deletes
// against them fall through as no-ops, and they never reach balances or
// the journal.
func ProjectRecurring(expenses []Expense, ym time.Time) []Expense {
	// Signatures of real rows already present that month, so a manually
	// entered instance of a recurring charge is not listed twice.
	present := make(map[string]struct{})

	for _, e := range expenses {
		if period.SameMonth(e.Date, ym) {
			present[signature(e)] = struct{}{}
		}
	}

	var projected []Expense

	for _, e := range expenses {
		rec, ok := e.NormalizedRecurrence()
		if !ok {
			continue
		}

		if !occursIn(rec, ym) {
			continue
		}

		// The anchor occurrence is the real record itself.
		if period.SameMonth(e.Date, ym) {
			continue
		}

		if _, dup := present[signature(e)]; dup {
			continue
		}

		row := e
		row.ID = "projected:" + e.ID + ":" + period.Key(ym)
		row.Projected = true
		row.Date = period.ClampDay(ym, rec.Start.Day())
		row.Notes = strings.TrimSpace(e.Notes + " " + projectedNote)

		projected = append(projected, row)
	}

	return projected
}

// occursIn reports whether a recurrence schedule has an occurrence in the
// month of ym.
func occursIn(rec Recurrence, ym time.Time) bool {
	if !period.InWindow(ym, rec.Start, rec.End) {
		return false
	}

	diff := period.MonthsBetween(rec.Start, ym)
	if diff < 0 {
		return false
	}

	switch rec.Period {
	case Quarterly:
		return diff%3 == 0
	case Annually:
		return diff%12 == 0
	default:
		return true
	}
}

func signature(e Expense) string {
	return e.Category + "|" + e.Amount.String() + "|" + e.AccountID
}
