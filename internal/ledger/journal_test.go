package ledger_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
)

// mutate runs a mixed lifecycle against the book: adds of every journal
// source, edits that move records across accounts, and deletes.
func mutate(t *testing.T, b *ledger.Book, checking, savings string) {
	t.Helper()

	salary, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("2500"), AccountID: checking,
	})
	require.NoError(t, err)

	bonus, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 15), Source: "Bonus", Amount: dec("400"), AccountID: checking,
	})
	require.NoError(t, err)

	rent, err := b.AddExpense(ledger.Expense{
		Date: date(2024, time.March, 5), Category: "Rent", Amount: dec("900"), AccountID: checking,
	})
	require.NoError(t, err)

	groceries, err := b.AddExpense(ledger.Expense{
		Date: date(2024, time.March, 8), Category: "Groceries", Amount: dec("120.55"), AccountID: checking,
	})
	require.NoError(t, err)

	stash, err := b.AddTransfer(ledger.Transfer{
		Date: date(2024, time.March, 10), FromAccountID: checking, ToAccountID: savings, Amount: dec("600"),
	})
	require.NoError(t, err)

	_, err = b.AddInvestment(ledger.Investment{
		Date: date(2024, time.March, 12), Instrument: "Index fund", Amount: dec("300"), AccountID: savings,
	})
	require.NoError(t, err)

	salary.Amount = dec("2600")
	require.NoError(t, b.UpdateIncome(salary))

	rent.AccountID = savings
	require.NoError(t, b.UpdateExpense(rent))

	stash.Amount = dec("500")
	require.NoError(t, b.UpdateTransfer(stash))

	b.DeleteIncome(bonus.ID)
	b.DeleteExpense(groceries.ID)
}

func sortedJournal(entries []ledger.JournalEntry) []ledger.JournalEntry {
	out := append([]ledger.JournalEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func TestJournalMatchesReplay(t *testing.T) {
	b, checking, savings := newBook(t)
	mutate(t, b, checking, savings)

	st := b.State()
	replayed := ledger.ReplayJournal(st.Incomes, st.Expenses, st.Transfers)

	assert.Equal(t, sortedJournal(replayed), sortedJournal(st.Journal))
}

func TestBalancesMatchRecompute(t *testing.T) {
	b, checking, savings := newBook(t)
	mutate(t, b, checking, savings)

	incremental := map[string]decimal.Decimal{
		checking: balance(t, b, checking),
		savings:  balance(t, b, savings),
	}

	st := b.State().Clone()
	ledger.RecomputeBalances(st)

	for _, a := range st.Accounts {
		assert.True(t, a.Balance.Equal(incremental[a.ID]), "account %s: %s != %s", a.Name, a.Balance, incremental[a.ID])
	}
}

func TestDeriveBalancesMode(t *testing.T) {
	b, checking, savings := newBook(t)

	b.SetDeriveBalances(true)
	mutate(t, b, checking, savings)

	// checking: 1000 + 2600 - 500 = 3100
	// savings: 500 - 900 + 500 - 300 = -200
	assert.True(t, balance(t, b, checking).Equal(dec("3100")))
	assert.True(t, balance(t, b, savings).Equal(dec("-200")))
}

func TestTransferEntries(t *testing.T) {
	tr := ledger.Transfer{
		ID:            "t1",
		Date:          date(2024, time.March, 10),
		FromAccountID: "a",
		ToAccountID:   "b",
		Amount:        dec("75"),
		Notes:         "stash",
	}

	legs := ledger.TransferEntries(tr)

	assert.Equal(t, "t1/out", legs[0].ID)
	assert.Equal(t, "t1/in", legs[1].ID)
	assert.Equal(t, "a", legs[0].AccountID)
	assert.Equal(t, "b", legs[1].AccountID)
	assert.Equal(t, ledger.EntryWithdrawal, legs[0].Type)
	assert.Equal(t, ledger.EntryDeposit, legs[1].Type)

	for _, leg := range legs {
		assert.Equal(t, ledger.SourceTransfer, leg.Source)
		assert.Equal(t, "t1", leg.SourceID)
		assert.True(t, leg.Amount.Equal(dec("75")))
	}
}
