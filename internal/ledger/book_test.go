package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newBook returns a book with two accounts and their ids.
func newBook(t *testing.T) (*ledger.Book, string, string) {
	t.Helper()

	b := ledger.NewBook(nil)

	checking, err := b.AddAccount(ledger.Account{
		Name:           "Checking",
		Type:           ledger.AccountBank,
		OpeningBalance: dec("1000"),
	})
	require.NoError(t, err)

	savings, err := b.AddAccount(ledger.Account{
		Name:           "Savings",
		Type:           ledger.AccountSavings,
		OpeningBalance: dec("500"),
	})
	require.NoError(t, err)

	return b, checking.ID, savings.ID
}

func balance(t *testing.T, b *ledger.Book, id string) decimal.Decimal {
	t.Helper()

	for _, a := range b.State().Accounts {
		if a.ID == id {
			return a.Balance
		}
	}

	t.Fatalf("account %s not found", id)

	return decimal.Zero
}

func TestAddAccount(t *testing.T) {
	b := ledger.NewBook(nil)

	a, err := b.AddAccount(ledger.Account{Name: "Wallet", Type: ledger.AccountWallet, OpeningBalance: dec("250")})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.True(t, a.Balance.Equal(dec("250")))

	_, err = b.AddAccount(ledger.Account{Name: "  "})
	assert.ErrorIs(t, err, ledger.ErrEmptyName)
	assert.Len(t, b.State().Accounts, 1)
}

func TestUpdateAccount_OpeningBalanceShiftsRunning(t *testing.T) {
	b, checking, _ := newBook(t)

	_, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("200"), AccountID: checking,
	})
	require.NoError(t, err)
	assert.True(t, balance(t, b, checking).Equal(dec("1200")))

	require.NoError(t, b.UpdateAccount(ledger.Account{
		ID: checking, Name: "Checking", Type: ledger.AccountBank, OpeningBalance: dec("1500"),
	}))

	// Activity is preserved on top of the new opening balance.
	assert.True(t, balance(t, b, checking).Equal(dec("1700")))
}

func TestDeleteAccount_KeepsOrphanedHistory(t *testing.T) {
	b, checking, _ := newBook(t)

	in, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("200"), AccountID: checking,
	})
	require.NoError(t, err)

	b.DeleteAccount(checking)

	st := b.State()
	assert.Len(t, st.Incomes, 1)
	assert.Len(t, st.Journal, 1)
	assert.Equal(t, "—", st.AccountName(in.AccountID))

	// The orphaned record can still be deleted without error.
	b.DeleteIncome(in.ID)
	assert.Empty(t, b.State().Incomes)
	assert.Empty(t, b.State().Journal)
}

func TestIncomeLifecycle(t *testing.T) {
	b, checking, savings := newBook(t)

	in, err := b.AddIncome(ledger.Income{
		Date: date(2024, time.March, 5), Source: "Salary", Amount: dec("300"), AccountID: checking,
	})
	require.NoError(t, err)
	assert.True(t, balance(t, b, checking).Equal(dec("1300")))

	require.Len(t, b.State().Journal, 1)
	entry := b.State().Journal[0]
	assert.Equal(t, ledger.EntryDeposit, entry.Type)
	assert.Equal(t, ledger.SourceIncome, entry.Source)
	assert.Equal(t, in.ID, entry.SourceID)

	// Amount edit on the same account applies only the difference.
	in.Amount = dec("350")
	require.NoError(t, b.UpdateIncome(in))
	assert.True(t, balance(t, b, checking).Equal(dec("1350")))

	// Moving the income reverses it on the old account in full.
	in.AccountID = savings
	require.NoError(t, b.UpdateIncome(in))
	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
	assert.True(t, balance(t, b, savings).Equal(dec("850")))
	assert.Equal(t, savings, b.State().Journal[0].AccountID)

	b.DeleteIncome(in.ID)
	assert.True(t, balance(t, b, savings).Equal(dec("500")))
	assert.Empty(t, b.State().Journal)

	// Deleting again is a no-op.
	b.DeleteIncome(in.ID)
	assert.True(t, balance(t, b, savings).Equal(dec("500")))
}

func TestAddIncome_Invalid(t *testing.T) {
	b, checking, _ := newBook(t)

	tests := []struct {
		name    string
		income  ledger.Income
		wantErr error
	}{
		{
			name:    "ZeroDate",
			income:  ledger.Income{Source: "Salary", Amount: dec("10"), AccountID: checking},
			wantErr: ledger.ErrZeroDate,
		},
		{
			name:    "EmptySource",
			income:  ledger.Income{Date: date(2024, time.March, 1), Amount: dec("10"), AccountID: checking},
			wantErr: ledger.ErrEmptySource,
		},
		{
			name:    "NonPositiveAmount",
			income:  ledger.Income{Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("0"), AccountID: checking},
			wantErr: ledger.ErrNonPositiveAmount,
		},
		{
			name:    "NoAccount",
			income:  ledger.Income{Date: date(2024, time.March, 1), Source: "Salary", Amount: dec("10")},
			wantErr: ledger.ErrEmptyAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.AddIncome(tt.income)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, b.State().Incomes)
			assert.True(t, balance(t, b, checking).Equal(dec("1000")))
		})
	}
}

func TestExpenseLifecycle(t *testing.T) {
	b, checking, _ := newBook(t)

	e, err := b.AddExpense(ledger.Expense{
		Date: date(2024, time.March, 7), Category: "Rent", Amount: dec("400"), AccountID: checking,
	})
	require.NoError(t, err)
	assert.True(t, balance(t, b, checking).Equal(dec("600")))

	require.Len(t, b.State().Journal, 1)
	assert.Equal(t, ledger.EntryWithdrawal, b.State().Journal[0].Type)

	e.Amount = dec("250")
	require.NoError(t, b.UpdateExpense(e))
	assert.True(t, balance(t, b, checking).Equal(dec("750")))

	b.DeleteExpense(e.ID)
	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
	assert.Empty(t, b.State().Journal)
}

func TestAddExpense_ProjectedRowRejected(t *testing.T) {
	b, checking, _ := newBook(t)

	e, err := b.AddExpense(ledger.Expense{
		Date: date(2024, time.March, 7), Category: "Rent", Amount: dec("400"),
		AccountID: checking, Projected: true,
	})
	require.NoError(t, err)

	// The flag is stripped; only real rows are stored.
	assert.False(t, e.Projected)
	assert.False(t, b.State().Expenses[0].Projected)
}

func TestTransferLifecycle(t *testing.T) {
	b, checking, savings := newBook(t)

	tr, err := b.AddTransfer(ledger.Transfer{
		Date: date(2024, time.March, 10), FromAccountID: checking, ToAccountID: savings, Amount: dec("100"),
	})
	require.NoError(t, err)

	assert.True(t, balance(t, b, checking).Equal(dec("900")))
	assert.True(t, balance(t, b, savings).Equal(dec("600")))

	journal := b.State().Journal
	require.Len(t, journal, 2)
	assert.Equal(t, ledger.EntryWithdrawal, journal[0].Type)
	assert.Equal(t, checking, journal[0].AccountID)
	assert.Equal(t, ledger.EntryDeposit, journal[1].Type)
	assert.Equal(t, savings, journal[1].AccountID)

	// Both legs carry the endpoints for display.
	assert.Equal(t, checking, journal[0].TransferFromID)
	assert.Equal(t, savings, journal[0].TransferToID)

	// Reversing direction reverses all four deltas and moves the legs.
	tr.FromAccountID, tr.ToAccountID = savings, checking
	require.NoError(t, b.UpdateTransfer(tr))
	assert.True(t, balance(t, b, checking).Equal(dec("1100")))
	assert.True(t, balance(t, b, savings).Equal(dec("400")))

	for _, e := range b.State().Journal {
		if e.Type == ledger.EntryWithdrawal {
			assert.Equal(t, savings, e.AccountID)
		} else {
			assert.Equal(t, checking, e.AccountID)
		}
	}

	b.DeleteTransfer(tr.ID)
	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
	assert.True(t, balance(t, b, savings).Equal(dec("500")))
	assert.Empty(t, b.State().Journal)
}

func TestAddTransfer_Rejected(t *testing.T) {
	b, checking, savings := newBook(t)

	tests := []struct {
		name     string
		transfer ledger.Transfer
		wantErr  error
	}{
		{
			name: "SameAccount",
			transfer: ledger.Transfer{
				Date: date(2024, time.March, 1), FromAccountID: checking, ToAccountID: checking, Amount: dec("10"),
			},
			wantErr: ledger.ErrSameAccount,
		},
		{
			name: "ZeroAmount",
			transfer: ledger.Transfer{
				Date: date(2024, time.March, 1), FromAccountID: checking, ToAccountID: savings, Amount: dec("0"),
			},
			wantErr: ledger.ErrNonPositiveAmount,
		},
		{
			name: "NegativeAmount",
			transfer: ledger.Transfer{
				Date: date(2024, time.March, 1), FromAccountID: checking, ToAccountID: savings, Amount: dec("-5"),
			},
			wantErr: ledger.ErrNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.AddTransfer(tt.transfer)
			assert.ErrorIs(t, err, tt.wantErr)

			// No state change on rejection.
			assert.True(t, balance(t, b, checking).Equal(dec("1000")))
			assert.True(t, balance(t, b, savings).Equal(dec("500")))
			assert.Empty(t, b.State().Transfers)
			assert.Empty(t, b.State().Journal)
		})
	}
}

func TestTransfer_ConservesTotal(t *testing.T) {
	b, checking, savings := newBook(t)

	total := func() decimal.Decimal {
		sum := decimal.Zero
		for _, a := range b.State().Accounts {
			sum = sum.Add(a.Balance)
		}

		return sum
	}

	before := total()

	_, err := b.AddTransfer(ledger.Transfer{
		Date: date(2024, time.March, 10), FromAccountID: checking, ToAccountID: savings, Amount: dec("333.33"),
	})
	require.NoError(t, err)

	assert.True(t, total().Equal(before))
}

func TestInvestmentLifecycle(t *testing.T) {
	b, checking, _ := newBook(t)

	iv, err := b.AddInvestment(ledger.Investment{
		Date: date(2024, time.March, 12), Instrument: "Index fund", Amount: dec("200"), AccountID: checking,
	})
	require.NoError(t, err)

	// A positive contribution drains the linked account.
	assert.True(t, balance(t, b, checking).Equal(dec("800")))

	// Investments never reach the journal.
	assert.Empty(t, b.State().Journal)

	// A negative amount is a withdrawal back into the account.
	iv.Amount = dec("-50")
	require.NoError(t, b.UpdateInvestment(iv))
	assert.True(t, balance(t, b, checking).Equal(dec("1050")))

	b.DeleteInvestment(iv.ID)
	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
}

func TestInvestment_NoLinkedAccount(t *testing.T) {
	b, checking, _ := newBook(t)

	_, err := b.AddInvestment(ledger.Investment{
		Date: date(2024, time.March, 12), Instrument: "Bonds", Amount: dec("200"),
	})
	require.NoError(t, err)

	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
}

func TestProjectCascade(t *testing.T) {
	b, _, _ := newBook(t)

	p, err := b.AddProject(ledger.Project{
		Name: "Vacation", TargetAmount: dec("1200"), TargetDate: date(2024, time.September, 1),
	})
	require.NoError(t, err)

	other, err := b.AddProject(ledger.Project{
		Name: "Laptop", TargetAmount: dec("900"), TargetDate: date(2024, time.June, 1),
	})
	require.NoError(t, err)

	_, err = b.AddContribution(ledger.Contribution{
		ProjectID: p.ID, Date: date(2024, time.March, 1), Amount: dec("100"),
	})
	require.NoError(t, err)

	kept, err := b.AddContribution(ledger.Contribution{
		ProjectID: other.ID, Date: date(2024, time.March, 1), Amount: dec("50"),
	})
	require.NoError(t, err)

	b.DeleteProject(p.ID)

	st := b.State()
	require.Len(t, st.Projects, 1)
	require.Len(t, st.Contributions, 1)
	assert.Equal(t, kept.ID, st.Contributions[0].ID)
}

func TestUpdateEqualsDeleteThenAdd(t *testing.T) {
	setup := func(t *testing.T) (*ledger.Book, string, string, ledger.Expense) {
		b, checking, savings := newBook(t)

		e, err := b.AddExpense(ledger.Expense{
			Date: date(2024, time.March, 7), Category: "Rent", Amount: dec("400"), AccountID: checking,
		})
		require.NoError(t, err)

		return b, checking, savings, e
	}

	edited := func(e ledger.Expense, account string) ledger.Expense {
		e.Amount = dec("275.25")
		e.AccountID = account
		return e
	}

	// Path 1: in-place update.
	updated, checking, savings, e := setup(t)
	require.NoError(t, updated.UpdateExpense(edited(e, savings)))

	// Path 2: delete the original and add the edited version.
	replaced, checking2, savings2, e2 := setup(t)
	replaced.DeleteExpense(e2.ID)
	_, err := replaced.AddExpense(edited(e2, savings2))
	require.NoError(t, err)

	assert.True(t, balance(t, updated, checking).Equal(balance(t, replaced, checking2)))
	assert.True(t, balance(t, updated, savings).Equal(balance(t, replaced, savings2)))
}

func TestUpdateUnknownIDsAreNoOps(t *testing.T) {
	b, checking, savings := newBook(t)

	require.NoError(t, b.UpdateIncome(ledger.Income{
		ID: "missing", Date: date(2024, time.March, 1), Source: "x", Amount: dec("10"), AccountID: checking,
	}))
	require.NoError(t, b.UpdateExpense(ledger.Expense{
		ID: "missing", Date: date(2024, time.March, 1), Category: "x", Amount: dec("10"), AccountID: checking,
	}))
	require.NoError(t, b.UpdateTransfer(ledger.Transfer{
		ID: "missing", Date: date(2024, time.March, 1), FromAccountID: checking, ToAccountID: savings, Amount: dec("10"),
	}))

	assert.True(t, balance(t, b, checking).Equal(dec("1000")))
	assert.True(t, balance(t, b, savings).Equal(dec("500")))
	assert.Empty(t, b.State().Journal)
}
