package ledger

import "github.com/shopspring/decimal"

// Journal entry ids derive deterministically from the source record, so the
// journal built incrementally by the mutators is set-equal to the journal
// built by replaying the surviving source records.
const (
	transferOutSuffix = "/out"
	transferInSuffix  = "/in"
)

func incomeEntry(in Income) JournalEntry {
	return JournalEntry{
		ID:        in.ID,
		Date:      in.Date,
		AccountID: in.AccountID,
		Type:      EntryDeposit,
		Amount:    in.Amount,
		Source:    SourceIncome,
		SourceID:  in.ID,
		Notes:     in.Notes,
	}
}

func expenseEntry(e Expense) JournalEntry {
	return JournalEntry{
		ID:        e.ID,
		Date:      e.Date,
		AccountID: e.AccountID,
		Type:      EntryWithdrawal,
		Amount:    e.Amount,
		Source:    SourceExpense,
		SourceID:  e.ID,
		Notes:     e.Notes,
	}
}

// TransferEntries projects a transfer onto its two journal legs: a
// withdrawal on the source account and a deposit on the destination, both
// tagged with the transfer id and carrying both endpoints for display.
func TransferEntries(t Transfer) [2]JournalEntry {
	out := JournalEntry{
		ID:             t.ID + transferOutSuffix,
		Date:           t.Date,
		AccountID:      t.FromAccountID,
		Type:           EntryWithdrawal,
		Amount:         t.Amount,
		Source:         SourceTransfer,
		SourceID:       t.ID,
		Notes:          t.Notes,
		TransferFromID: t.FromAccountID,
		TransferToID:   t.ToAccountID,
	}

	in := JournalEntry{
		ID:             t.ID + transferInSuffix,
		Date:           t.Date,
		AccountID:      t.ToAccountID,
		Type:           EntryDeposit,
		Amount:         t.Amount,
		Source:         SourceTransfer,
		SourceID:       t.ID,
		Notes:          t.Notes,
		TransferFromID: t.FromAccountID,
		TransferToID:   t.ToAccountID,
	}

	return [2]JournalEntry{out, in}
}

// ReplayJournal rebuilds the full journal from the surviving source
// records. This is the authoritative definition of the journal; the
// incremental maintenance done by the mutators must never diverge from it.
func ReplayJournal(incomes []Income, expenses []Expense, transfers []Transfer) []JournalEntry {
	entries := make([]JournalEntry, 0, len(incomes)+len(expenses)+2*len(transfers))

	for _, in := range incomes {
		entries = append(entries, incomeEntry(in))
	}

	for _, e := range expenses {
		entries = append(entries, expenseEntry(e))
	}

	for _, t := range transfers {
		legs := TransferEntries(t)
		entries = append(entries, legs[0], legs[1])
	}

	return entries
}

// RecomputeBalances sets every account balance to its opening balance plus
// the signed sum of all activity against it: incomes add, expenses
// subtract, transfers subtract from the source and add to the destination,
// and linked investments subtract their (signed) amount, since a positive
// contribution drains the account.
func RecomputeBalances(st *State) {
	for i := range st.Accounts {
		st.Accounts[i].Balance = st.Accounts[i].OpeningBalance.Add(activityTotal(st, st.Accounts[i].ID))
	}
}

func activityTotal(st *State, accountID string) decimal.Decimal {
	total := decimal.Zero

	for _, in := range st.Incomes {
		if in.AccountID == accountID {
			total = total.Add(in.Amount)
		}
	}

	for _, e := range st.Expenses {
		if e.AccountID == accountID {
			total = total.Sub(e.Amount)
		}
	}

	for _, t := range st.Transfers {
		if t.FromAccountID == accountID {
			total = total.Sub(t.Amount)
		}

		if t.ToAccountID == accountID {
			total = total.Add(t.Amount)
		}
	}

	for _, iv := range st.Investments {
		if iv.AccountID == accountID {
			total = total.Sub(iv.Amount)
		}
	}

	return total.Round(2)
}
