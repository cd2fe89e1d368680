package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is the in-memory ledger aggregate. Every mutator is atomic with
// respect to balance and journal consistency: it either applies the full
// effect of an operation or leaves the state untouched.
//
// A Book has a single logical writer; callers needing concurrent access
// serialize through Service.
type Book struct {
	state  *State
	derive bool
}

// NewBook wraps an existing state, or starts an empty one when st is nil.
func NewBook(st *State) *Book {
	if st == nil {
		st = &State{Currency: CurrencyUSD}
	}

	return &Book{state: st}
}

// State exposes the underlying aggregate for read-side views. Callers must
// not mutate it directly.
func (b *Book) State() *State { return b.state }

// SetCurrency sets the workspace display currency.
func (b *Book) SetCurrency(c Currency) { b.state.Currency = c }

// SetDeriveBalances toggles derive-from-activity mode. While enabled, every
// mutation recomputes all balances from scratch instead of trusting the
// incremental deltas; both must agree for any orphan-free history.
func (b *Book) SetDeriveBalances(on bool) {
	b.derive = on
	if on {
		RecomputeBalances(b.state)
	}
}

// DeriveBalances reports whether derive-from-activity mode is enabled.
func (b *Book) DeriveBalances() bool { return b.derive }

// applyDelta adjusts an account balance. An unknown account id is a
// graceful no-op: balances are always re-derivable, so a dangling
// reference must not fail the mutation.
func (b *Book) applyDelta(accountID string, delta decimal.Decimal) {
	for i := range b.state.Accounts {
		if b.state.Accounts[i].ID == accountID {
			b.state.Accounts[i].Balance = b.state.Accounts[i].Balance.Add(delta).Round(2)
			return
		}
	}
}

func (b *Book) reconciled() {
	if b.derive {
		RecomputeBalances(b.state)
	}
}

func (b *Book) removeEntries(source SourceType, sourceID string) {
	kept := b.state.Journal[:0]

	for _, e := range b.state.Journal {
		if e.Source == source && e.SourceID == sourceID {
			continue
		}

		kept = append(kept, e)
	}

	b.state.Journal = kept
}

// --- Accounts ---

// AddAccount registers an account. The opening balance becomes the initial
// running balance.
func (b *Book) AddAccount(a Account) (Account, error) {
	if err := a.Validate(); err != nil {
		return Account{}, err
	}

	a.ID = uuid.NewString()
	a.Balance = a.OpeningBalance

	b.state.Accounts = append([]Account{a}, b.state.Accounts...)

	return a, nil
}

// UpdateAccount edits an account's descriptive fields and opening balance.
// Changing the opening balance shifts the running balance by the same
// difference. Unknown ids are a no-op.
func (b *Book) UpdateAccount(edited Account) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Accounts {
		a := &b.state.Accounts[i]
		if a.ID != edited.ID {
			continue
		}

		a.Name = edited.Name
		a.Type = edited.Type
		a.Currency = edited.Currency
		a.Balance = a.Balance.Add(edited.OpeningBalance.Sub(a.OpeningBalance)).Round(2)
		a.OpeningBalance = edited.OpeningBalance

		b.reconciled()

		return nil
	}

	return nil
}

// DeleteAccount removes an account. Historical records referencing it are
// kept and become orphaned; display falls back to a placeholder name.
func (b *Book) DeleteAccount(id string) {
	for i, a := range b.state.Accounts {
		if a.ID == id {
			b.state.Accounts = append(b.state.Accounts[:i], b.state.Accounts[i+1:]...)
			return
		}
	}
}

// --- Incomes ---

// AddIncome records a deposit: the account balance rises by the amount and
// one journal entry is appended.
func (b *Book) AddIncome(in Income) (Income, error) {
	if err := in.Validate(); err != nil {
		return Income{}, err
	}

	in.ID = uuid.NewString()

	b.applyDelta(in.AccountID, in.Amount)
	b.state.Journal = append(b.state.Journal, incomeEntry(in))
	b.state.Incomes = append([]Income{in}, b.state.Incomes...)
	b.reconciled()

	return in, nil
}

// UpdateIncome edits an income in place. When the account changed, the full
// original amount is reversed on the old account and the full new amount
// applied on the new one; otherwise only the signed difference is applied.
// Unknown ids are a no-op.
func (b *Book) UpdateIncome(edited Income) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Incomes {
		orig := b.state.Incomes[i]
		if orig.ID != edited.ID {
			continue
		}

		if orig.AccountID != edited.AccountID {
			b.applyDelta(orig.AccountID, orig.Amount.Neg())
			b.applyDelta(edited.AccountID, edited.Amount)
		} else {
			b.applyDelta(orig.AccountID, edited.Amount.Sub(orig.Amount))
		}

		b.state.Incomes[i] = edited
		b.rewriteEntry(SourceIncome, edited.ID, incomeEntry(edited))
		b.reconciled()

		return nil
	}

	return nil
}

// DeleteIncome reverses the deposit and drops the record and its journal
// entry. Deleting an absent id is a no-op.
func (b *Book) DeleteIncome(id string) {
	for i, in := range b.state.Incomes {
		if in.ID != id {
			continue
		}

		b.applyDelta(in.AccountID, in.Amount.Neg())
		b.removeEntries(SourceIncome, id)
		b.state.Incomes = append(b.state.Incomes[:i], b.state.Incomes[i+1:]...)
		b.reconciled()

		return
	}
}

// --- Expenses ---

// AddExpense records a withdrawal, the mirror of AddIncome. Projected rows
// are display artifacts and are never accepted.
func (b *Book) AddExpense(e Expense) (Expense, error) {
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}

	e.ID = uuid.NewString()
	e.Projected = false

	b.applyDelta(e.AccountID, e.Amount.Neg())
	b.state.Journal = append(b.state.Journal, expenseEntry(e))
	b.state.Expenses = append([]Expense{e}, b.state.Expenses...)
	b.reconciled()

	return e, nil
}

// UpdateExpense mirrors UpdateIncome with the withdrawal sign.
func (b *Book) UpdateExpense(edited Expense) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	edited.Projected = false

	for i := range b.state.Expenses {
		orig := b.state.Expenses[i]
		if orig.ID != edited.ID {
			continue
		}

		if orig.AccountID != edited.AccountID {
			b.applyDelta(orig.AccountID, orig.Amount)
			b.applyDelta(edited.AccountID, edited.Amount.Neg())
		} else {
			b.applyDelta(orig.AccountID, orig.Amount.Sub(edited.Amount))
		}

		b.state.Expenses[i] = edited
		b.rewriteEntry(SourceExpense, edited.ID, expenseEntry(edited))
		b.reconciled()

		return nil
	}

	return nil
}

// DeleteExpense reverses the withdrawal and drops the record and its
// journal entry. Idempotent.
func (b *Book) DeleteExpense(id string) {
	for i, e := range b.state.Expenses {
		if e.ID != id {
			continue
		}

		b.applyDelta(e.AccountID, e.Amount)
		b.removeEntries(SourceExpense, id)
		b.state.Expenses = append(b.state.Expenses[:i], b.state.Expenses[i+1:]...)
		b.reconciled()

		return
	}
}

// --- Transfers ---

// AddTransfer debits the source account, credits the destination, and
// appends the two journal legs. Transfers between the same account or with
// a non-positive amount are rejected with no state change.
func (b *Book) AddTransfer(t Transfer) (Transfer, error) {
	if err := t.Validate(); err != nil {
		return Transfer{}, err
	}

	t.ID = uuid.NewString()

	b.applyDelta(t.FromAccountID, t.Amount.Neg())
	b.applyDelta(t.ToAccountID, t.Amount)

	legs := TransferEntries(t)
	b.state.Journal = append(b.state.Journal, legs[0], legs[1])
	b.state.Transfers = append([]Transfer{t}, b.state.Transfers...)
	b.reconciled()

	return t, nil
}

// UpdateTransfer fully reverses the original two-sided effect, applies the
// edited one, and rewrites both journal legs: the withdrawal leg follows
// the new source account, the deposit leg the new destination. Invalid
// edits are rejected with no state change; unknown ids are a no-op.
func (b *Book) UpdateTransfer(edited Transfer) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Transfers {
		orig := b.state.Transfers[i]
		if orig.ID != edited.ID {
			continue
		}

		b.applyDelta(orig.FromAccountID, orig.Amount)
		b.applyDelta(orig.ToAccountID, orig.Amount.Neg())

		b.applyDelta(edited.FromAccountID, edited.Amount.Neg())
		b.applyDelta(edited.ToAccountID, edited.Amount)

		legs := TransferEntries(edited)

		for j := range b.state.Journal {
			entry := &b.state.Journal[j]
			if entry.Source != SourceTransfer || entry.SourceID != edited.ID {
				continue
			}

			if entry.Type == EntryWithdrawal {
				*entry = legs[0]
			} else {
				*entry = legs[1]
			}
		}

		b.state.Transfers[i] = edited
		b.reconciled()

		return nil
	}

	return nil
}

// DeleteTransfer reverses both sides and removes both journal legs.
// Idempotent.
func (b *Book) DeleteTransfer(id string) {
	for i, t := range b.state.Transfers {
		if t.ID != id {
			continue
		}

		b.applyDelta(t.FromAccountID, t.Amount)
		b.applyDelta(t.ToAccountID, t.Amount.Neg())
		b.removeEntries(SourceTransfer, id)
		b.state.Transfers = append(b.state.Transfers[:i], b.state.Transfers[i+1:]...)
		b.reconciled()

		return
	}
}

// --- Investments ---

// AddInvestment records a contribution (positive amount, drains the linked
// account) or a withdrawal (negative amount, returns to it). With no
// linked account the record is informational and touches no balance.
// Investments never produce journal entries.
func (b *Book) AddInvestment(iv Investment) (Investment, error) {
	if err := iv.Validate(); err != nil {
		return Investment{}, err
	}

	iv.ID = uuid.NewString()

	if iv.AccountID != "" {
		b.applyDelta(iv.AccountID, iv.Amount.Neg())
	}

	b.state.Investments = append([]Investment{iv}, b.state.Investments...)
	b.reconciled()

	return iv, nil
}

// UpdateInvestment mirrors UpdateIncome with the investment sign
// convention, treating an absent account id as a zero-effect side.
func (b *Book) UpdateInvestment(edited Investment) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Investments {
		orig := b.state.Investments[i]
		if orig.ID != edited.ID {
			continue
		}

		if orig.AccountID != edited.AccountID {
			if orig.AccountID != "" {
				b.applyDelta(orig.AccountID, orig.Amount)
			}

			if edited.AccountID != "" {
				b.applyDelta(edited.AccountID, edited.Amount.Neg())
			}
		} else if orig.AccountID != "" {
			b.applyDelta(orig.AccountID, orig.Amount.Sub(edited.Amount))
		}

		b.state.Investments[i] = edited
		b.reconciled()

		return nil
	}

	return nil
}

// DeleteInvestment reverses the balance effect, if any. Idempotent.
func (b *Book) DeleteInvestment(id string) {
	for i, iv := range b.state.Investments {
		if iv.ID != id {
			continue
		}

		if iv.AccountID != "" {
			b.applyDelta(iv.AccountID, iv.Amount)
		}

		b.state.Investments = append(b.state.Investments[:i], b.state.Investments[i+1:]...)
		b.reconciled()

		return
	}
}

// --- Projects ---

func (b *Book) AddProject(p Project) (Project, error) {
	if err := p.Validate(); err != nil {
		return Project{}, err
	}

	p.ID = uuid.NewString()
	b.state.Projects = append([]Project{p}, b.state.Projects...)

	return p, nil
}

func (b *Book) UpdateProject(edited Project) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Projects {
		if b.state.Projects[i].ID == edited.ID {
			b.state.Projects[i] = edited
			return nil
		}
	}

	return nil
}

// DeleteProject removes the project and cascades to its contributions.
func (b *Book) DeleteProject(id string) {
	for i, p := range b.state.Projects {
		if p.ID != id {
			continue
		}

		b.state.Projects = append(b.state.Projects[:i], b.state.Projects[i+1:]...)

		kept := b.state.Contributions[:0]

		for _, c := range b.state.Contributions {
			if c.ProjectID != id {
				kept = append(kept, c)
			}
		}

		b.state.Contributions = kept

		return
	}
}

func (b *Book) AddContribution(c Contribution) (Contribution, error) {
	if err := c.Validate(); err != nil {
		return Contribution{}, err
	}

	c.ID = uuid.NewString()
	b.state.Contributions = append([]Contribution{c}, b.state.Contributions...)

	return c, nil
}

func (b *Book) UpdateContribution(edited Contribution) error {
	if err := edited.Validate(); err != nil {
		return err
	}

	for i := range b.state.Contributions {
		if b.state.Contributions[i].ID == edited.ID {
			b.state.Contributions[i] = edited
			return nil
		}
	}

	return nil
}

func (b *Book) DeleteContribution(id string) {
	for i, c := range b.state.Contributions {
		if c.ID == id {
			b.state.Contributions = append(b.state.Contributions[:i], b.state.Contributions[i+1:]...)
			return
		}
	}
}

func (b *Book) rewriteEntry(source SourceType, sourceID string, entry JournalEntry) {
	for i := range b.state.Journal {
		e := &b.state.Journal[i]
		if e.Source == source && e.SourceID == sourceID {
			*e = entry
			return
		}
	}
}
