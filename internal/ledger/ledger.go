// Package ledger implements the budgeting engine: the canonical record
// collections, the derived journal, balance reconciliation, recurring
// expense projection and the read-side aggregation used by dashboards.
package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the display currency of a workspace or account.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKSH Currency = "KSH"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountSavings    AccountType = "savings"
	AccountInvestment AccountType = "investment"
	AccountWallet     AccountType = "wallet"
	AccountBank       AccountType = "bank"
)

// RecurrencePeriod is how often a recurring expense repeats.
type RecurrencePeriod string

const (
	Monthly   RecurrencePeriod = "monthly"
	Quarterly RecurrencePeriod = "quarterly"
	Annually  RecurrencePeriod = "annually"
)

// EntryType is the direction of a journal entry.
type EntryType string

const (
	EntryDeposit    EntryType = "deposit"
	EntryWithdrawal EntryType = "withdrawal"
)

// SourceType identifies the record kind a journal entry was derived from.
type SourceType string

const (
	SourceIncome   SourceType = "income"
	SourceExpense  SourceType = "expense"
	SourceTransfer SourceType = "transfer"
)

var (
	ErrEmptyAccount      = errors.New("account is required")
	ErrEmptyName         = errors.New("name is required")
	ErrEmptySource       = errors.New("source is required")
	ErrEmptyCategory     = errors.New("category is required")
	ErrEmptyInstrument   = errors.New("instrument is required")
	ErrEmptyProject      = errors.New("project is required")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrSameAccount       = errors.New("source and destination accounts must differ")
	ErrZeroDate          = errors.New("date is required")
)

// Account holds money. OpeningBalance is the balance entered when the
// account was created; Balance is OpeningBalance plus all applied activity.
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	Currency       Currency        `json:"currency"`
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}

	return nil
}

// Income is a deposit into an account.
type Income struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"accountId"`
	Notes     string          `json:"notes,omitempty"`
}

func (in Income) Validate() error {
	if in.Date.IsZero() {
		return ErrZeroDate
	}

	if strings.TrimSpace(in.Source) == "" {
		return ErrEmptySource
	}

	if in.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	if in.AccountID == "" {
		return ErrEmptyAccount
	}

	return nil
}

// Recurrence describes the repeat schedule of a recurring expense.
// A zero End means the schedule is open-ended.
type Recurrence struct {
	Enabled bool             `json:"enabled"`
	Period  RecurrencePeriod `json:"period"`
	Start   time.Time        `json:"start"`
	End     time.Time        `json:"end,omitzero"`
}

// Expense is a withdrawal from an account, optionally recurring.
//
// IsRecurring is the legacy flag predating the structured Recurrence value;
// records still carrying only the flag are normalized at the point of use,
// see NormalizedRecurrence.
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	IsRecurring bool            `json:"isRecurring,omitempty"`
	Recurrence  *Recurrence     `json:"recurrence,omitempty"`
	AccountID   string          `json:"accountId"`
	Notes       string          `json:"notes,omitempty"`

	// Projected marks a synthetic row emitted by the recurrence projector.
	// Projected rows are display artifacts: they are never stored and never
	// reach the journal or balances.
	Projected bool `json:"projected,omitempty"`
}

func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrZeroDate
	}

	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}

	if e.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	if e.AccountID == "" {
		return ErrEmptyAccount
	}

	return nil
}

// NormalizedRecurrence returns the structured recurrence schedule for the
// expense, upgrading the legacy boolean form to {monthly, start: own date}.
// The second return is false when the expense does not recur.
func (e Expense) NormalizedRecurrence() (Recurrence, bool) {
	if e.Recurrence != nil {
		if !e.Recurrence.Enabled {
			return Recurrence{}, false
		}

		rec := *e.Recurrence
		if rec.Period == "" {
			rec.Period = Monthly
		}

		if rec.Start.IsZero() {
			rec.Start = e.Date
		}

		return rec, true
	}

	if !e.IsRecurring {
		return Recurrence{}, false
	}

	return Recurrence{Enabled: true, Period: Monthly, Start: e.Date}, true
}

// Transfer moves money between two accounts. It is the source record both
// journal legs are derived from.
type Transfer struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes,omitempty"`
}

func (t Transfer) Validate() error {
	if t.Date.IsZero() {
		return ErrZeroDate
	}

	if t.FromAccountID == "" || t.ToAccountID == "" {
		return ErrEmptyAccount
	}

	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccount
	}

	if t.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	return nil
}

// Investment records a contribution to (positive amount) or withdrawal
// from (negative amount) an investment instrument. A contribution drains
// the linked account; with no linked account the record is informational.
type Investment struct {
	ID         string          `json:"id"`
	Date       time.Time       `json:"date"`
	Instrument string          `json:"instrument"`
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"accountId,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

func (iv Investment) Validate() error {
	if iv.Date.IsZero() {
		return ErrZeroDate
	}

	if strings.TrimSpace(iv.Instrument) == "" {
		return ErrEmptyInstrument
	}

	if iv.Amount.IsZero() {
		return ErrNonPositiveAmount
	}

	return nil
}

// Project is a named savings goal.
type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   time.Time       `json:"targetDate"`
	Notes        string          `json:"notes,omitempty"`
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if p.TargetAmount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	if p.TargetDate.IsZero() {
		return ErrZeroDate
	}

	return nil
}

// Contribution is a dated payment toward a project. Contributions are a
// tracking dimension over money already in accounts; they never touch
// balances or the journal.
type Contribution struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes,omitempty"`
}

func (c Contribution) Validate() error {
	if c.ProjectID == "" {
		return ErrEmptyProject
	}

	if c.Date.IsZero() {
		return ErrZeroDate
	}

	if c.Amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}

	return nil
}

// JournalEntry is one side of a money movement, derived from the income,
// expense or transfer record identified by SourceID. The journal is always
// reproducible by replaying the surviving source records.
type JournalEntry struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	AccountID      string          `json:"accountId"`
	Type           EntryType       `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Source         SourceType      `json:"source"`
	SourceID       string          `json:"sourceId"`
	Notes          string          `json:"notes,omitempty"`
	TransferFromID string          `json:"transferFromId,omitempty"`
	TransferToID   string          `json:"transferToId,omitempty"`
}

// State is the whole-workspace aggregate: every collection plus the display
// currency. It is the unit of snapshot persistence.
type State struct {
	Accounts      []Account      `json:"accounts"`
	Incomes       []Income       `json:"incomes"`
	Expenses      []Expense      `json:"expenses"`
	Transfers     []Transfer     `json:"transfers"`
	Investments   []Investment   `json:"investments"`
	Projects      []Project      `json:"projects"`
	Contributions []Contribution `json:"contributions"`
	Journal       []JournalEntry `json:"journal"`
	Currency      Currency       `json:"currency"`
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}

	out := &State{
		Accounts:      append([]Account(nil), s.Accounts...),
		Incomes:       append([]Income(nil), s.Incomes...),
		Expenses:      append([]Expense(nil), s.Expenses...),
		Transfers:     append([]Transfer(nil), s.Transfers...),
		Investments:   append([]Investment(nil), s.Investments...),
		Projects:      append([]Project(nil), s.Projects...),
		Contributions: append([]Contribution(nil), s.Contributions...),
		Journal:       append([]JournalEntry(nil), s.Journal...),
		Currency:      s.Currency,
	}

	for i, e := range out.Expenses {
		if e.Recurrence != nil {
			rec := *e.Recurrence
			out.Expenses[i].Recurrence = &rec
		}
	}

	return out
}

// AccountName resolves an account id to its display name, falling back to
// a placeholder for orphaned references.
func (s *State) AccountName(id string) string {
	for _, a := range s.Accounts {
		if a.ID == id {
			return a.Name
		}
	}

	return "—"
}
