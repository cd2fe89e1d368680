package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmwaniki/pesa/internal/period"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger

// Repository persists whole-state snapshots. LoadState returns nil when no
// state has been persisted yet.
type Repository interface {
	LoadState(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, st *State) error
}

// RecordRepository is implemented by backends that persist individual
// source records instead of snapshots. Such backends store only the source
// collections and the workspace settings; the journal and balances are
// rebuilt by replay after every load. Incomes and expenses travel as
// signed Transaction rows.
//
// LoadState on a RecordRepository returns the source collections with an
// empty journal.
type RecordRepository interface {
	Repository

	SaveCurrency(ctx context.Context, c Currency) error

	AddAccount(ctx context.Context, a Account) error
	UpdateAccount(ctx context.Context, a Account) error
	DeleteAccount(ctx context.Context, id string) error

	AddTransaction(ctx context.Context, t Transaction) error
	UpdateTransaction(ctx context.Context, t Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	AddTransfer(ctx context.Context, t Transfer) error
	UpdateTransfer(ctx context.Context, t Transfer) error
	DeleteTransfer(ctx context.Context, id string) error

	AddInvestment(ctx context.Context, iv Investment) error
	UpdateInvestment(ctx context.Context, iv Investment) error
	DeleteInvestment(ctx context.Context, id string) error

	AddProject(ctx context.Context, p Project) error
	UpdateProject(ctx context.Context, p Project) error
	DeleteProject(ctx context.Context, id string) error

	AddContribution(ctx context.Context, c Contribution) error
	UpdateContribution(ctx context.Context, c Contribution) error
	DeleteContribution(ctx context.Context, id string) error
}

// Transaction is the signed wire form incomes and expenses take in
// per-record backends: a positive amount is an income, a negative one an
// expense.
type Transaction struct {
	ID         string
	Date       time.Time
	Amount     decimal.Decimal
	Label      string
	AccountID  string
	Notes      string
	Recurrence *Recurrence
}

func (in Income) transactionRow() Transaction {
	return Transaction{
		ID:        in.ID,
		Date:      in.Date,
		Amount:    in.Amount,
		Label:     in.Source,
		AccountID: in.AccountID,
		Notes:     in.Notes,
	}
}

func (e Expense) transactionRow() Transaction {
	row := Transaction{
		ID:        e.ID,
		Date:      e.Date,
		Amount:    e.Amount.Neg(),
		Label:     e.Category,
		AccountID: e.AccountID,
		Notes:     e.Notes,
	}

	// Persist the structured schedule only; the legacy flag is migrated
	// away at this boundary.
	if rec, ok := e.NormalizedRecurrence(); ok {
		row.Recurrence = &rec
	}

	return row
}

// ToTransactions lowers incomes and expenses to their signed wire rows.
func ToTransactions(incomes []Income, expenses []Expense) []Transaction {
	rows := make([]Transaction, 0, len(incomes)+len(expenses))

	for _, in := range incomes {
		rows = append(rows, in.transactionRow())
	}

	for _, e := range expenses {
		rows = append(rows, e.transactionRow())
	}

	return rows
}

// SplitTransactions separates signed rows back into incomes and expenses.
func SplitTransactions(rows []Transaction) ([]Income, []Expense) {
	var (
		incomes  []Income
		expenses []Expense
	)

	for _, row := range rows {
		if row.Amount.Sign() > 0 {
			incomes = append(incomes, Income{
				ID:        row.ID,
				Date:      row.Date,
				Source:    row.Label,
				Amount:    row.Amount,
				AccountID: row.AccountID,
				Notes:     row.Notes,
			})

			continue
		}

		expenses = append(expenses, Expense{
			ID:         row.ID,
			Date:       row.Date,
			Category:   row.Label,
			Amount:     row.Amount.Neg(),
			Recurrence: row.Recurrence,
			AccountID:  row.AccountID,
			Notes:      row.Notes,
		})
	}

	return incomes, expenses
}

// Option configures a Service.
type Option func(*Service)

// WithNotify sets the sink for asynchronous persistence errors.
func WithNotify(fn func(error)) Option {
	return func(s *Service) { s.notify = fn }
}

// WithDefaultCurrency sets the currency assigned to states that do not
// carry one, such as a fresh workspace.
func WithDefaultCurrency(c Currency) Option {
	return func(s *Service) { s.defaultCurrency = c }
}

// Service binds a Book to a persistence backend.
//
// Snapshot backends are written through synchronously after every mutation
// and the error is returned to the caller. Per-record backends are written
// through asynchronously: the local mutation applies immediately, the write
// is dispatched in the background, failures go to the notify sink, and each
// write is followed by a full refresh. A newer refresh supersedes an
// in-flight one, last write wins.
type Service struct {
	mu      sync.Mutex
	book    *Book
	repo    Repository
	records RecordRepository
	notify  func(error)

	defaultCurrency Currency

	refreshGen atomic.Uint64
}

// NewService creates a service over the given backend. Backends that
// implement RecordRepository get per-record write-through.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		book: NewBook(nil),
		repo: repo,
		notify: func(err error) {
			slog.Error("persistence failure", "error", err)
		},
		defaultCurrency: CurrencyUSD,
	}

	if rr, ok := repo.(RecordRepository); ok {
		s.records = rr
	}

	for _, opt := range opts {
		opt(s)
	}

	s.book.SetCurrency(s.defaultCurrency)

	return s
}

// Load pulls the persisted state into memory. Missing state starts empty.
func (s *Service) Load(ctx context.Context) error {
	st, err := s.repo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.install(st)

	return nil
}

// Refresh re-reads authoritative state from the backend. Stale refreshes
// (superseded by a newer one) are discarded.
func (s *Service) Refresh(ctx context.Context) error {
	gen := s.refreshGen.Add(1)

	st, err := s.repo.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("refreshing state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.refreshGen.Load() {
		return nil
	}

	s.install(st)

	return nil
}

// install swaps in a loaded state, rebuilding the derived journal and
// balances for backends that persist only the source collections.
func (s *Service) install(st *State) {
	if st == nil {
		st = &State{}
	}

	// A backend with no persisted currency must not clobber the one in
	// use; the configured default only seeds a fresh workspace.
	if st.Currency == "" {
		st.Currency = s.book.State().Currency
	}

	if st.Currency == "" {
		st.Currency = s.defaultCurrency
	}

	if s.records != nil {
		st.Journal = ReplayJournal(st.Incomes, st.Expenses, st.Transfers)
		RecomputeBalances(st)
	}

	derive := s.book.DeriveBalances()
	s.book = NewBook(st)
	s.book.derive = derive
}

// State returns a copy of the current aggregate for read-side views.
func (s *Service) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.book.State().Clone()
}

// Dashboard builds the derived view-model for the month of ym.
func (s *Service) Dashboard(ym, now time.Time) Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BuildDashboard(s.book.State(), ym, now)
}

// ExpensesForMonth returns the real expenses dated in the month of ym
// followed by the projected recurring rows for that month.
func (s *Service) ExpensesForMonth(ym time.Time) []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.book.State()

	var out []Expense

	for _, e := range st.Expenses {
		if period.SameMonth(e.Date, ym) {
			out = append(out, e)
		}
	}

	return append(out, ProjectRecurring(st.Expenses, ym)...)
}

// SetDeriveBalances toggles derive-from-activity mode and persists the
// recomputed balances on snapshot backends.
func (s *Service) SetDeriveBalances(ctx context.Context, on bool) error {
	s.mu.Lock()
	s.book.SetDeriveBalances(on)
	s.mu.Unlock()

	if s.records != nil {
		return nil
	}

	return s.save(ctx)
}

// SetCurrency sets the workspace display currency and persists it, so a
// later refresh or restart reads back the same value.
func (s *Service) SetCurrency(ctx context.Context, c Currency) error {
	s.mu.Lock()
	s.book.SetCurrency(c)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.SaveCurrency(ctx, c)
	})
}

// Import shallow-merges an exported state into the current one: non-empty
// top-level collections of the import replace the matching current ones.
// The journal and balances are re-derived afterwards so the merge cannot
// leave them diverged, and the merged state is persisted in full.
func (s *Service) Import(ctx context.Context, incoming *State) error {
	s.mu.Lock()

	st := s.book.State()
	Merge(st, incoming)
	st.Journal = ReplayJournal(st.Incomes, st.Expenses, st.Transfers)
	RecomputeBalances(st)

	s.mu.Unlock()

	return s.save(ctx)
}

// Merge shallow-merges src into dst: each non-empty top-level collection of
// src overwrites the matching one in dst.
func Merge(dst, src *State) {
	if src == nil {
		return
	}

	if len(src.Accounts) > 0 {
		dst.Accounts = src.Accounts
	}

	if len(src.Incomes) > 0 {
		dst.Incomes = src.Incomes
	}

	if len(src.Expenses) > 0 {
		dst.Expenses = src.Expenses
	}

	if len(src.Transfers) > 0 {
		dst.Transfers = src.Transfers
	}

	if len(src.Investments) > 0 {
		dst.Investments = src.Investments
	}

	if len(src.Projects) > 0 {
		dst.Projects = src.Projects
	}

	if len(src.Contributions) > 0 {
		dst.Contributions = src.Contributions
	}

	if src.Currency != "" {
		dst.Currency = src.Currency
	}
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	snapshot := s.book.State().Clone()
	s.mu.Unlock()

	if err := s.repo.SaveState(ctx, snapshot); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}

	return nil
}

// dispatch runs a per-record write in the background, then refreshes.
// Writes outlive the request that triggered them; there is no cancellation
// model for persistence.
func (s *Service) dispatch(ctx context.Context, op func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	go func() {
		if err := op(ctx); err != nil {
			s.notify(err)
			return
		}

		if err := s.Refresh(ctx); err != nil {
			s.notify(err)
		}
	}()
}

// persistMutation finishes a successful local mutation: per-record backends
// get the dispatched op, snapshot backends a synchronous save.
func (s *Service) persistMutation(ctx context.Context, op func(context.Context) error) error {
	if s.records != nil {
		s.dispatch(ctx, op)
		return nil
	}

	return s.save(ctx)
}

// --- Accounts ---

func (s *Service) AddAccount(ctx context.Context, a Account) (Account, error) {
	s.mu.Lock()
	created, err := s.book.AddAccount(a)
	s.mu.Unlock()

	if err != nil {
		return Account{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddAccount(ctx, created)
	})
}

func (s *Service) UpdateAccount(ctx context.Context, a Account) error {
	s.mu.Lock()
	err := s.book.UpdateAccount(a)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateAccount(ctx, a)
	})
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteAccount(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteAccount(ctx, id)
	})
}

// --- Incomes ---

func (s *Service) AddIncome(ctx context.Context, in Income) (Income, error) {
	s.mu.Lock()
	created, err := s.book.AddIncome(in)
	s.mu.Unlock()

	if err != nil {
		return Income{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddTransaction(ctx, created.transactionRow())
	})
}

func (s *Service) UpdateIncome(ctx context.Context, in Income) error {
	s.mu.Lock()
	err := s.book.UpdateIncome(in)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateTransaction(ctx, in.transactionRow())
	})
}

func (s *Service) DeleteIncome(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteIncome(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteTransaction(ctx, id)
	})
}

// --- Expenses ---

func (s *Service) AddExpense(ctx context.Context, e Expense) (Expense, error) {
	s.mu.Lock()
	created, err := s.book.AddExpense(e)
	s.mu.Unlock()

	if err != nil {
		return Expense{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddTransaction(ctx, created.transactionRow())
	})
}

func (s *Service) UpdateExpense(ctx context.Context, e Expense) error {
	s.mu.Lock()
	err := s.book.UpdateExpense(e)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateTransaction(ctx, e.transactionRow())
	})
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteExpense(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteTransaction(ctx, id)
	})
}

// --- Transfers ---

func (s *Service) AddTransfer(ctx context.Context, t Transfer) (Transfer, error) {
	s.mu.Lock()
	created, err := s.book.AddTransfer(t)
	s.mu.Unlock()

	if err != nil {
		return Transfer{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddTransfer(ctx, created)
	})
}

func (s *Service) UpdateTransfer(ctx context.Context, t Transfer) error {
	s.mu.Lock()
	err := s.book.UpdateTransfer(t)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateTransfer(ctx, t)
	})
}

func (s *Service) DeleteTransfer(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteTransfer(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteTransfer(ctx, id)
	})
}

// --- Investments ---

func (s *Service) AddInvestment(ctx context.Context, iv Investment) (Investment, error) {
	s.mu.Lock()
	created, err := s.book.AddInvestment(iv)
	s.mu.Unlock()

	if err != nil {
		return Investment{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddInvestment(ctx, created)
	})
}

func (s *Service) UpdateInvestment(ctx context.Context, iv Investment) error {
	s.mu.Lock()
	err := s.book.UpdateInvestment(iv)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateInvestment(ctx, iv)
	})
}

func (s *Service) DeleteInvestment(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteInvestment(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteInvestment(ctx, id)
	})
}

// --- Projects ---

func (s *Service) AddProject(ctx context.Context, p Project) (Project, error) {
	s.mu.Lock()
	created, err := s.book.AddProject(p)
	s.mu.Unlock()

	if err != nil {
		return Project{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddProject(ctx, created)
	})
}

func (s *Service) UpdateProject(ctx context.Context, p Project) error {
	s.mu.Lock()
	err := s.book.UpdateProject(p)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateProject(ctx, p)
	})
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteProject(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteProject(ctx, id)
	})
}

func (s *Service) AddContribution(ctx context.Context, c Contribution) (Contribution, error) {
	s.mu.Lock()
	created, err := s.book.AddContribution(c)
	s.mu.Unlock()

	if err != nil {
		return Contribution{}, err
	}

	return created, s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.AddContribution(ctx, created)
	})
}

func (s *Service) UpdateContribution(ctx context.Context, c Contribution) error {
	s.mu.Lock()
	err := s.book.UpdateContribution(c)
	s.mu.Unlock()

	if err != nil {
		return err
	}

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.UpdateContribution(ctx, c)
	})
}

func (s *Service) DeleteContribution(ctx context.Context, id string) error {
	s.mu.Lock()
	s.book.DeleteContribution(id)
	s.mu.Unlock()

	return s.persistMutation(ctx, func(ctx context.Context) error {
		return s.records.DeleteContribution(ctx, id)
	})
}
