// Package postgres is the hosted relational backend. Rows are scoped to a
// workspace and only the source collections are persisted; the journal is
// rebuilt by replay on every load.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kmwaniki/pesa/internal/ledger"
)

type Store struct {
	db        *sql.DB
	workspace string
}

func New(db *sql.DB, workspace string) *Store {
	return &Store{db: db, workspace: workspace}
}

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id              TEXT PRIMARY KEY,
	workspace_id    TEXT NOT NULL,
	name            TEXT NOT NULL,
	type            TEXT NOT NULL,
	opening_balance NUMERIC(14,2) NOT NULL DEFAULT 0,
	currency        TEXT NOT NULL DEFAULT 'USD'
);

CREATE TABLE IF NOT EXISTS transactions (
	id            TEXT PRIMARY KEY,
	workspace_id  TEXT NOT NULL,
	date          TIMESTAMPTZ NOT NULL,
	amount        NUMERIC(14,2) NOT NULL,
	label         TEXT NOT NULL,
	account_id    TEXT NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	recur_enabled BOOLEAN NOT NULL DEFAULT FALSE,
	recur_period  TEXT,
	recur_start   TIMESTAMPTZ,
	recur_end     TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS transfers (
	id              TEXT PRIMARY KEY,
	workspace_id    TEXT NOT NULL,
	date            TIMESTAMPTZ NOT NULL,
	from_account_id TEXT NOT NULL,
	to_account_id   TEXT NOT NULL,
	amount          NUMERIC(14,2) NOT NULL,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS investments (
	id           TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL,
	date         TIMESTAMPTZ NOT NULL,
	instrument   TEXT NOT NULL,
	amount       NUMERIC(14,2) NOT NULL,
	account_id   TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS projects (
	id            TEXT PRIMARY KEY,
	workspace_id  TEXT NOT NULL,
	name          TEXT NOT NULL,
	target_amount NUMERIC(14,2) NOT NULL,
	target_date   TIMESTAMPTZ NOT NULL,
	notes         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS contributions (
	id           TEXT PRIMARY KEY,
	workspace_id TEXT NOT NULL,
	project_id   TEXT NOT NULL,
	date         TIMESTAMPTZ NOT NULL,
	amount       NUMERIC(14,2) NOT NULL,
	notes        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workspaces (
	id       TEXT PRIMARY KEY,
	currency TEXT NOT NULL DEFAULT 'USD'
);

CREATE INDEX IF NOT EXISTS idx_transactions_workspace ON transactions (workspace_id, date);
CREATE INDEX IF NOT EXISTS idx_transfers_workspace ON transfers (workspace_id, date);
CREATE INDEX IF NOT EXISTS idx_contributions_project ON contributions (workspace_id, project_id);
`

// Init creates the schema when it does not exist yet.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// --- Accounts ---

func (s *Store) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	query := `SELECT id, name, type, opening_balance, currency
		FROM accounts WHERE workspace_id = $1 ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account

	for rows.Next() {
		var (
			a       ledger.Account
			accType string
			cur     string
		)

		if err := rows.Scan(&a.ID, &a.Name, &accType, &a.OpeningBalance, &cur); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		a.Type = ledger.AccountType(accType)
		a.Currency = ledger.Currency(cur)
		a.Balance = a.OpeningBalance

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

func (s *Store) AddAccount(ctx context.Context, a ledger.Account) error {
	query := `INSERT INTO accounts (id, workspace_id, name, type, opening_balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := s.db.ExecContext(ctx, query,
		a.ID, s.workspace, a.Name, string(a.Type), a.OpeningBalance, string(a.Currency),
	); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, a ledger.Account) error {
	query := `UPDATE accounts SET name = $1, type = $2, opening_balance = $3, currency = $4
		WHERE id = $5 AND workspace_id = $6`

	if _, err := s.db.ExecContext(ctx, query,
		a.Name, string(a.Type), a.OpeningBalance, string(a.Currency), a.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM accounts WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// --- Transactions (signed incomes/expenses) ---

const selectTransactionColumns = `id, date, amount, label, account_id, notes,
	recur_enabled, recur_period, recur_start, recur_end`

func scanTransaction(sc scanner) (ledger.Transaction, error) {
	var (
		row         ledger.Transaction
		recurOn     bool
		recurPeriod sql.NullString
		recurStart  sql.NullTime
		recurEnd    sql.NullTime
	)

	if err := sc.Scan(
		&row.ID, &row.Date, &row.Amount, &row.Label, &row.AccountID, &row.Notes,
		&recurOn, &recurPeriod, &recurStart, &recurEnd,
	); err != nil {
		return ledger.Transaction{}, err
	}

	if recurOn {
		rec := ledger.Recurrence{
			Enabled: true,
			Period:  ledger.RecurrencePeriod(recurPeriod.String),
			Start:   recurStart.Time,
		}

		if recurEnd.Valid {
			rec.End = recurEnd.Time
		}

		row.Recurrence = &rec
	}

	return row, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions WHERE workspace_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction

	for rows.Next() {
		row, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, row)
	}

	return txs, rows.Err()
}

func recurrenceArgs(rec *ledger.Recurrence) (bool, any, any, any) {
	if rec == nil {
		return false, nil, nil, nil
	}

	var end any
	if !rec.End.IsZero() {
		end = rec.End
	}

	return true, string(rec.Period), rec.Start, end
}

func (s *Store) AddTransaction(ctx context.Context, t ledger.Transaction) error {
	query := `INSERT INTO transactions
		(id, workspace_id, date, amount, label, account_id, notes, recur_enabled, recur_period, recur_start, recur_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(t.Recurrence)

	if _, err := s.db.ExecContext(ctx, query,
		t.ID, s.workspace, t.Date, t.Amount, t.Label, t.AccountID, t.Notes,
		recurOn, recurPeriod, recurStart, recurEnd,
	); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, t ledger.Transaction) error {
	query := `UPDATE transactions
		SET date = $1, amount = $2, label = $3, account_id = $4, notes = $5,
		    recur_enabled = $6, recur_period = $7, recur_start = $8, recur_end = $9
		WHERE id = $10 AND workspace_id = $11`

	recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(t.Recurrence)

	if _, err := s.db.ExecContext(ctx, query,
		t.Date, t.Amount, t.Label, t.AccountID, t.Notes,
		recurOn, recurPeriod, recurStart, recurEnd,
		t.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// --- Transfers ---

func (s *Store) ListTransfers(ctx context.Context) ([]ledger.Transfer, error) {
	query := `SELECT id, date, from_account_id, to_account_id, amount, notes
		FROM transfers WHERE workspace_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []ledger.Transfer

	for rows.Next() {
		var t ledger.Transfer
		if err := rows.Scan(&t.ID, &t.Date, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.Notes); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}

		transfers = append(transfers, t)
	}

	return transfers, rows.Err()
}

func (s *Store) AddTransfer(ctx context.Context, t ledger.Transfer) error {
	query := `INSERT INTO transfers (id, workspace_id, date, from_account_id, to_account_id, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := s.db.ExecContext(ctx, query,
		t.ID, s.workspace, t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes,
	); err != nil {
		return fmt.Errorf("creating transfer: %w", err)
	}

	return nil
}

func (s *Store) UpdateTransfer(ctx context.Context, t ledger.Transfer) error {
	query := `UPDATE transfers
		SET date = $1, from_account_id = $2, to_account_id = $3, amount = $4, notes = $5
		WHERE id = $6 AND workspace_id = $7`

	if _, err := s.db.ExecContext(ctx, query,
		t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes, t.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating transfer: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransfer(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM transfers WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting transfer: %w", err)
	}

	return nil
}

// --- Investments ---

func (s *Store) ListInvestments(ctx context.Context) ([]ledger.Investment, error) {
	query := `SELECT id, date, instrument, amount, account_id, notes
		FROM investments WHERE workspace_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	defer rows.Close()

	var investments []ledger.Investment

	for rows.Next() {
		var iv ledger.Investment
		if err := rows.Scan(&iv.ID, &iv.Date, &iv.Instrument, &iv.Amount, &iv.AccountID, &iv.Notes); err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}

		investments = append(investments, iv)
	}

	return investments, rows.Err()
}

func (s *Store) AddInvestment(ctx context.Context, iv ledger.Investment) error {
	query := `INSERT INTO investments (id, workspace_id, date, instrument, amount, account_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := s.db.ExecContext(ctx, query,
		iv.ID, s.workspace, iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes,
	); err != nil {
		return fmt.Errorf("creating investment: %w", err)
	}

	return nil
}

func (s *Store) UpdateInvestment(ctx context.Context, iv ledger.Investment) error {
	query := `UPDATE investments
		SET date = $1, instrument = $2, amount = $3, account_id = $4, notes = $5
		WHERE id = $6 AND workspace_id = $7`

	if _, err := s.db.ExecContext(ctx, query,
		iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes, iv.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating investment: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM investments WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting investment: %w", err)
	}

	return nil
}

// --- Projects ---

func (s *Store) ListProjects(ctx context.Context) ([]ledger.Project, error) {
	query := `SELECT id, name, target_amount, target_date, notes
		FROM projects WHERE workspace_id = $1 ORDER BY target_date ASC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []ledger.Project

	for rows.Next() {
		var p ledger.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.TargetAmount, &p.TargetDate, &p.Notes); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (s *Store) AddProject(ctx context.Context, p ledger.Project) error {
	query := `INSERT INTO projects (id, workspace_id, name, target_amount, target_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := s.db.ExecContext(ctx, query,
		p.ID, s.workspace, p.Name, p.TargetAmount, p.TargetDate, p.Notes,
	); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) UpdateProject(ctx context.Context, p ledger.Project) error {
	query := `UPDATE projects SET name = $1, target_amount = $2, target_date = $3, notes = $4
		WHERE id = $5 AND workspace_id = $6`

	if _, err := s.db.ExecContext(ctx, query,
		p.Name, p.TargetAmount, p.TargetDate, p.Notes, p.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	return nil
}

// DeleteProject removes the project and its contributions in one database
// transaction, mirroring the engine-side cascade.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM contributions WHERE project_id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting project contributions: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM projects WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

// --- Contributions ---

func (s *Store) ListContributions(ctx context.Context) ([]ledger.Contribution, error) {
	query := `SELECT id, project_id, date, amount, notes
		FROM contributions WHERE workspace_id = $1 ORDER BY date DESC`

	rows, err := s.db.QueryContext(ctx, query, s.workspace)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer rows.Close()

	var contributions []ledger.Contribution

	for rows.Next() {
		var c ledger.Contribution
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Date, &c.Amount, &c.Notes); err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}

		contributions = append(contributions, c)
	}

	return contributions, rows.Err()
}

func (s *Store) AddContribution(ctx context.Context, c ledger.Contribution) error {
	query := `INSERT INTO contributions (id, workspace_id, project_id, date, amount, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := s.db.ExecContext(ctx, query,
		c.ID, s.workspace, c.ProjectID, c.Date, c.Amount, c.Notes,
	); err != nil {
		return fmt.Errorf("creating contribution: %w", err)
	}

	return nil
}

func (s *Store) UpdateContribution(ctx context.Context, c ledger.Contribution) error {
	query := `UPDATE contributions SET project_id = $1, date = $2, amount = $3, notes = $4
		WHERE id = $5 AND workspace_id = $6`

	if _, err := s.db.ExecContext(ctx, query,
		c.ProjectID, c.Date, c.Amount, c.Notes, c.ID, s.workspace,
	); err != nil {
		return fmt.Errorf("updating contribution: %w", err)
	}

	return nil
}

func (s *Store) DeleteContribution(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM contributions WHERE id = $1 AND workspace_id = $2`, id, s.workspace,
	); err != nil {
		return fmt.Errorf("deleting contribution: %w", err)
	}

	return nil
}

// --- Workspace settings ---

// SaveCurrency upserts the workspace display currency.
func (s *Store) SaveCurrency(ctx context.Context, c ledger.Currency) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, currency) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET currency = EXCLUDED.currency`,
		s.workspace, string(c),
	); err != nil {
		return fmt.Errorf("saving currency: %w", err)
	}

	return nil
}

func (s *Store) currency(ctx context.Context) (ledger.Currency, error) {
	var cur string

	err := s.db.QueryRowContext(ctx,
		`SELECT currency FROM workspaces WHERE id = $1`, s.workspace).Scan(&cur)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading currency: %w", err)
	}

	return ledger.Currency(cur), nil
}

// --- Snapshot contract ---

// LoadState assembles the source collections for the workspace. The
// journal is left empty; the engine replays it.
func (s *Store) LoadState(ctx context.Context) (*ledger.State, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	transfers, err := s.ListTransfers(ctx)
	if err != nil {
		return nil, err
	}

	investments, err := s.ListInvestments(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	contributions, err := s.ListContributions(ctx)
	if err != nil {
		return nil, err
	}

	currency, err := s.currency(ctx)
	if err != nil {
		return nil, err
	}

	incomes, expenses := ledger.SplitTransactions(txs)

	return &ledger.State{
		Accounts:      accounts,
		Incomes:       incomes,
		Expenses:      expenses,
		Transfers:     transfers,
		Investments:   investments,
		Projects:      projects,
		Contributions: contributions,
		Currency:      currency,
	}, nil
}

// SaveState rewrites the workspace in one database transaction. Used for
// whole-state import; incremental mutations go through the per-record
// methods instead.
func (s *Store) SaveState(ctx context.Context, st *ledger.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "transactions", "transfers", "investments", "projects", "contributions"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE workspace_id = $1`, s.workspace); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, a := range st.Accounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, workspace_id, name, type, opening_balance, currency)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			a.ID, s.workspace, a.Name, string(a.Type), a.OpeningBalance, string(a.Currency),
		); err != nil {
			return fmt.Errorf("writing account: %w", err)
		}
	}

	for _, row := range ledger.ToTransactions(st.Incomes, st.Expenses) {
		recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(row.Recurrence)

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions
			(id, workspace_id, date, amount, label, account_id, notes, recur_enabled, recur_period, recur_start, recur_end)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			row.ID, s.workspace, row.Date, row.Amount, row.Label, row.AccountID, row.Notes,
			recurOn, recurPeriod, recurStart, recurEnd,
		); err != nil {
			return fmt.Errorf("writing transaction: %w", err)
		}
	}

	for _, t := range st.Transfers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transfers (id, workspace_id, date, from_account_id, to_account_id, amount, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			t.ID, s.workspace, t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes,
		); err != nil {
			return fmt.Errorf("writing transfer: %w", err)
		}
	}

	for _, iv := range st.Investments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO investments (id, workspace_id, date, instrument, amount, account_id, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			iv.ID, s.workspace, iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes,
		); err != nil {
			return fmt.Errorf("writing investment: %w", err)
		}
	}

	for _, p := range st.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, workspace_id, name, target_amount, target_date, notes)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, s.workspace, p.Name, p.TargetAmount, p.TargetDate, p.Notes,
		); err != nil {
			return fmt.Errorf("writing project: %w", err)
		}
	}

	for _, c := range st.Contributions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contributions (id, workspace_id, project_id, date, amount, notes)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			c.ID, s.workspace, c.ProjectID, c.Date, c.Amount, c.Notes,
		); err != nil {
			return fmt.Errorf("writing contribution: %w", err)
		}
	}

	if st.Currency != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO workspaces (id, currency) VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE SET currency = EXCLUDED.currency`,
			s.workspace, string(st.Currency),
		); err != nil {
			return fmt.Errorf("writing currency: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing state: %w", err)
	}

	return nil
}

var _ ledger.RecordRepository = (*Store)(nil)
