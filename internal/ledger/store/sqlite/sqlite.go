// Package sqlite is the embedded desktop-variant backend: the same source
// collections as the hosted store, simplified to a single-user database
// file with no workspace scoping.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kmwaniki/pesa/internal/ledger"
)

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	type            TEXT NOT NULL,
	opening_balance TEXT NOT NULL DEFAULT '0',
	currency        TEXT NOT NULL DEFAULT 'USD'
);

CREATE TABLE IF NOT EXISTS transactions (
	id            TEXT PRIMARY KEY,
	date          TIMESTAMP NOT NULL,
	amount        TEXT NOT NULL,
	label         TEXT NOT NULL,
	account_id    TEXT NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	recur_enabled INTEGER NOT NULL DEFAULT 0,
	recur_period  TEXT,
	recur_start   TIMESTAMP,
	recur_end     TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transfers (
	id              TEXT PRIMARY KEY,
	date            TIMESTAMP NOT NULL,
	from_account_id TEXT NOT NULL,
	to_account_id   TEXT NOT NULL,
	amount          TEXT NOT NULL,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS investments (
	id         TEXT PRIMARY KEY,
	date       TIMESTAMP NOT NULL,
	instrument TEXT NOT NULL,
	amount     TEXT NOT NULL,
	account_id TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS projects (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	target_amount TEXT NOT NULL,
	target_date   TIMESTAMP NOT NULL,
	notes         TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS contributions (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	date       TIMESTAMP NOT NULL,
	amount     TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS settings (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	currency TEXT NOT NULL DEFAULT 'USD'
);
`

// New opens (creating if needed) the database file and ensures the schema.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// --- Accounts ---

func (s *Store) AddAccount(ctx context.Context, a ledger.Account) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, type, opening_balance, currency) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, string(a.Type), a.OpeningBalance, string(a.Currency),
	); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) UpdateAccount(ctx context.Context, a ledger.Account) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET name = ?, type = ?, opening_balance = ?, currency = ? WHERE id = ?`,
		a.Name, string(a.Type), a.OpeningBalance, string(a.Currency), a.ID,
	); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// --- Transactions ---

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
	recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(t.Recurrence)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions
		(id, date, amount, label, account_id, notes, recur_enabled, recur_period, recur_start, recur_end)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.Amount, t.Label, t.AccountID, t.Notes,
		recurOn, recurPeriod, recurStart, recurEnd,
	); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, t ledger.Transaction) error {
	recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(t.Recurrence)

	if _, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET date = ?, amount = ?, label = ?, account_id = ?, notes = ?,
		recur_enabled = ?, recur_period = ?, recur_start = ?, recur_end = ? WHERE id = ?`,
		t.Date, t.Amount, t.Label, t.AccountID, t.Notes,
		recurOn, recurPeriod, recurStart, recurEnd, t.ID,
	); err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

// --- Transfers ---

func (s *Store) AddTransfer(ctx context.Context, t ledger.Transfer) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO transfers (id, date, from_account_id, to_account_id, amount, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes,
	); err != nil {
		return fmt.Errorf("creating transfer: %w", err)
	}

	return nil
}

func (s *Store) UpdateTransfer(ctx context.Context, t ledger.Transfer) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE transfers SET date = ?, from_account_id = ?, to_account_id = ?, amount = ?, notes = ?
		WHERE id = ?`,
		t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes, t.ID,
	); err != nil {
		return fmt.Errorf("updating transfer: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransfer(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transfers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting transfer: %w", err)
	}

	return nil
}

// --- Investments ---

func (s *Store) AddInvestment(ctx context.Context, iv ledger.Investment) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO investments (id, date, instrument, amount, account_id, notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		iv.ID, iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes,
	); err != nil {
		return fmt.Errorf("creating investment: %w", err)
	}

	return nil
}

func (s *Store) UpdateInvestment(ctx context.Context, iv ledger.Investment) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE investments SET date = ?, instrument = ?, amount = ?, account_id = ?, notes = ?
		WHERE id = ?`,
		iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes, iv.ID,
	); err != nil {
		return fmt.Errorf("updating investment: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvestment(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM investments WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting investment: %w", err)
	}

	return nil
}

// --- Projects ---

func (s *Store) AddProject(ctx context.Context, p ledger.Project) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, target_amount, target_date, notes) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.TargetAmount, p.TargetDate, p.Notes,
	); err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) UpdateProject(ctx context.Context, p ledger.Project) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, target_amount = ?, target_date = ?, notes = ? WHERE id = ?`,
		p.Name, p.TargetAmount, p.TargetDate, p.Notes, p.ID,
	); err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM contributions WHERE project_id = ?`, id); err != nil {
		return fmt.Errorf("deleting project contributions: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

// --- Contributions ---

func (s *Store) AddContribution(ctx context.Context, c ledger.Contribution) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO contributions (id, project_id, date, amount, notes) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.ProjectID, c.Date, c.Amount, c.Notes,
	); err != nil {
		return fmt.Errorf("creating contribution: %w", err)
	}

	return nil
}

func (s *Store) UpdateContribution(ctx context.Context, c ledger.Contribution) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE contributions SET project_id = ?, date = ?, amount = ?, notes = ? WHERE id = ?`,
		c.ProjectID, c.Date, c.Amount, c.Notes, c.ID,
	); err != nil {
		return fmt.Errorf("updating contribution: %w", err)
	}

	return nil
}

func (s *Store) DeleteContribution(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM contributions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting contribution: %w", err)
	}

	return nil
}

// --- Settings ---

// SaveCurrency upserts the display currency into the single settings row.
func (s *Store) SaveCurrency(ctx context.Context, c ledger.Currency) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, currency) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET currency = excluded.currency`,
		string(c),
	); err != nil {
		return fmt.Errorf("saving currency: %w", err)
	}

	return nil
}

func (s *Store) currency(ctx context.Context) (ledger.Currency, error) {
	var cur string

	err := s.db.QueryRowContext(ctx, `SELECT currency FROM settings WHERE id = 1`).Scan(&cur)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("reading currency: %w", err)
	}

	return ledger.Currency(cur), nil
}

// --- Snapshot contract ---

func (s *Store) LoadState(ctx context.Context) (*ledger.State, error) {
	st := &ledger.State{}

	accountRows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, opening_balance, currency FROM accounts ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer accountRows.Close()

	for accountRows.Next() {
		var (
			a       ledger.Account
			accType string
			cur     string
		)

		if err := accountRows.Scan(&a.ID, &a.Name, &accType, &a.OpeningBalance, &cur); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		a.Type = ledger.AccountType(accType)
		a.Currency = ledger.Currency(cur)
		a.Balance = a.OpeningBalance
		st.Accounts = append(st.Accounts, a)
	}

	if err := accountRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	txs, err := s.listTransactions(ctx)
	if err != nil {
		return nil, err
	}

	st.Incomes, st.Expenses = ledger.SplitTransactions(txs)

	transferRows, err := s.db.QueryContext(ctx,
		`SELECT id, date, from_account_id, to_account_id, amount, notes FROM transfers ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer transferRows.Close()

	for transferRows.Next() {
		var t ledger.Transfer
		if err := transferRows.Scan(&t.ID, &t.Date, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.Notes); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}

		st.Transfers = append(st.Transfers, t)
	}

	if err := transferRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transfers: %w", err)
	}

	investmentRows, err := s.db.QueryContext(ctx,
		`SELECT id, date, instrument, amount, account_id, notes FROM investments ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}
	defer investmentRows.Close()

	for investmentRows.Next() {
		var iv ledger.Investment
		if err := investmentRows.Scan(&iv.ID, &iv.Date, &iv.Instrument, &iv.Amount, &iv.AccountID, &iv.Notes); err != nil {
			return nil, fmt.Errorf("scanning investment: %w", err)
		}

		st.Investments = append(st.Investments, iv)
	}

	if err := investmentRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating investments: %w", err)
	}

	projectRows, err := s.db.QueryContext(ctx,
		`SELECT id, name, target_amount, target_date, notes FROM projects ORDER BY target_date ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer projectRows.Close()

	for projectRows.Next() {
		var p ledger.Project
		if err := projectRows.Scan(&p.ID, &p.Name, &p.TargetAmount, &p.TargetDate, &p.Notes); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		st.Projects = append(st.Projects, p)
	}

	if err := projectRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	contributionRows, err := s.db.QueryContext(ctx,
		`SELECT id, project_id, date, amount, notes FROM contributions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer contributionRows.Close()

	for contributionRows.Next() {
		var c ledger.Contribution
		if err := contributionRows.Scan(&c.ID, &c.ProjectID, &c.Date, &c.Amount, &c.Notes); err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}

		st.Contributions = append(st.Contributions, c)
	}

	if err := contributionRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contributions: %w", err)
	}

	if st.Currency, err = s.currency(ctx); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Store) listTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, amount, label, account_id, notes, recur_enabled, recur_period, recur_start, recur_end
		FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction

	for rows.Next() {
		var (
			t           ledger.Transaction
			recurOn     bool
			recurPeriod sql.NullString
			recurStart  sql.NullTime
			recurEnd    sql.NullTime
		)

		if err := rows.Scan(
			&t.ID, &t.Date, &t.Amount, &t.Label, &t.AccountID, &t.Notes,
			&recurOn, &recurPeriod, &recurStart, &recurEnd,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
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

			t.Recurrence = &rec
		}

		txs = append(txs, t)
	}

	return txs, rows.Err()
}

// SaveState rewrites the whole database in one transaction; used for
// whole-state import.
func (s *Store) SaveState(ctx context.Context, st *ledger.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "transactions", "transfers", "investments", "projects", "contributions"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, a := range st.Accounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (id, name, type, opening_balance, currency) VALUES (?, ?, ?, ?, ?)`,
			a.ID, a.Name, string(a.Type), a.OpeningBalance, string(a.Currency),
		); err != nil {
			return fmt.Errorf("writing account: %w", err)
		}
	}

	for _, row := range ledger.ToTransactions(st.Incomes, st.Expenses) {
		recurOn, recurPeriod, recurStart, recurEnd := recurrenceArgs(row.Recurrence)

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions
			(id, date, amount, label, account_id, notes, recur_enabled, recur_period, recur_start, recur_end)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.Date, row.Amount, row.Label, row.AccountID, row.Notes,
			recurOn, recurPeriod, recurStart, recurEnd,
		); err != nil {
			return fmt.Errorf("writing transaction: %w", err)
		}
	}

	for _, t := range st.Transfers {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transfers (id, date, from_account_id, to_account_id, amount, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, t.Date, t.FromAccountID, t.ToAccountID, t.Amount, t.Notes,
		); err != nil {
			return fmt.Errorf("writing transfer: %w", err)
		}
	}

	for _, iv := range st.Investments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO investments (id, date, instrument, amount, account_id, notes)
			VALUES (?, ?, ?, ?, ?, ?)`,
			iv.ID, iv.Date, iv.Instrument, iv.Amount, iv.AccountID, iv.Notes,
		); err != nil {
			return fmt.Errorf("writing investment: %w", err)
		}
	}

	for _, p := range st.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (id, name, target_amount, target_date, notes) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.TargetAmount, p.TargetDate, p.Notes,
		); err != nil {
			return fmt.Errorf("writing project: %w", err)
		}
	}

	for _, c := range st.Contributions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO contributions (id, project_id, date, amount, notes) VALUES (?, ?, ?, ?, ?)`,
			c.ID, c.ProjectID, c.Date, c.Amount, c.Notes,
		); err != nil {
			return fmt.Errorf("writing contribution: %w", err)
		}
	}

	if st.Currency != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO settings (id, currency) VALUES (1, ?)
			ON CONFLICT (id) DO UPDATE SET currency = excluded.currency`,
			string(st.Currency),
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
