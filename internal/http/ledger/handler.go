// Package ledger exposes the engine's mutators and record listings over
// HTTP. Handlers are thin: they parse, call the service, and encode.
package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kmwaniki/pesa/internal/ledger"
	"github.com/kmwaniki/pesa/internal/period"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.Post("/", h.createAccount)
		r.Put("/{id}", h.updateAccount)
		r.Delete("/{id}", h.deleteAccount)
	})

	r.Route("/incomes", func(r chi.Router) {
		r.Get("/", h.listIncomes)
		r.Post("/", h.createIncome)
		r.Put("/{id}", h.updateIncome)
		r.Delete("/{id}", h.deleteIncome)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", h.listExpenses)
		r.Post("/", h.createExpense)
		r.Put("/{id}", h.updateExpense)
		r.Delete("/{id}", h.deleteExpense)
	})

	r.Route("/transfers", func(r chi.Router) {
		r.Get("/", h.listTransfers)
		r.Post("/", h.createTransfer)
		r.Put("/{id}", h.updateTransfer)
		r.Delete("/{id}", h.deleteTransfer)
	})

	r.Route("/investments", func(r chi.Router) {
		r.Get("/", h.listInvestments)
		r.Post("/", h.createInvestment)
		r.Put("/{id}", h.updateInvestment)
		r.Delete("/{id}", h.deleteInvestment)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.listProjects)
		r.Post("/", h.createProject)
		r.Put("/{id}", h.updateProject)
		r.Delete("/{id}", h.deleteProject)
		r.Post("/{id}/contributions", h.createContribution)
	})

	r.Route("/contributions", func(r chi.Router) {
		r.Put("/{id}", h.updateContribution)
		r.Delete("/{id}", h.deleteContribution)
	})

	r.Route("/settings", func(r chi.Router) {
		r.Patch("/", h.updateSettings)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if isValidation(err) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func isValidation(err error) bool {
	for _, sentinel := range []error{
		ledger.ErrEmptyAccount, ledger.ErrEmptyName, ledger.ErrEmptySource,
		ledger.ErrEmptyCategory, ledger.ErrEmptyInstrument, ledger.ErrEmptyProject,
		ledger.ErrNonPositiveAmount, ledger.ErrSameAccount, ledger.ErrZeroDate,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// parseDate accepts both date-only and RFC 3339 forms.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}

// --- Accounts ---

type accountRequest struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Currency       string          `json:"currency"`
}

func (r accountRequest) toAccount(id string) ledger.Account {
	return ledger.Account{
		ID:             id,
		Name:           r.Name,
		Type:           ledger.AccountType(r.Type),
		OpeningBalance: r.OpeningBalance,
		Currency:       ledger.Currency(r.Currency),
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Accounts)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddAccount(r.Context(), req.toAccount(""))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateAccount(r.Context(), req.toAccount(chi.URLParam(r, "id"))); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Incomes ---

type incomeRequest struct {
	Date      string          `json:"date"`
	Source    string          `json:"source"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"accountId"`
	Notes     string          `json:"notes"`
}

func (r incomeRequest) toIncome(id string) (ledger.Income, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.Income{}, err
	}

	return ledger.Income{
		ID:        id,
		Date:      date,
		Source:    r.Source,
		Amount:    r.Amount,
		AccountID: r.AccountID,
		Notes:     r.Notes,
	}, nil
}

func (h *Handler) listIncomes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Incomes)
}

func (h *Handler) createIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := req.toIncome("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddIncome(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateIncome(w http.ResponseWriter, r *http.Request) {
	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	in, err := req.toIncome(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateIncome(r.Context(), in); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteIncome(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteIncome(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Expenses ---

type recurrenceRequest struct {
	Enabled bool   `json:"enabled"`
	Period  string `json:"period"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type expenseRequest struct {
	Date        string             `json:"date"`
	Category    string             `json:"category"`
	Amount      decimal.Decimal    `json:"amount"`
	IsRecurring bool               `json:"isRecurring"`
	Recurrence  *recurrenceRequest `json:"recurrence"`
	AccountID   string             `json:"accountId"`
	Notes       string             `json:"notes"`
}

func (r expenseRequest) toExpense(id string) (ledger.Expense, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.Expense{}, err
	}

	e := ledger.Expense{
		ID:          id,
		Date:        date,
		Category:    r.Category,
		Amount:      r.Amount,
		IsRecurring: r.IsRecurring,
		AccountID:   r.AccountID,
		Notes:       r.Notes,
	}

	if r.Recurrence != nil {
		rec := ledger.Recurrence{
			Enabled: r.Recurrence.Enabled,
			Period:  ledger.RecurrencePeriod(r.Recurrence.Period),
		}

		if r.Recurrence.Start != "" {
			if rec.Start, err = parseDate(r.Recurrence.Start); err != nil {
				return ledger.Expense{}, err
			}
		}

		if r.Recurrence.End != "" {
			if rec.End, err = parseDate(r.Recurrence.End); err != nil {
				return ledger.Expense{}, err
			}
		}

		e.Recurrence = &rec
	}

	return e, nil
}

// listExpenses returns every recorded expense, or, with ?month=YYYY-MM,
// that month's recorded expenses plus the projected recurring rows.
func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	if m := r.URL.Query().Get("month"); m != "" {
		ym, err := period.ParseKey(m)
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, h.svc.ExpensesForMonth(ym))

		return
	}

	writeJSON(w, http.StatusOK, h.svc.State().Expenses)
}

func (h *Handler) createExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := req.toExpense("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddExpense(r.Context(), e)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e, err := req.toExpense(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateExpense(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Transfers ---

type transferRequest struct {
	Date          string          `json:"date"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
}

func (r transferRequest) toTransfer(id string) (ledger.Transfer, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.Transfer{}, err
	}

	return ledger.Transfer{
		ID:            id,
		Date:          date,
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        r.Amount,
		Notes:         r.Notes,
	}, nil
}

func (h *Handler) listTransfers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Transfers)
}

func (h *Handler) createTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := req.toTransfer("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddTransfer(r.Context(), t)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := req.toTransfer(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateTransfer(r.Context(), t); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTransfer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTransfer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Investments ---

type investmentRequest struct {
	Date       string          `json:"date"`
	Instrument string          `json:"instrument"`
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"accountId"`
	Notes      string          `json:"notes"`
}

func (r investmentRequest) toInvestment(id string) (ledger.Investment, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return ledger.Investment{}, err
	}

	return ledger.Investment{
		ID:         id,
		Date:       date,
		Instrument: r.Instrument,
		Amount:     r.Amount,
		AccountID:  r.AccountID,
		Notes:      r.Notes,
	}, nil
}

func (h *Handler) listInvestments(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Investments)
}

func (h *Handler) createInvestment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	iv, err := req.toInvestment("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddInvestment(r.Context(), iv)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateInvestment(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	iv, err := req.toInvestment(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateInvestment(r.Context(), iv); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteInvestment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteInvestment(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Projects ---

type projectRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   string          `json:"targetDate"`
	Notes        string          `json:"notes"`
}

func (r projectRequest) toProject(id string) (ledger.Project, error) {
	date, err := parseDate(r.TargetDate)
	if err != nil {
		return ledger.Project{}, err
	}

	return ledger.Project{
		ID:           id,
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
		TargetDate:   date,
		Notes:        r.Notes,
	}, nil
}

func (h *Handler) listProjects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Projects)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := req.toProject("")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddProject(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := req.toProject(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateProject(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type contributionRequest struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes"`
}

func (h *Handler) createContribution(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.svc.AddContribution(r.Context(), ledger.Contribution{
		ProjectID: chi.URLParam(r, "id"),
		Date:      date,
		Amount:    req.Amount,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateContribution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		contributionRequest
		ProjectID string `json:"projectId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateContribution(r.Context(), ledger.Contribution{
		ID:        chi.URLParam(r, "id"),
		ProjectID: req.ProjectID,
		Date:      date,
		Amount:    req.Amount,
		Notes:     req.Notes,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteContribution(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Settings ---

type settingsRequest struct {
	Currency       *string `json:"currency,omitempty"`
	DeriveBalances *bool   `json:"deriveBalances,omitempty"`
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Currency != nil {
		if err := h.svc.SetCurrency(r.Context(), ledger.Currency(*req.Currency)); err != nil {
			writeError(w, err)
			return
		}
	}

	if req.DeriveBalances != nil {
		if err := h.svc.SetDeriveBalances(r.Context(), *req.DeriveBalances); err != nil {
			writeError(w, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
