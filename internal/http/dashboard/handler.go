// Package dashboard serves the aggregated month view: totals, trend,
// projected recurring expenses, goal outlook, and the month's journal.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kmwaniki/pesa/internal/ledger"
	"github.com/kmwaniki/pesa/internal/period"
)

type Handler struct {
	svc *ledger.Service
	now func() time.Time
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	ym := now

	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := period.ParseKey(m)
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}

		ym = parsed
	}

	d := h.svc.Dashboard(ym, now)

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}

		d.Trend = ledger.FilterYear(d.Trend, year)
	}

	if name := r.URL.Query().Get("monthName"); name != "" {
		m, ok := ledger.ParseMonthName(name)
		if !ok {
			http.Error(w, "invalid month name", http.StatusBadRequest)
			return
		}

		d.Trend = ledger.FilterMonth(d.Trend, m)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(d); err != nil {
		slog.Error("failed to encode dashboard", "error", err)
	}
}
