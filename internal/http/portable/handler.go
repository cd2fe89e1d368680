// Package portable wires snapshot export and import over HTTP.
package portable

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kmwaniki/pesa/internal/ledger"
	"github.com/kmwaniki/pesa/internal/portable"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/export", h.export)
	r.Post("/import", h.importSnapshot)
}

func (h *Handler) export(w http.ResponseWriter, _ *http.Request) {
	name := fmt.Sprintf("pesa-%s.json", time.Now().Format(time.DateOnly))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if err := portable.Encode(w, h.svc.State()); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}

func (h *Handler) importSnapshot(w http.ResponseWriter, r *http.Request) {
	st, err := portable.Decode(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Import(r.Context(), st); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
