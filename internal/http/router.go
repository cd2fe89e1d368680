package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kmwaniki/pesa/internal/http/dashboard"
	"github.com/kmwaniki/pesa/internal/http/ledger"
	"github.com/kmwaniki/pesa/internal/http/portable"
)

func New(
	ledgerV1 *ledger.Handler,
	dashboardV1 *dashboard.Handler,
	portableV1 *portable.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.Routes(r)
		})

		dashboardV1.Routes(r)

		portableV1.Routes(r)
	})

	return router
}
