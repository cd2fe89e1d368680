package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kmwaniki/pesa/internal/backend"
	"github.com/kmwaniki/pesa/internal/config"
	pesaHttp "github.com/kmwaniki/pesa/internal/http"
	dashboardHandler "github.com/kmwaniki/pesa/internal/http/dashboard"
	ledgerHandler "github.com/kmwaniki/pesa/internal/http/ledger"
	portableHandler "github.com/kmwaniki/pesa/internal/http/portable"
	"github.com/kmwaniki/pesa/internal/ledger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, closeRepo, err := backend.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open backend", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			slog.Error("failed to close backend", "error", err)
		}
	}()

	svc := ledger.NewService(repo,
		ledger.WithDefaultCurrency(ledger.Currency(cfg.Ledger.Currency)),
		ledger.WithNotify(func(err error) {
			slog.Error("background persistence failed", "error", err)
		}),
	)

	if err := svc.Load(ctx); err != nil {
		slog.Error("failed to load ledger", "error", err)
		os.Exit(1)
	}

	if cfg.Ledger.DeriveBalances {
		if err := svc.SetDeriveBalances(ctx, true); err != nil {
			slog.Error("failed to enable derived balances", "error", err)
			os.Exit(1)
		}
	}

	var (
		ledgerH    = ledgerHandler.NewHandler(svc)
		dashboardH = dashboardHandler.NewHandler(svc)
		portableH  = portableHandler.NewHandler(svc)
	)

	router := pesaHttp.New(ledgerH, dashboardH, portableH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr, "backend", cfg.Backend.Kind)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
