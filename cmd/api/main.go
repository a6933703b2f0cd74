package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stauntonj/rently/internal/config"
	"github.com/stauntonj/rently/internal/database"
	rentlyHttp "github.com/stauntonj/rently/internal/http"
	leaseHandler "github.com/stauntonj/rently/internal/http/lease"
	paymentHandler "github.com/stauntonj/rently/internal/http/payment"
	reconcileHandler "github.com/stauntonj/rently/internal/http/reconcile"
	"github.com/stauntonj/rently/internal/importer"
	"github.com/stauntonj/rently/internal/lease"
	leaseStore "github.com/stauntonj/rently/internal/lease/store"
	"github.com/stauntonj/rently/internal/payment"
	paymentStore "github.com/stauntonj/rently/internal/payment/store"
	"github.com/stauntonj/rently/internal/reconcile"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		paymentService   = payment.NewService(paymentStore.New(db))
		leaseService     = lease.NewService(leaseStore.New(db), paymentService)
		importService    = importer.NewService()
		reconcileService = reconcile.NewService(paymentService)
	)

	var (
		leaseH     = leaseHandler.NewHandler(leaseService, paymentService)
		paymentH   = paymentHandler.NewHandler(paymentService)
		reconcileH = reconcileHandler.NewHandler(importService, reconcileService)
	)

	router := rentlyHttp.New(cfg.Auth.JWTSecret, leaseH, paymentH, reconcileH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
