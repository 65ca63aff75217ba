package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spendlens/spendlens/internal/auth"
	authStore "github.com/spendlens/spendlens/internal/auth/store"
	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/database"
	spendHttp "github.com/spendlens/spendlens/internal/http"
	authHandler "github.com/spendlens/spendlens/internal/http/auth"
	txHandler "github.com/spendlens/spendlens/internal/http/transaction"
	"github.com/spendlens/spendlens/internal/transaction"
	txStore "github.com/spendlens/spendlens/internal/transaction/store"
)

func main() {
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

	var (
		authService        = auth.NewService(authStore.New(db), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		transactionService = transaction.NewService(txStore.New(db))
	)

	var (
		authH = authHandler.NewHandler(authService)
		txH   = txHandler.NewHandler(transactionService)
	)

	router := spendHttp.New(authService, authH, txH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
