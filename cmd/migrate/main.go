// cmd/migrate/main.go
package main

import (
	"database/sql"
	"log/slog"
	"os"

	"finance-tracker/internal/config"
	"finance-tracker/internal/logging"
	"finance-tracker/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	cfg := config.MustLoad()
	logging.Setup(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("Applying migrations")

	if err := migrations.Up(db); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migrations applied")
}
