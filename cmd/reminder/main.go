// cmd/reminder/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/config"
	"finance-tracker/internal/logging"
	"finance-tracker/internal/reminder"
	"finance-tracker/internal/storage/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.MustLoad()
	logging.Setup(cfg.LogLevel)

	if cfg.TelegramToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sender, err := reminder.NewTelegramSender(cfg.TelegramToken)
	if err != nil {
		slog.Error("Failed to start Telegram sender", "error", err)
		os.Exit(1)
	}
	notifier := reminder.NewNotifier(postgres.NewStorage(pool), sender, cfg.ReminderWindow)

	c := cron.New()
	_, err = c.AddFunc(cfg.ReminderSchedule, func() {
		if _, err := notifier.Run(ctx); err != nil {
			slog.Error("Reminder run failed", "error", err)
		}
	})
	if err != nil {
		slog.Error("Invalid REMINDER_SCHEDULE", "schedule", cfg.ReminderSchedule, "error", err)
		os.Exit(1)
	}

	c.Start()
	slog.Info("Reminder scheduler started", "schedule", cfg.ReminderSchedule, "window", cfg.ReminderWindow)

	<-ctx.Done()
	slog.Info("Stopping scheduler")
	<-c.Stop().Done()
}
