// internal/reminder/reminder.go

// Package reminder sends Telegram messages about upcoming subscription payments.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/metrics"
	"finance-tracker/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Sender interface {
	Send(chatID int64, text string) error
}

type TelegramSender struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramSender(token string) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	slog.Info("Telegram bot authorized", "username", bot.Self.UserName)
	return &TelegramSender{bot: bot}, nil
}

func (s *TelegramSender) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := s.bot.Send(msg)
	return err
}

type Notifier struct {
	store  storage.ReminderStorage
	sender Sender
	window time.Duration
	now    func() time.Time
}

func NewNotifier(store storage.ReminderStorage, sender Sender, window time.Duration) *Notifier {
	return &Notifier{store: store, sender: sender, window: window, now: time.Now}
}

// Run sends one message per user with payments due between today and
// today+window. It returns the number of messages sent; a failed send is
// logged and does not stop the others.
func (n *Notifier) Run(ctx context.Context) (int, error) {
	today := n.now()
	due, err := n.store.DuePayments(ctx, today, today.Add(n.window))
	if err != nil {
		return 0, fmt.Errorf("load due payments: %w", err)
	}

	sent := 0
	for _, batch := range groupByUser(due) {
		chatID := batch[0].TelegramChatID
		if err := n.sender.Send(chatID, FormatMessage(batch)); err != nil {
			slog.Error("Failed to send reminder", "user_id", batch[0].UserID, "error", err)
			metrics.RemindersSent.WithLabelValues("failed").Inc()
			continue
		}
		metrics.RemindersSent.WithLabelValues("sent").Inc()
		sent++
	}

	slog.Info("Reminder run finished", "due", len(due), "messages", sent)
	return sent, nil
}

// groupByUser splits rows ordered by user into per-user batches.
func groupByUser(due []domain.DuePayment) [][]domain.DuePayment {
	var out [][]domain.DuePayment
	for i, d := range due {
		if i == 0 || d.UserID != due[i-1].UserID {
			out = append(out, nil)
		}
		out[len(out)-1] = append(out[len(out)-1], d)
	}
	return out
}

func FormatMessage(due []domain.DuePayment) string {
	var b strings.Builder
	b.WriteString("Upcoming payments:\n")
	for _, d := range due {
		sign := "-"
		if d.Category == domain.CategoryIncome {
			sign = "+"
		}
		fmt.Fprintf(&b, "\n%s  %s%.2f  %s / %s (%s)", d.PaymentDate, sign, d.Amount, d.EntityName, d.ServiceName, d.PayeeName)
	}
	return b.String()
}
