// internal/handler/users.go
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"finance-tracker/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetProfile(ctx context.Context, userID int64) (result, error) {
	u, err := h.store.GetUser(ctx, userID)
	if err != nil {
		return result{}, err
	}
	return fetched("User fetched successfully", u), nil
}

func (h *Handler) EditUser(ctx context.Context, userID int64, req *EditUserRequest) (result, error) {
	if req.empty() {
		return result{}, domain.Validation("At least one field is required",
			"username, name, email, phone, password or telegram_chat_id")
	}

	upd := domain.UserUpdate{
		Username:       req.Username,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return result{}, fmt.Errorf("hash password: %w", err)
		}
		s := string(hash)
		upd.PasswordHash = &s
	}

	if err := h.store.UpdateUser(ctx, userID, upd); err != nil {
		return result{}, err
	}

	slog.Info("User updated", "user_id", userID, "password_changed", req.Password != nil)
	return done("User updated successfully"), nil
}

func (h *Handler) DeleteUser(ctx context.Context, userID int64) (result, error) {
	if err := h.store.DeleteUser(ctx, userID); err != nil {
		return result{}, err
	}

	slog.Info("User deleted", "user_id", userID)
	return done("User and all related records deleted successfully"), nil
}
