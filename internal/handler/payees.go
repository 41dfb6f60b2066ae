// internal/handler/payees.go
package handler

import (
	"context"
	"log/slog"

	"finance-tracker/internal/domain"
	val "finance-tracker/internal/validator"
)

func (h *Handler) ListPayees(ctx context.Context, userID int64) (result, error) {
	payees, err := h.store.ListPayees(ctx, userID)
	if err != nil {
		return result{}, err
	}
	if len(payees) == 0 {
		return result{}, domain.Empty("No payees found")
	}
	return fetched("Payees fetched successfully", payees), nil
}

func (h *Handler) CreatePayee(ctx context.Context, userID int64, req *CreatePayeeRequest) (result, error) {
	p := domain.Payee{
		UserID:      userID,
		EntityName:  req.EntityName,
		ServiceName: req.ServiceName,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Amount:      *req.Amount,
		Category:    category(req.Category),
	}
	if err := h.store.CreatePayee(ctx, &p); err != nil {
		return result{}, err
	}

	slog.Info("Payee created", "user_id", userID, "payee_id", p.ID, "service_id", p.ServiceID)
	return created("Payee created successfully", p), nil
}

func (h *Handler) UpdatePayee(ctx context.Context, userID int64, req *UpdatePayeeRequest) (result, error) {
	err := h.store.UpdatePayee(ctx, userID, req.ID, domain.PayeeUpdate{
		Name:        req.Name,
		EntityName:  req.EntityName,
		ServiceName: req.ServiceName,
		Phone:       req.Phone,
		Email:       req.Email,
		Amount:      req.Amount,
		Category:    val.NormalizeCategoryPtr(req.Category),
	})
	if err != nil {
		return result{}, err
	}
	return done("Payee updated successfully"), nil
}

func (h *Handler) DeletePayee(ctx context.Context, userID int64, req *IDRequest) (result, error) {
	if err := h.store.DeletePayee(ctx, userID, req.ID); err != nil {
		return result{}, err
	}

	slog.Info("Payee deleted", "user_id", userID, "payee_id", req.ID)
	return done("Payee and related subscriptions deleted successfully"), nil
}
