// internal/handler/subscriptions.go
package handler

import (
	"context"
	"log/slog"

	"finance-tracker/internal/domain"
	val "finance-tracker/internal/validator"
)

func (h *Handler) ListSubscriptions(ctx context.Context, userID int64) (result, error) {
	subs, err := h.store.ListSubscriptions(ctx, userID)
	if err != nil {
		return result{}, err
	}
	if len(subs) == 0 {
		return result{}, domain.Empty("No subscriptions found")
	}
	return fetched("Subscriptions fetched successfully", subs), nil
}

func (h *Handler) CreateSubscription(ctx context.Context, userID int64, req *CreateSubscriptionRequest) (result, error) {
	// YYYY-MM-DD compares correctly as a string
	if req.EndDate != nil && *req.EndDate < req.StartDate {
		return result{}, domain.Validation("Invalid input", "end_date must not precede start_date")
	}

	sub := domain.Subscription{
		UserID:      userID,
		EntityName:  req.EntityName,
		ServiceName: req.ServiceName,
		PayeeName:   req.PayeeName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PaymentDate: req.PaymentDate,
		Amount:      *req.Amount,
		Category:    category(req.Category),
	}
	if err := h.store.CreateSubscription(ctx, &sub); err != nil {
		return result{}, err
	}

	slog.Info("Subscription created", "user_id", userID, "subscription_id", sub.ID, "payee_id", sub.PayeeID)
	return created("Subscription created successfully", sub), nil
}

func (h *Handler) UpdateSubscription(ctx context.Context, userID int64, req *UpdateSubscriptionRequest) (result, error) {
	if req.StartDate != nil && req.EndDate != nil && *req.EndDate < *req.StartDate {
		return result{}, domain.Validation("Invalid input", "end_date must not precede start_date")
	}

	err := h.store.UpdateSubscription(ctx, userID, req.ID, domain.SubscriptionUpdate{
		EntityName:  req.EntityName,
		ServiceName: req.ServiceName,
		PayeeName:   req.PayeeName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		PaymentDate: req.PaymentDate,
		Amount:      req.Amount,
		Category:    val.NormalizeCategoryPtr(req.Category),
	})
	if err != nil {
		return result{}, err
	}
	return done("Subscription updated successfully"), nil
}

func (h *Handler) DeleteSubscription(ctx context.Context, userID int64, req *IDRequest) (result, error) {
	if err := h.store.DeleteSubscription(ctx, userID, req.ID); err != nil {
		return result{}, err
	}
	return done("Subscription deleted successfully"), nil
}
