// internal/handler/services.go
package handler

import (
	"context"
	"log/slog"

	"finance-tracker/internal/domain"
	val "finance-tracker/internal/validator"
)

func (h *Handler) ListServices(ctx context.Context, userID int64) (result, error) {
	services, err := h.store.ListServices(ctx, userID)
	if err != nil {
		return result{}, err
	}
	if len(services) == 0 {
		return result{}, domain.Empty("No services found")
	}
	return fetched("Services fetched successfully", services), nil
}

func (h *Handler) CreateService(ctx context.Context, userID int64, req *CreateServiceRequest) (result, error) {
	sv := domain.Service{
		UserID:      userID,
		EntityName:  req.EntityName,
		Name:        req.Name,
		Description: req.Description,
		MinDuration: *req.MinDuration,
		Amount:      *req.Amount,
		Category:    category(req.Category),
	}
	if err := h.store.CreateService(ctx, &sv); err != nil {
		return result{}, err
	}

	slog.Info("Service created", "user_id", userID, "service_id", sv.ID, "entity_id", sv.EntityID)
	return created("Service created successfully", sv), nil
}

func (h *Handler) UpdateService(ctx context.Context, userID int64, req *UpdateServiceRequest) (result, error) {
	err := h.store.UpdateService(ctx, userID, req.ID, domain.ServiceUpdate{
		Name:        req.Name,
		EntityName:  req.EntityName,
		Description: req.Description,
		MinDuration: req.MinDuration,
		Amount:      req.Amount,
		Category:    val.NormalizeCategoryPtr(req.Category),
	})
	if err != nil {
		return result{}, err
	}
	return done("Service updated successfully"), nil
}

func (h *Handler) DeleteService(ctx context.Context, userID int64, req *IDRequest) (result, error) {
	if err := h.store.DeleteService(ctx, userID, req.ID); err != nil {
		return result{}, err
	}

	slog.Info("Service deleted", "user_id", userID, "service_id", req.ID)
	return done("Service and related records deleted successfully"), nil
}
