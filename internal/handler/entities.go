// internal/handler/entities.go
package handler

import (
	"context"
	"log/slog"

	"finance-tracker/internal/domain"
	val "finance-tracker/internal/validator"
)

func (h *Handler) ListEntities(ctx context.Context, userID int64) (result, error) {
	entities, err := h.store.ListEntities(ctx, userID)
	if err != nil {
		return result{}, err
	}
	if len(entities) == 0 {
		return result{}, domain.Empty("No entities found")
	}
	return fetched("Entities fetched successfully", entities), nil
}

func (h *Handler) CreateEntity(ctx context.Context, userID int64, req *CreateEntityRequest) (result, error) {
	e := domain.Entity{
		UserID:           userID,
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         category(req.Category),
	}
	if err := h.store.CreateEntity(ctx, &e); err != nil {
		return result{}, err
	}

	slog.Info("Entity created", "user_id", userID, "entity_id", e.ID)
	return created("Entity created successfully", e), nil
}

func (h *Handler) UpdateEntity(ctx context.Context, userID int64, req *UpdateEntityRequest) (result, error) {
	err := h.store.UpdateEntity(ctx, userID, req.ID, domain.EntityUpdate{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         val.NormalizeCategoryPtr(req.Category),
	})
	if err != nil {
		return result{}, err
	}
	return done("Entity updated successfully"), nil
}

func (h *Handler) DeleteEntity(ctx context.Context, userID int64, req *IDRequest) (result, error) {
	if err := h.store.DeleteEntity(ctx, userID, req.ID); err != nil {
		return result{}, err
	}

	slog.Info("Entity deleted", "user_id", userID, "entity_id", req.ID)
	return done("Entity and related records deleted successfully"), nil
}
