// internal/handler/handler.go
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/response"
	"finance-tracker/internal/storage"
	val "finance-tracker/internal/validator"

	"github.com/gin-gonic/gin"
)

type Store interface {
	storage.EntityStorage
	storage.ServiceStorage
	storage.PayeeStorage
	storage.SubscriptionStorage
	storage.UserStorage
	storage.Pinger
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register mounts the resource routes on r, which must already run the
// auth middleware.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/Entities", withoutBody(h.ListEntities))
	r.POST("/Entities", withBody(h.CreateEntity))
	r.PUT("/Entities", withBody(h.UpdateEntity))
	r.DELETE("/Entities", withBody(h.DeleteEntity))

	r.GET("/Services", withoutBody(h.ListServices))
	r.POST("/Services", withBody(h.CreateService))
	r.PUT("/Services", withBody(h.UpdateService))
	r.DELETE("/Services", withBody(h.DeleteService))

	r.GET("/Payees", withoutBody(h.ListPayees))
	r.POST("/Payees", withBody(h.CreatePayee))
	r.PUT("/Payees", withBody(h.UpdatePayee))
	r.DELETE("/Payees", withBody(h.DeletePayee))

	r.GET("/Subscriptions", withoutBody(h.ListSubscriptions))
	r.POST("/Subscriptions", withBody(h.CreateSubscription))
	r.PUT("/Subscriptions", withBody(h.UpdateSubscription))
	r.DELETE("/Subscriptions", withBody(h.DeleteSubscription))

	r.GET("/EditUser", withoutBody(h.GetProfile))
	r.PUT("/EditUser", withBody(h.EditUser))
	r.DELETE("/DeleteUser", withoutBody(h.DeleteUser))
}

// Health pings the store. It is mounted outside the auth group.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, response.Envelope{Message: "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "ok"})
}

// result is what an operation hands to the envelope builder.
type result struct {
	status  int
	message string
	data    any
}

func created(msg string, data any) result {
	return result{status: http.StatusCreated, message: msg, data: data}
}

func fetched(msg string, data any) result {
	return result{status: http.StatusOK, message: msg, data: data}
}

func done(msg string) result {
	return result{status: http.StatusOK, message: msg}
}

// withBody chains the request stages: subject → bind → validate → op →
// envelope. Any stage error goes straight to response.Error.
func withBody[T any](op func(ctx context.Context, userID int64, req *T) (result, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Error(c, domain.AuthMissing("Authorization header required"))
			return
		}

		var req T
		if err := bind(c, &req); err != nil {
			response.Error(c, err)
			return
		}

		res, err := op(c.Request.Context(), userID, &req)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, res.status, res.message, res.data)
	}
}

func withoutBody(op func(ctx context.Context, userID int64) (result, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Error(c, domain.AuthMissing("Authorization header required"))
			return
		}

		res, err := op(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, res.status, res.message, res.data)
	}
}

func bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Validation("Request body is required", "")
		}
		return domain.Validation("Invalid JSON", err.Error())
	}
	return val.Struct(req)
}

func category(s string) string {
	c, _ := val.NormalizeCategory(s)
	return c
}
