package handler

import (
	"context"
	"time"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "Database unavailable.", err)
		}
	}
	return response.Success(c, fiber.StatusOK, "ok", nil)
}
