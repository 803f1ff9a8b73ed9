package ws

import (
	"context"
	"net/http"

	"job-portal/internal/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	ctx    context.Context
	hub    *Hub
	jobs   JobLister
	logger *zap.Logger
}

// NewHandler serves job sessions. ctx bounds the lifetime of the listings
// sessions run; cancel it on shutdown.
func NewHandler(ctx context.Context, hub *Hub, jobs JobLister, l *zap.Logger) *Handler {
	return &Handler{ctx: ctx, hub: hub, jobs: jobs, logger: logger.OrNop(l)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleJobsWS)
}

func (h *Handler) HandleJobsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.jobs == nil {
		return fiber.ErrServiceUnavailable
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("ws upgrade failed", zap.Error(err))
			return
		}

		client := NewClient(h.ctx, h.hub, conn, h.jobs)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})

	return fiberHandler(c)
}
