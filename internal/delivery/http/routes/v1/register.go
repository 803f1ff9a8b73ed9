package v1

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. RequireAuth guards the
// routes that act for a user.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Jobs        *handler.JobHandler
	Companies   *handler.CompanyHandler
	Filters     *handler.FilterHandler
	WS          *ws.Handler
	RequireAuth fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Filters != nil {
		h.Filters.RegisterRoutes(r.Group("/filters"))
	}
	if h.WS != nil {
		h.WS.RegisterRoutes(r.Group("/ws"))
	}

	if h.RequireAuth == nil {
		return
	}

	RegisterJobs(r.Group("/jobs"), h.Jobs, h.RequireAuth)
	RegisterUsers(r.Group("/users", h.RequireAuth), h.Users)
	RegisterCompanies(r.Group("/companies", h.RequireAuth), h.Companies)
}
