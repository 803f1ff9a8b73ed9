package handler

import (
	"job-portal/internal/domain/filter"
	"job-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type FilterHandler struct{}

func NewFilterHandler() *FilterHandler {
	return &FilterHandler{}
}

func (h *FilterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
}

func (h *FilterHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"filters": filter.Taxonomy()})
}
