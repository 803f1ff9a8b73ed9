package handler

import (
	"context"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/company"
	"job-portal/internal/pkg/response"
	companyuc "job-portal/internal/usecase/company"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const MsgCompanyRegistered = "Company registered successfully."

type CompanyService interface {
	Register(ctx context.Context, in companyuc.RegisterInput) (company.Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error)
	GetByID(ctx context.Context, rawID string) (company.Company, error)
}

type CompanyHandler struct {
	svc CompanyService
}

type registerCompanyRequest struct {
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Logo        string `json:"logo"`
}

func NewCompanyHandler(svc CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Register)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
}

func (h *CompanyHandler) Register(c fiber.Ctx) error {
	actor, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}

	var req registerCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidPayload, err)
	}

	created, err := h.svc.Register(c.Context(), companyuc.RegisterInput{
		Name:        req.CompanyName,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        req.Logo,
		OwnerID:     actor,
	})
	if err != nil {
		return middleware.FromDomain(err)
	}

	return response.Success(c, fiber.StatusCreated, MsgCompanyRegistered, fiber.Map{"company": dto.NewCompanyResponse(created)})
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	actor, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}

	items, err := h.svc.ListByOwner(c.Context(), actor)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"companies": dto.NewCompanyResponses(items)})
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	item, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"company": dto.NewCompanyResponse(item)})
}
