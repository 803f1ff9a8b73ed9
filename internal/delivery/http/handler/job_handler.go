package handler

import (
	"context"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	jobuc "job-portal/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	MsgJobCreated = "New job created successfully."
	MsgJobApplied = "Job applied successfully."
)

type JobService interface {
	Create(ctx context.Context, in jobuc.CreateInput) (job.Job, error)
	List(ctx context.Context, keyword string) ([]job.Job, error)
	GetByID(ctx context.Context, rawID string) (job.Job, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.Job, error)
}

type ApplicationService interface {
	Apply(ctx context.Context, applicantID uuid.UUID, rawJobID string) (application.Application, error)
}

type JobHandler struct {
	jobs JobService
	apps ApplicationService
}

func NewJobHandler(jobs JobService, apps ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps}
}

// RegisterRoutes mounts the job routes on r. requireAuth guards the routes
// that act on behalf of a user.
func (h *JobHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", requireAuth, h.Create)
	r.Get("/admin", requireAuth, h.ListByCreator)
	r.Get("/:id", h.GetByID)
	r.Post("/:id/apply", requireAuth, h.Apply)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	actor, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}

	var req createJobRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageInvalidPayload, err)
	}

	created, err := h.jobs.Create(c.Context(), req.toInput(actor))
	if err != nil {
		return middleware.FromDomain(err)
	}

	return response.Success(c, fiber.StatusCreated, MsgJobCreated, fiber.Map{"job": dto.NewJobResponse(created)})
}

func (h *JobHandler) List(c fiber.Ctx) error {
	items, err := h.jobs.List(c.Context(), c.Query("keyword"))
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"jobs": dto.NewJobResponses(items)})
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	j, err := h.jobs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"job": dto.NewJobResponse(j)})
}

func (h *JobHandler) ListByCreator(c fiber.Ctx) error {
	actor, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}

	items, err := h.jobs.ListByCreator(c.Context(), actor)
	if err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusOK, "", fiber.Map{"jobs": dto.NewJobResponses(items)})
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	actor, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}

	if _, err := h.apps.Apply(c.Context(), actor, c.Params("id")); err != nil {
		return middleware.FromDomain(err)
	}
	return response.Success(c, fiber.StatusCreated, MsgJobApplied, nil)
}
