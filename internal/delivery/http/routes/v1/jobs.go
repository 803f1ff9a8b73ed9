package v1

import (
	"job-portal/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobHandler *handler.JobHandler, requireAuth fiber.Handler) {
	if r == nil {
		return
	}
	if jobHandler == nil || requireAuth == nil {
		return
	}

	jobHandler.RegisterRoutes(r, requireAuth)
}

func RegisterCompanies(r fiber.Router, companyHandler *handler.CompanyHandler) {
	if r == nil {
		return
	}
	if companyHandler == nil {
		return
	}

	companyHandler.RegisterRoutes(r)
}
