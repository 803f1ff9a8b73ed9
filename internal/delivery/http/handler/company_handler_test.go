package handler

import (
	"context"
	"strings"
	"sync"
	"testing"

	"job-portal/internal/domain/company"
	companyuc "job-portal/internal/usecase/company"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type memCompanyRepo struct {
	mu    sync.Mutex
	items []company.Company
}

func (r *memCompanyRepo) Create(_ context.Context, c company.Company) (company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = uuid.New()
	r.items = append(r.items, c)
	return c, nil
}

func (r *memCompanyRepo) find(match func(company.Company) bool) (company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.items {
		if match(c) {
			return c, nil
		}
	}
	return company.Company{}, company.ErrNotFound
}

func (r *memCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	return r.find(func(c company.Company) bool { return c.ID == id })
}

func (r *memCompanyRepo) GetByName(_ context.Context, name string) (company.Company, error) {
	return r.find(func(c company.Company) bool { return strings.EqualFold(c.Name, name) })
}

func (r *memCompanyRepo) GetBySlug(_ context.Context, s string) (company.Company, error) {
	return r.find(func(c company.Company) bool { return c.Slug == s })
}

func (r *memCompanyRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]company.Company, 0)
	for _, c := range r.items {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func newCompanyApp() *fiber.App {
	app := newTestApp()
	h := NewCompanyHandler(companyuc.NewService(&memCompanyRepo{}))
	h.RegisterRoutes(app.Group("/api/v1/companies", fakeAuth))
	return app
}

func TestCompanyHandler_RegisterAndFetch(t *testing.T) {
	app := newCompanyApp()
	owner := uuid.New()

	status, res := doJSON(t, app, fiber.MethodGet, "/api/v1/companies", nil, &owner)
	if status != fiber.StatusNotFound || res["message"] != companyuc.MsgNoneFound {
		t.Fatalf("expected 404, got %d (%v)", status, res)
	}

	status, res = doJSON(t, app, fiber.MethodPost, "/api/v1/companies", map[string]any{"companyName": "Acme"}, &owner)
	if status != fiber.StatusCreated || res["message"] != MsgCompanyRegistered {
		t.Fatalf("expected 201, got %d (%v)", status, res)
	}
	id := res["company"].(map[string]any)["_id"].(string)

	status, res = doJSON(t, app, fiber.MethodPost, "/api/v1/companies", map[string]any{"companyName": "Acme"}, &owner)
	if status != fiber.StatusBadRequest || res["message"] != companyuc.MsgDuplicate {
		t.Fatalf("expected duplicate 400, got %d (%v)", status, res)
	}

	status, res = doJSON(t, app, fiber.MethodPost, "/api/v1/companies", map[string]any{"companyName": "  "}, &owner)
	if status != fiber.StatusBadRequest || res["message"] != companyuc.MsgNameRequired {
		t.Fatalf("expected name required 400, got %d (%v)", status, res)
	}

	status, res = doJSON(t, app, fiber.MethodGet, "/api/v1/companies/"+id, nil, &owner)
	if status != fiber.StatusOK || res["company"].(map[string]any)["name"] != "Acme" {
		t.Fatalf("expected 200, got %d (%v)", status, res)
	}

	status, res = doJSON(t, app, fiber.MethodGet, "/api/v1/companies/acme", nil, &owner)
	if status != fiber.StatusOK || res["company"].(map[string]any)["slug"] != "acme" {
		t.Fatalf("expected lookup by slug, got %d (%v)", status, res)
	}

	status, res = doJSON(t, app, fiber.MethodGet, "/api/v1/companies", nil, &owner)
	if status != fiber.StatusOK || len(res["companies"].([]any)) != 1 {
		t.Fatalf("expected one company, got %d (%v)", status, res)
	}

	status, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/companies", nil, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
}
