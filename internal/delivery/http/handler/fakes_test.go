package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const testUserHeader = "X-Test-User"

// memJobRepo keeps jobs in insertion order; reads return newest first.
type memJobRepo struct {
	mu        sync.Mutex
	jobs      []job.Job
	createErr error
}

func (r *memJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return job.Job{}, r.createErr
	}
	j.ID = uuid.New()
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	r.jobs = append(r.jobs, j)
	return j, nil
}

func (r *memJobRepo) newestFirst(keep func(job.Job) bool) []job.Job {
	out := make([]job.Job, 0)
	for i := len(r.jobs) - 1; i >= 0; i-- {
		if keep(r.jobs[i]) {
			out = append(out, r.jobs[i])
		}
	}
	return out
}

func (r *memJobRepo) Search(_ context.Context, keyword string, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kw := strings.ToLower(keyword)
	out := r.newestFirst(func(j job.Job) bool {
		return strings.Contains(strings.ToLower(j.Title), kw) || strings.Contains(strings.ToLower(j.Description), kw)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (r *memJobRepo) ListByCreator(_ context.Context, creatorID uuid.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.newestFirst(func(j job.Job) bool { return j.CreatedBy == creatorID }), nil
}

func (r *memJobRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.GetByID(ctx, id)
	return err == nil, nil
}

func (r *memJobRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.jobs)
}

type memApplicationRepo struct {
	mu   sync.Mutex
	apps []application.Application
}

func (r *memApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return application.Application{}, application.ErrAlreadyApplied
		}
	}
	a.ID = uuid.New()
	r.apps = append(r.apps, a)
	return a, nil
}

func (r *memApplicationRepo) ListByJobID(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]application.Application, 0)
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeAuth authenticates requests carrying testUserHeader.
func fakeAuth(c fiber.Ctx) error {
	raw := c.Get(testUserHeader)
	id, err := uuid.Parse(raw)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, middleware.MsgUnauthenticated, nil)
	}
	c.Locals(middleware.CtxUserIDKey, id)
	return c.Next()
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, userID *uuid.UUID) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if userID != nil {
		req.Header.Set(testUserHeader, userID.String())
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}

func doBearer(t *testing.T, app *fiber.App, path, token string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}
