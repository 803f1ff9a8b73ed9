package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperr "job-portal/internal/pkg/errors"
	"job-portal/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/", handler)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, body
}

func TestErrorMiddleware_DomainErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		message   string
		wantCause string
	}{
		{"invalid input", FromDomain(apperr.InvalidInput("All fields are required.", nil)), 400, "All fields are required.", ""},
		{"not found", FromDomain(apperr.NotFound("Job not found.", errors.New("no rows"))), 404, "Job not found.", ""},
		{"internal exposes cause", FromDomain(apperr.Internal("Failed to create job.", errors.New("fk violation"))), 500, "Failed to create job.", "fk violation"},
		{"plain error", errors.New("boom"), 500, "Internal server error.", "boom"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "nope", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.err
			app := newApp(func(c fiber.Ctx) error { return err })

			resp, body := do(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.StatusCode)
			}
			if body["success"] != false || body["message"] != tc.message {
				t.Fatalf("unexpected body %v", body)
			}
			cause, has := body["error"]
			if tc.wantCause == "" && has {
				t.Fatalf("error should be omitted, got %v", cause)
			}
			if tc.wantCause != "" && cause != tc.wantCause {
				t.Fatalf("expected error %q, got %v", tc.wantCause, cause)
			}
		})
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error { panic("kaboom") })

	resp, body := do(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	if body["success"] != false {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAccessLog_RequestID(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error { return c.JSON(fiber.Map{"success": true}) })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	resp, _ := do(t, app, req)
	if got := resp.Header.Get(HeaderRequestID); got != "rid-1" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	resp, _ = do(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	if _, err := uuid.Parse(resp.Header.Get(HeaderRequestID)); err != nil {
		t.Fatalf("expected generated uuid request id, got %q", resp.Header.Get(HeaderRequestID))
	}
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("job-portal", "access", "refresh", time.Minute, time.Hour)
	auth := NewAuthMiddleware(svc)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, "a@b.co")
	if err != nil {
		t.Fatalf("access: %v", err)
	}
	refresh, err := svc.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Use(auth.Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		id, ok := UserID(c)
		if !ok {
			return errors.New("missing actor")
		}
		return c.JSON(fiber.Map{"id": id.String(), "success": true})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", 401},
		{"wrong scheme", "Basic " + access, 401},
		{"refresh token", "Bearer " + refresh, 401},
		{"garbage", "Bearer nope", 401},
		{"ok", "Bearer " + access, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, body := do(t, app, req)
			if resp.StatusCode != tc.status {
				t.Fatalf("expected %d, got %d (%v)", tc.status, resp.StatusCode, body)
			}
			if tc.status == 200 && body["id"] != userID.String() {
				t.Fatalf("unexpected actor %v", body["id"])
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	if tok, ok := BearerToken("  bearer abc "); !ok || tok != "abc" {
		t.Fatalf("unexpected %q %v", tok, ok)
	}
	if _, ok := BearerToken("Bearer "); ok {
		t.Fatalf("empty token accepted")
	}
}
