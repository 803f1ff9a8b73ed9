package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, body
}

func TestSuccess(t *testing.T) {
	app := fiber.New()
	app.Get("/with-message", func(c fiber.Ctx) error {
		return Success(c, fiber.StatusCreated, "done", fiber.Map{"job": fiber.Map{"title": "x"}, "success": false})
	})
	app.Get("/no-message", func(c fiber.Ctx) error {
		return Success(c, fiber.StatusOK, "", fiber.Map{"jobs": []string{}})
	})

	status, body := decode(t, app, "/with-message")
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if body["success"] != true || body["message"] != "done" || body["job"] == nil {
		t.Fatalf("unexpected body %v", body)
	}

	status, body = decode(t, app, "/no-message")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("message should be omitted, got %v", body)
	}
	if _, ok := body["jobs"]; !ok {
		t.Fatalf("jobs key missing: %v", body)
	}
}

func TestError(t *testing.T) {
	app := fiber.New()
	app.Get("/cause", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusInternalServerError, "Failed to fetch jobs.", "connection refused")
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return Error(c, fiber.StatusNotFound, "", "")
	})
	app.Get("/bogus", func(c fiber.Ctx) error {
		return Error(c, 42, "", "")
	})

	status, body := decode(t, app, "/cause")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["success"] != false || body["message"] != "Failed to fetch jobs." || body["error"] != "connection refused" {
		t.Fatalf("unexpected body %v", body)
	}

	status, body = decode(t, app, "/plain")
	if status != fiber.StatusNotFound || body["message"] != MessageNotFound {
		t.Fatalf("unexpected %d %v", status, body)
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("error should be omitted, got %v", body)
	}

	status, _ = decode(t, app, "/bogus")
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected invalid status to become 500, got %d", status)
	}
}
