package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	v1 "job-portal/internal/delivery/http/routes/v1"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container

	stop context.CancelFunc
}

// New builds the HTTP application on a wired container and starts the
// websocket hub.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	go c.Hub.Run(ctx)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		v1.Handlers{
			Auth:        handler.NewAuthHandler(c.Auth),
			Users:       handler.NewUserHandler(c.Users),
			Jobs:        handler.NewJobHandler(c.Jobs, c.Applications),
			Companies:   handler.NewCompanyHandler(c.Companies),
			Filters:     handler.NewFilterHandler(),
			WS:          ws.NewHandler(ctx, c.Hub, c.Jobs, c.Logger.Named("ws")),
			RequireAuth: middleware.NewAuthMiddleware(c.JWT).Middleware(),
		},
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c, stop: cancel}
}

// Bootstrap connects dependencies, applies migrations when MIGRATIONS_DIR is
// set, and returns the app with its cleanup function.
func Bootstrap(cfg config.Config, l *zap.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := NewContainer(ctx, cfg, l)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	if strings.TrimSpace(cfg.App.MigrationsDir) != "" {
		if err := c.Migrate(ctx); err != nil {
			_ = c.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	if err := c.Wire(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("wire: %w", err)
	}

	a := New(c)
	cleanup := func() error {
		a.stop()
		return c.Close()
	}
	return a, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, l *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(l).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(l.Named("http")).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
