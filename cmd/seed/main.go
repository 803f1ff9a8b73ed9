package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"job-portal/internal/app"
	"job-portal/internal/config"
	"job-portal/internal/database/seeder"
	"job-portal/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	adminEmail := flag.String("admin-email", "admin@jobportal.local", "email of the account owning demo data")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "password of the demo account (min 8 chars)")
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply pending migrations first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.App.MigrationsDir == "" {
		cfg.App.MigrationsDir = "migrations"
	}

	l, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, l)
	if err != nil {
		l.Fatal("failed to init container", zap.Error(err))
	}
	defer func() {
		_ = c.Close()
	}()

	if !*skipMigrations {
		if err := c.Migrate(ctx); err != nil {
			l.Fatal("migration failed", zap.Error(err))
		}
	}

	r := seeder.Runner{Seeders: seeder.Defaults(*adminEmail, *adminPassword), Logger: l}
	if err := r.Run(ctx, c.DB); err != nil {
		l.Fatal("seeding failed", zap.Error(err))
	}
	l.Info("seeding complete", zap.String("admin_email", *adminEmail))
}
