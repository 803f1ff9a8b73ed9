package seeder

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/database"

	"github.com/google/uuid"
)

var ErrOwnerNotSeeded = errors.New("seed owner not found")

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults returns the demo data seeders in dependency order. Every seeder
// is idempotent.
func Defaults(adminEmail, adminPassword string) []Seeder {
	email := strings.ToLower(strings.TrimSpace(adminEmail))
	return []Seeder{
		AdminSeeder{Email: email, Password: adminPassword},
		CompaniesSeeder{OwnerEmail: email},
		JobsSeeder{OwnerEmail: email},
	}
}

func findUserID(ctx context.Context, db database.DB, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	if err != nil {
		return uuid.Nil, errors.Join(ErrOwnerNotSeeded, err)
	}
	return id, nil
}
