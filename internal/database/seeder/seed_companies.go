package seeder

import (
	"context"
	"fmt"

	"job-portal/internal/database"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type demoCompany struct {
	Name        string
	Description string
	Website     string
	Location    string
}

var demoCompanies = []demoCompany{
	{Name: "Hòa Bình Construction", Description: "Xây Dựng dân dụng và công nghiệp.", Website: "https://hbc.example", Location: "Hồ Chí Minh"},
	{Name: "FPT Software", Description: "Kĩ Thuật Phần Mềm và dịch vụ Công Nghệ.", Website: "https://fpt.example", Location: "Hà Nội"},
	{Name: "Sài Gòn Hospitality", Description: "Nhà Hàng và Khách Sạn cao cấp.", Website: "https://sgh.example", Location: "Đà Nẵng"},
}

type CompaniesSeeder struct {
	OwnerEmail string
}

func (CompaniesSeeder) Name() string { return "companies" }

func (s CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "companies", "id", "name", "slug", "description", "website", "location", "user_id"); err != nil {
		return err
	}

	ownerID, err := findUserID(ctx, db, s.OwnerEmail)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range demoCompanies {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO companies (id, name, slug, description, website, location, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO NOTHING`,
			uuid.New(), c.Name, slug.Make(c.Name), c.Description, c.Website, c.Location, ownerID,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
