package repository

import (
	"context"
	"strings"

	"job-portal/internal/database"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/domain/company"

	"github.com/google/uuid"
)

const companySelect = `SELECT id, name, slug, description, website, location, logo, user_id, created_at, updated_at
FROM companies`

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO companies (id, name, slug, description, website, location, logo, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Slug, c.Description, c.Website, c.Location, c.Logo, c.UserID,
	)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		if dbpostgres.IsUniqueViolation(err) {
			return company.Company{}, company.ErrDuplicateName
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, companySelect+` WHERE id = $1`, id))
}

func (r *PostgresCompanyRepository) GetByName(ctx context.Context, name string) (company.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, companySelect+` WHERE name = $1`, strings.TrimSpace(name)))
}

func (r *PostgresCompanyRepository) GetBySlug(ctx context.Context, slug string) (company.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, companySelect+` WHERE slug = $1 ORDER BY created_at LIMIT 1`, slug))
}

func (r *PostgresCompanyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]company.Company, error) {
	rows, err := r.db.Query(ctx, companySelect+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Website, &c.Location, &c.Logo, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
