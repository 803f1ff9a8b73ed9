package repository

import (
	"context"
	"strings"

	"job-portal/internal/database"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

const jobSelect = `SELECT
	j.id, j.title, j.description, j.requirements, j.salary, j.location, j.job_type,
	j.experience_level, j.position, j.company_id, j.created_by, j.created_at, j.updated_at,
	c.id, c.name, c.slug, c.description, c.website, c.location, c.logo, c.user_id, c.created_at, c.updated_at,
	ARRAY(SELECT a.id::text FROM applications a WHERE a.job_id = j.id ORDER BY a.created_at)
FROM jobs j
JOIN companies c ON c.id = j.company_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, requirements, salary, location, job_type,
			experience_level, position, company_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary, j.Location, j.JobType,
		j.ExperienceLevel, j.Position, j.CompanyID, j.CreatedBy,
	)
	if err := row.Scan(&j.CreatedAt, &j.UpdatedAt); err != nil {
		return job.Job{}, err
	}
	j.ApplicationIDs = []uuid.UUID{}
	return j, nil
}

// Search matches keyword as a case-insensitive substring of title or
// description, newest first.
func (r *PostgresJobRepository) Search(ctx context.Context, keyword string, limit int) ([]job.Job, error) {
	if limit <= 0 || limit > job.SearchLimit {
		limit = job.SearchLimit
	}

	pattern := "%" + escapeLike(keyword) + "%"
	rows, err := r.db.Query(ctx,
		jobSelect+`
		 WHERE j.title ILIKE $1 OR j.description ILIKE $1
		 ORDER BY j.created_at DESC
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+`
		 WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if dbpostgres.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		jobSelect+`
		 WHERE j.created_by = $1
		 ORDER BY j.created_at DESC`,
		creatorID,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if dbpostgres.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j      job.Job
		c      company.Company
		appIDs []string
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary, &j.Location, &j.JobType,
		&j.ExperienceLevel, &j.Position, &j.CompanyID, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Website, &c.Location, &c.Logo, &c.UserID, &c.CreatedAt, &c.UpdatedAt,
		&appIDs,
	)
	if err != nil {
		return job.Job{}, err
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}

	j.ApplicationIDs = make([]uuid.UUID, 0, len(appIDs))
	for _, s := range appIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return job.Job{}, err
		}
		j.ApplicationIDs = append(j.ApplicationIDs, id)
	}
	j.Company = &c
	return j, nil
}

// escapeLike neutralises LIKE wildcards so keyword is matched literally.
func escapeLike(s string) string {
	if !strings.ContainsAny(s, `\%_`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
