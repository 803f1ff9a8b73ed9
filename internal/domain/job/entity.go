package job

import (
	"time"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/company"

	"github.com/google/uuid"
)

// Job is a posting. Company and Applications are only set when the read
// path populated them; ApplicationIDs is always set on reads.
type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	ExperienceLevel float64
	Position        string
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Company        *company.Company
	ApplicationIDs []uuid.UUID
	Applications   []application.Application
}
