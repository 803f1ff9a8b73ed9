package dto

import (
	"time"

	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

// JobResponse is the wire form of a job. Company is a CompanyResponse when
// populated and the bare id otherwise; Applications likewise holds either
// ApplicationResponse values or ids.
type JobResponse struct {
	ID              uuid.UUID `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          float64   `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel float64   `json:"experienceLevel"`
	Position        string    `json:"position"`
	Company         any       `json:"company"`
	CreatedBy       uuid.UUID `json:"created_by"`
	Applications    any       `json:"applications"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	res := JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		Company:         j.CompanyID,
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if res.Requirements == nil {
		res.Requirements = []string{}
	}
	if j.Company != nil {
		res.Company = NewCompanyResponse(*j.Company)
	}

	if j.Applications != nil {
		apps := make([]ApplicationResponse, 0, len(j.Applications))
		for _, a := range j.Applications {
			apps = append(apps, NewApplicationResponse(a))
		}
		res.Applications = apps
	} else {
		ids := make([]uuid.UUID, 0, len(j.ApplicationIDs))
		ids = append(ids, j.ApplicationIDs...)
		res.Applications = ids
	}
	return res
}

func NewJobResponses(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, NewJobResponse(j))
	}
	return out
}
