package job

import (
	"context"
	"errors"
	"strings"
	"time"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	apperr "job-portal/internal/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgAllFieldsRequired = "All fields are required."
	MsgInvalidNumbers    = "Salary and experience level must be valid numbers."
	MsgInvalidCompanyID  = "Invalid company id."
	MsgCreateFailed      = "Failed to create job."
	MsgNoJobs            = "No jobs found."
	MsgListFailed        = "Failed to fetch jobs."
	MsgJobNotFound       = "Job not found."
	MsgGetFailed         = "Failed to fetch job."
	MsgNoAdminJobs       = "No jobs found for this admin."
	MsgAdminListFailed   = "Failed to fetch jobs for admin."
)

type CreateInput struct {
	Title        string
	Description  string
	Requirements string
	Salary       NumericInput
	Location     string
	JobType      string
	Experience   NumericInput
	Position     string
	CompanyID    string
	CreatedBy    uuid.UUID
}

func (in CreateInput) missingRequired() bool {
	return in.Title == "" ||
		in.Description == "" ||
		in.Requirements == "" ||
		in.Salary.Empty() ||
		in.Location == "" ||
		in.JobType == "" ||
		in.Experience.Empty() ||
		in.Position == "" ||
		in.CompanyID == ""
}

type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// Notifier is told about every job that was persisted.
type Notifier interface {
	JobCreated(j job.Job)
}

type Service struct {
	jobs     job.Repository
	apps     application.Repository
	cache    SearchCache
	notifier Notifier
	logger   *zap.Logger
}

type Option func(*Service)

func WithCache(c SearchCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(jobs job.Repository, apps application.Repository, opts ...Option) *Service {
	s := &Service{jobs: jobs, apps: apps, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the input and persists a new job. Nothing is written
// unless validation passes.
func (s *Service) Create(ctx context.Context, in CreateInput) (job.Job, error) {
	if in.missingRequired() {
		return job.Job{}, apperr.InvalidInput(MsgAllFieldsRequired, nil)
	}

	salary, okSalary := ParseNumber(in.Salary.Text)
	experience, okExperience := ParseNumber(in.Experience.Text)
	if !okSalary || !okExperience {
		return job.Job{}, apperr.InvalidInput(MsgInvalidNumbers, nil)
	}

	companyID, err := uuid.Parse(strings.TrimSpace(in.CompanyID))
	if err != nil {
		return job.Job{}, apperr.InvalidInput(MsgInvalidCompanyID, err)
	}

	created, err := s.jobs.Create(ctx, job.Job{
		Title:           in.Title,
		Description:     in.Description,
		Requirements:    strings.Split(in.Requirements, ","),
		Salary:          salary,
		Location:        in.Location,
		JobType:         in.JobType,
		ExperienceLevel: experience,
		Position:        in.Position,
		CompanyID:       companyID,
		CreatedBy:       in.CreatedBy,
	})
	if err != nil {
		return job.Job{}, apperr.Internal(MsgCreateFailed, err)
	}

	s.invalidateSearches(ctx)
	if s.notifier != nil {
		s.notifier.JobCreated(created)
	}
	return created, nil
}

// List returns up to job.SearchLimit jobs whose title or description
// contains keyword, newest first.
func (s *Service) List(ctx context.Context, keyword string) ([]job.Job, error) {
	key := SearchCacheKey(keyword)
	if s.cache != nil {
		var cached []job.Job
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit && len(cached) > 0 {
			s.logger.Debug("job search cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	jobs, err := s.jobs.Search(ctx, keyword, job.SearchLimit)
	if err != nil {
		return nil, apperr.Internal(MsgListFailed, err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound(MsgNoJobs, nil)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, jobs, 0); err != nil {
			s.logger.Warn("job search cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return jobs, nil
}

// GetByID loads one job with its company and applications populated. An id
// that is not a uuid cannot name a job and is reported as not found.
func (s *Service) GetByID(ctx context.Context, rawID string) (job.Job, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return job.Job{}, apperr.NotFound(MsgJobNotFound, err)
	}

	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, apperr.NotFound(MsgJobNotFound, err)
		}
		return job.Job{}, apperr.Internal(MsgGetFailed, err)
	}

	apps, err := s.apps.ListByJobID(ctx, j.ID)
	if err != nil {
		return job.Job{}, apperr.Internal(MsgGetFailed, err)
	}
	j.Applications = apps
	return j, nil
}

// ListByCreator returns every job created by creatorID, newest first.
func (s *Service) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.Job, error) {
	jobs, err := s.jobs.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, apperr.Internal(MsgAdminListFailed, err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound(MsgNoAdminJobs, nil)
	}
	return jobs, nil
}

func (s *Service) invalidateSearches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, SearchCachePattern); err != nil {
		s.logger.Warn("job search cache invalidation failed", zap.Error(err))
	}
}
