package application

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	apperr "job-portal/internal/pkg/errors"
	jobuc "job-portal/internal/usecase/job"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgJobIDRequired  = "Job id is required."
	MsgJobNotFound    = "Job not found"
	MsgAlreadyApplied = "You have already applied for this jobs"
	MsgApplyFailed    = "Failed to apply for job."
)

type Service struct {
	jobs   job.Repository
	apps   application.Repository
	cache  jobuc.SearchCache
	logger *zap.Logger
}

type Option func(*Service)

// WithCache sets the job search cache that must be cleared when a job gains
// an application.
func WithCache(c jobuc.SearchCache) Option {
	return func(s *Service) { s.cache = c }
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

func (s *Service) Apply(ctx context.Context, applicantID uuid.UUID, rawJobID string) (application.Application, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(rawJobID))
	if err != nil {
		return application.Application{}, apperr.InvalidInput(MsgJobIDRequired, err)
	}

	exists, err := s.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return application.Application{}, apperr.Internal(MsgApplyFailed, err)
	}
	if !exists {
		return application.Application{}, apperr.NotFound(MsgJobNotFound, nil)
	}

	created, err := s.apps.Create(ctx, application.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      application.StatusPending,
	})
	if err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return application.Application{}, apperr.InvalidInput(MsgAlreadyApplied, err)
		}
		return application.Application{}, apperr.Internal(MsgApplyFailed, err)
	}

	s.invalidateSearches(ctx)
	return created, nil
}

func (s *Service) invalidateSearches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, jobuc.SearchCachePattern); err != nil {
		s.logger.Warn("job search cache invalidation failed", zap.Error(err))
	}
}
