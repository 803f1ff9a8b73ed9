package company

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/company"
	apperr "job-portal/internal/pkg/errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
)

const (
	MsgNameRequired   = "Company name is required."
	MsgDuplicate      = "You can't register same company."
	MsgRegisterFailed = "Failed to register company."
	MsgNotFound       = "Company not found."
	MsgNoneFound      = "Companies not found."
	MsgFetchFailed    = "Failed to fetch company."
)

type RegisterInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	Logo        string
	OwnerID     uuid.UUID
}

type Service struct {
	companies company.Repository
	policy    *bluemonday.Policy
}

func NewService(companies company.Repository) *Service {
	return &Service{companies: companies, policy: bluemonday.StrictPolicy()}
}

// clean strips markup from user supplied text.
func (s *Service) clean(v string) string {
	return strings.TrimSpace(s.policy.Sanitize(v))
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (company.Company, error) {
	name := s.clean(in.Name)
	if name == "" {
		return company.Company{}, apperr.InvalidInput(MsgNameRequired, nil)
	}

	_, err := s.companies.GetByName(ctx, name)
	switch {
	case err == nil:
		return company.Company{}, apperr.InvalidInput(MsgDuplicate, nil)
	case !errors.Is(err, company.ErrNotFound):
		return company.Company{}, apperr.Internal(MsgRegisterFailed, err)
	}

	owner := in.OwnerID
	created, err := s.companies.Create(ctx, company.Company{
		Name:        name,
		Slug:        slug.Make(name),
		Description: s.clean(in.Description),
		Website:     s.clean(in.Website),
		Location:    s.clean(in.Location),
		Logo:        s.clean(in.Logo),
		UserID:      &owner,
	})
	if err != nil {
		if errors.Is(err, company.ErrDuplicateName) {
			return company.Company{}, apperr.InvalidInput(MsgDuplicate, err)
		}
		return company.Company{}, apperr.Internal(MsgRegisterFailed, err)
	}
	return created, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error) {
	items, err := s.companies.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(MsgFetchFailed, err)
	}
	if len(items) == 0 {
		return nil, apperr.NotFound(MsgNoneFound, nil)
	}
	return items, nil
}

// GetByID loads a company by uuid. Any other value is treated as a slug.
func (s *Service) GetByID(ctx context.Context, rawID string) (company.Company, error) {
	rawID = strings.TrimSpace(rawID)

	var (
		c   company.Company
		err error
	)
	if id, parseErr := uuid.Parse(rawID); parseErr == nil {
		c, err = s.companies.GetByID(ctx, id)
	} else {
		c, err = s.companies.GetBySlug(ctx, slug.Make(rawID))
	}
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, apperr.NotFound(MsgNotFound, err)
		}
		return company.Company{}, apperr.Internal(MsgFetchFailed, err)
	}
	return c, nil
}
