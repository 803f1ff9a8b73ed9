package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("company not found")
	ErrDuplicateName = errors.New("company name already registered")
)

type Company struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	Website     string
	Location    string
	Logo        string
	UserID      *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	GetBySlug(ctx context.Context, slug string) (Company, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Company, error)
}
