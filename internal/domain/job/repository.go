package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// SearchLimit caps keyword listings.
const SearchLimit = 20

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	Search(ctx context.Context, keyword string, limit int) ([]Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Job, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
