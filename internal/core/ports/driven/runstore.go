package driven

import (
	"context"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// RunStore persists solve attempts.
type RunStore interface {
	// Save records one run. Records are never updated.
	Save(ctx context.Context, run *domain.RunRecord) error

	// List returns runs matching filter, most recent first.
	List(ctx context.Context, filter domain.RunFilter) ([]domain.RunRecord, error)

	// Prune keeps the most recent keep runs per day and deletes the rest.
	Prune(ctx context.Context, keep int) error

	// Close releases the store.
	Close() error
}
