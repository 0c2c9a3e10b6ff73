package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// EntryRepository persists health entries. Every single-entry operation is
// scoped to its owner: a foreign entry is indistinguishable from a missing
// one and yields domain.ErrEntryNotFound.
type EntryRepository interface {
	Create(ctx context.Context, e *domain.HealthEntry) error
	FindForOwner(ctx context.Context, id, userID int64) (*domain.HealthEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.HealthEntry, error)
	ListByUsers(ctx context.Context, userIDs []int64) ([]*domain.HealthEntry, error)
	// UpdateMetrics overwrites the five metrics of an owned entry.
	UpdateMetrics(ctx context.Context, id, userID int64, m domain.Metrics) error
	DeleteForOwner(ctx context.Context, id, userID int64) error
}
