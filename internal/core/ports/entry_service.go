package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// CreateEntryInput carries a new daily submission.
type CreateEntryInput struct {
	UserID  int64
	Metrics domain.Metrics
	// IdempotencyKey is optional; a repeated key returns the first entry.
	IdempotencyKey string
}

// CreateEntryResult wraps the stored entry.
type CreateEntryResult struct {
	Entry *domain.HealthEntry
	// Replayed is true when the Idempotency-Key matched an earlier submission.
	Replayed bool
}

type EntryService interface {
	Create(ctx context.Context, in CreateEntryInput) (*CreateEntryResult, error)
	Get(ctx context.Context, id, userID int64) (*domain.HealthEntry, error)
	List(ctx context.Context, userID int64) ([]*domain.HealthEntry, error)
	Update(ctx context.Context, id, userID int64, m domain.Metrics) error
	Delete(ctx context.Context, id, userID int64) error
}

// StatsService aggregates workplace entries for managers.
type StatsService interface {
	GetDailyStatsForWorkplace(ctx context.Context, managerID int64) ([]domain.DailyStats, error)
}
