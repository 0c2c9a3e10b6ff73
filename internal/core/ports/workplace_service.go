package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

type WorkplaceService interface {
	List(ctx context.Context) ([]*domain.Workplace, error)
	Get(ctx context.Context, id int64) (*domain.Workplace, error)
	Create(ctx context.Context, name string) (*domain.Workplace, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}
