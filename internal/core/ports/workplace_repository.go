package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// WorkplaceRepository persists workplaces and resolves their membership.
type WorkplaceRepository interface {
	List(ctx context.Context) ([]*domain.Workplace, error)
	FindByID(ctx context.Context, id int64) (*domain.Workplace, error)
	// FindByName matches case-insensitively. Returns domain.ErrWorkplaceNotFound.
	FindByName(ctx context.Context, name string) (*domain.Workplace, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, w *domain.Workplace) error
	Update(ctx context.Context, w *domain.Workplace) error
	Delete(ctx context.Context, id int64) error
	// MemberIDs lists the ids of every user affiliated with the workplace.
	MemberIDs(ctx context.Context, workplaceID int64) ([]int64, error)
}
