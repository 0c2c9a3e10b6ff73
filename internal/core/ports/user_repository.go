package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// UserRepository persists identities and their role memberships.
type UserRepository interface {
	// FindByUsername matches case-insensitively. Returns domain.ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts the user and sets its ID. A unique-key violation on the
	// username is reported as domain.ErrDuplicateUsername.
	Create(ctx context.Context, user *domain.User) error
	Roles(ctx context.Context, userID int64) ([]string, error)
	// AssignRole is idempotent.
	AssignRole(ctx context.Context, userID int64, role string) error
}

// RoleRepository owns the role catalogue.
type RoleRepository interface {
	// Ensure creates the role when absent and reports whether it did.
	Ensure(ctx context.Context, name string) (bool, error)
}
