package ports

import (
	"context"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// RegisterInput carries the registration form.
type RegisterInput struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	WorkplaceID int64
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token    string
	Username string
	Roles    []string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	GetCurrentSession(ctx context.Context, p domain.Principal) (*domain.Profile, error)
	GrantRole(ctx context.Context, userID int64, role string) error
}

// TokenIssuer mints bearer tokens for an identity and its roles.
type TokenIssuer interface {
	Issue(user *domain.User, roles []string) (string, error)
}
