package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

// AuthService implements registration, login and session resolution.
type AuthService struct {
	users      ports.UserRepository
	workplaces ports.WorkplaceRepository
	tokens     ports.TokenIssuer
	policy     domain.PasswordPolicy
	hashCost   int
	log        zerolog.Logger

	// dummyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// AuthOption customises an AuthService.
type AuthOption func(*AuthService)

// WithHashCost overrides the bcrypt cost (tests use bcrypt.MinCost).
func WithHashCost(cost int) AuthOption {
	return func(s *AuthService) { s.hashCost = cost }
}

// WithPasswordPolicy overrides domain.DefaultPasswordPolicy.
func WithPasswordPolicy(p domain.PasswordPolicy) AuthOption {
	return func(s *AuthService) { s.policy = p }
}

func NewAuthService(
	users ports.UserRepository,
	workplaces ports.WorkplaceRepository,
	tokens ports.TokenIssuer,
	log zerolog.Logger,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		users:      users,
		workplaces: workplaces,
		tokens:     tokens,
		policy:     domain.DefaultPasswordPolicy,
		hashCost:   bcrypt.DefaultCost,
		log:        log,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pulsepoint-dummy-password"), s.hashCost)
	return s
}

// Register validates the form in order (duplicate username, workplace,
// password policy), stopping at the first failing check, then creates the
// identity with the default role.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.NewValidationError(domain.ErrInvalidUsername)
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return domain.NewValidationError(domain.ErrDuplicateUsername)
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("register: lookup username: %w", err)
	}

	ok, err := s.workplaces.Exists(ctx, in.WorkplaceID)
	if err != nil {
		return fmt.Errorf("register: lookup workplace: %w", err)
	}
	if !ok {
		return domain.NewValidationError(domain.ErrInvalidWorkplace)
	}

	if violations := s.policy.Check(in.Password); len(violations) > 0 {
		return domain.NewValidationError(domain.ErrWeakPassword, violations...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		WorkplaceID:  in.WorkplaceID,
		CreatedAt:    time.Now().UTC(),
	}

	// The store's unique index is the authoritative duplicate check; a
	// concurrent registration that slipped past the lookup lands here.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return domain.NewValidationError(domain.ErrDuplicateUsername)
		}
		return fmt.Errorf("register: create user: %w", err)
	}

	// No transaction spans the two writes: on failure the identity stays
	// persisted without a role.
	if err := s.users.AssignRole(ctx, user.ID, domain.RoleUser); err != nil {
		s.log.Error().Err(err).Int64("user_id", user.ID).Msg("default role assignment failed after user creation")
		return fmt.Errorf("register: assign default role: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Int64("workplace_id", user.WorkplaceID).Msg("user registered")
	return nil
}

// Login verifies the credentials and mints a token. Unknown usernames and
// wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			s.log.Debug().Msg("login failed: unknown username")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Debug().Int64("user_id", user.ID).Msg("login failed: password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	roles, err := s.users.Roles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: load roles: %w", err)
	}

	token, err := s.tokens.Issue(user, roles)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &ports.LoginResult{Token: token, Username: user.Username, Roles: roles}, nil
}

// GetCurrentSession resolves the identity a verified token refers to. A token
// for a since-deleted identity yields domain.ErrUserNotFound.
func (s *AuthService) GetCurrentSession(ctx context.Context, p domain.Principal) (*domain.Profile, error) {
	user, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	roles, err := s.users.Roles(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("current session: load roles: %w", err)
	}

	return &domain.Profile{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		WorkplaceID: user.WorkplaceID,
		Roles:       roles,
	}, nil
}

// GrantRole adds role to the user's memberships. Granting a held role is a
// no-op.
func (s *AuthService) GrantRole(ctx context.Context, userID int64, role string) error {
	if !domain.IsKnownRole(role) {
		return domain.ErrUnknownRole
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.AssignRole(ctx, userID, role); err != nil {
		return fmt.Errorf("grant role: %w", err)
	}

	s.log.Info().Int64("user_id", userID).Str("role", role).Msg("role granted")
	return nil
}
