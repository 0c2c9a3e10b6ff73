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

// AdminSeed describes the optional bootstrap administrator.
type AdminSeed struct {
	Username  string
	Password  string
	Workplace string
}

// Seeder runs the idempotent startup initialisation.
type Seeder struct {
	roles      ports.RoleRepository
	users      ports.UserRepository
	workplaces ports.WorkplaceRepository
	hashCost   int
	log        zerolog.Logger
}

func NewSeeder(
	roles ports.RoleRepository,
	users ports.UserRepository,
	workplaces ports.WorkplaceRepository,
	log zerolog.Logger,
) *Seeder {
	return &Seeder{
		roles:      roles,
		users:      users,
		workplaces: workplaces,
		hashCost:   bcrypt.DefaultCost,
		log:        log,
	}
}

// SeedRoles makes sure every role of domain.AllRoles exists.
func (s *Seeder) SeedRoles(ctx context.Context) error {
	for _, name := range domain.AllRoles {
		created, err := s.roles.Ensure(ctx, name)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
		if created {
			s.log.Info().Str("role", name).Msg("role seeded")
		}
	}
	return nil
}

// SeedAdmin creates the bootstrap administrator (roles user and admin) unless
// it is unconfigured or already present. The admin's workplace is created by
// name when missing.
func (s *Seeder) SeedAdmin(ctx context.Context, seed AdminSeed) error {
	username := strings.TrimSpace(seed.Username)
	if username == "" || seed.Password == "" {
		return nil
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("seed admin: lookup user: %w", err)
	}

	workplace, err := s.ensureWorkplace(ctx, seed.Workplace)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	admin := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		WorkplaceID:  workplace.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil
		}
		return fmt.Errorf("seed admin: create user: %w", err)
	}

	for _, role := range []string{domain.RoleUser, domain.RoleAdmin} {
		if err := s.users.AssignRole(ctx, admin.ID, role); err != nil {
			return fmt.Errorf("seed admin: assign %s: %w", role, err)
		}
	}

	s.log.Info().Str("username", admin.Username).Int64("workplace_id", workplace.ID).Msg("bootstrap admin created")
	return nil
}

func (s *Seeder) ensureWorkplace(ctx context.Context, name string) (*domain.Workplace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Administration"
	}

	w, err := s.workplaces.FindByName(ctx, name)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrWorkplaceNotFound) {
		return nil, fmt.Errorf("seed admin: lookup workplace: %w", err)
	}

	w = &domain.Workplace{Name: name}
	if err := s.workplaces.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("seed admin: create workplace: %w", err)
	}
	return w, nil
}
