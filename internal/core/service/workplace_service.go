package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type workplaceService struct {
	repo ports.WorkplaceRepository
	log  zerolog.Logger
}

func NewWorkplaceService(repo ports.WorkplaceRepository, log zerolog.Logger) ports.WorkplaceService {
	return &workplaceService{repo: repo, log: log}
}

func (s *workplaceService) List(ctx context.Context) ([]*domain.Workplace, error) {
	return s.repo.List(ctx)
}

func (s *workplaceService) Get(ctx context.Context, id int64) (*domain.Workplace, error) {
	return s.repo.FindByID(ctx, id)
}

// Create adds a workplace. Names are unique regardless of case.
func (s *workplaceService) Create(ctx context.Context, name string) (*domain.Workplace, error) {
	name, err := s.checkName(ctx, name, 0)
	if err != nil {
		return nil, err
	}

	w := &domain.Workplace{Name: name}
	if err := s.repo.Create(ctx, w); err != nil {
		if errors.Is(err, domain.ErrWorkplaceNameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create workplace: %w", err)
	}

	s.log.Info().Int64("workplace_id", w.ID).Str("name", w.Name).Msg("workplace created")
	return w, nil
}

func (s *workplaceService) Update(ctx context.Context, id int64, name string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	name, err := s.checkName(ctx, name, id)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &domain.Workplace{ID: id, Name: name}); err != nil {
		if errors.Is(err, domain.ErrWorkplaceNameTaken) || errors.Is(err, domain.ErrWorkplaceNotFound) {
			return err
		}
		return fmt.Errorf("update workplace %d: %w", id, err)
	}
	return nil
}

// Delete removes an empty workplace. Identities always need a workplace, so
// one that still has members is refused with domain.ErrWorkplaceInUse.
func (s *workplaceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	members, err := s.repo.MemberIDs(ctx, id)
	if err != nil {
		return fmt.Errorf("delete workplace %d: list members: %w", id, err)
	}
	if len(members) > 0 {
		return domain.ErrWorkplaceInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrWorkplaceNotFound) {
			return err
		}
		return fmt.Errorf("delete workplace %d: %w", id, err)
	}

	s.log.Info().Int64("workplace_id", id).Msg("workplace deleted")
	return nil
}

// checkName trims name and rejects it when empty or already used by a
// workplace other than self.
func (s *workplaceService) checkName(ctx context.Context, name string, self int64) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrInvalidWorkplaceName
	}

	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		if existing.ID != self {
			return "", domain.ErrWorkplaceNameTaken
		}
	case !errors.Is(err, domain.ErrWorkplaceNotFound):
		return "", fmt.Errorf("lookup workplace name: %w", err)
	}
	return name, nil
}
