package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

// IdempotencyStore remembers which entry a (user, Idempotency-Key) pair
// created (Redis).
type IdempotencyStore interface {
	// Lookup returns the remembered entry id, or 0 when the key is unseen.
	Lookup(ctx context.Context, userID int64, key string) (int64, error)
	Remember(ctx context.Context, userID int64, key string, entryID int64) error
}

type entryService struct {
	repo  ports.EntryRepository
	idem  IdempotencyStore
	log   zerolog.Logger
	today func() time.Time
}

// NewEntryService returns an EntryService. idem may be nil, in which case
// Idempotency-Key headers are ignored.
func NewEntryService(repo ports.EntryRepository, idem IdempotencyStore, log zerolog.Logger) ports.EntryService {
	return &entryService{
		repo:  repo,
		idem:  idem,
		log:   log,
		today: func() time.Time { return domain.Day(time.Now()) },
	}
}

// Create stores a new submission dated today. A repeated idempotency key
// returns the entry created by the first request.
func (s *entryService) Create(ctx context.Context, in ports.CreateEntryInput) (*ports.CreateEntryResult, error) {
	if err := in.Metrics.Validate(); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if replayed := s.replay(ctx, in); replayed != nil {
			return &ports.CreateEntryResult{Entry: replayed, Replayed: true}, nil
		}
	}

	entry := &domain.HealthEntry{
		UserID:  in.UserID,
		Date:    s.today(),
		Metrics: in.Metrics,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).Int64("user_id", in.UserID).Msg("failed to create health entry")
		return nil, fmt.Errorf("create entry: %w", err)
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, in.UserID, in.IdempotencyKey, entry.ID); err != nil {
			s.log.Warn().Err(err).Int64("entry_id", entry.ID).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().Int64("entry_id", entry.ID).Int64("user_id", in.UserID).Msg("health entry created")
	return &ports.CreateEntryResult{Entry: entry}, nil
}

// replay returns the entry a previous request with the same key created, or
// nil. Store errors are logged and treated as a miss.
func (s *entryService) replay(ctx context.Context, in ports.CreateEntryInput) *domain.HealthEntry {
	id, err := s.idem.Lookup(ctx, in.UserID, in.IdempotencyKey)
	if err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", in.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		return nil
	}
	if id == 0 {
		return nil
	}

	existing, err := s.repo.FindForOwner(ctx, id, in.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			s.log.Warn().Err(err).Int64("entry_id", id).Msg("idempotent replay lookup failed")
		}
		return nil
	}

	s.log.Info().Str("idempotency_key", in.IdempotencyKey).Int64("entry_id", existing.ID).Msg("idempotent replay")
	return existing
}

func (s *entryService) Get(ctx context.Context, id, userID int64) (*domain.HealthEntry, error) {
	return s.repo.FindForOwner(ctx, id, userID)
}

func (s *entryService) List(ctx context.Context, userID int64) ([]*domain.HealthEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Update overwrites the five metrics of an entry the caller owns. The date
// and owner never change.
func (s *entryService) Update(ctx context.Context, id, userID int64, m domain.Metrics) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateMetrics(ctx, id, userID, m); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return err
		}
		return fmt.Errorf("update entry %d: %w", id, err)
	}
	return nil
}

func (s *entryService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeleteForOwner(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return err
		}
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	s.log.Info().Int64("entry_id", id).Int64("user_id", userID).Msg("health entry deleted")
	return nil
}
