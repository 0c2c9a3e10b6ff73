package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

// EntryRepository scopes every single-entry statement by owner, so a foreign
// id simply matches no row.
type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.HealthEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := entryModel{
		UserID:    e.UserID,
		Date:      domain.Day(e.Date),
		Mood:      e.Mood,
		Sleep:     e.Sleep,
		Stress:    e.Stress,
		Activity:  e.Activity,
		Nutrition: e.Nutrition,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	e.ID = m.ID
	return nil
}

func (r *EntryRepository) FindForOwner(ctx context.Context, id, userID int64) (*domain.HealthEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m entryModel
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry %d: %w", id, err)
	}
	return m.toDomain(), nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.HealthEntry, error) {
	return r.list(ctx, r.db.Where("user_id = ?", userID))
}

func (r *EntryRepository) ListByUsers(ctx context.Context, userIDs []int64) ([]*domain.HealthEntry, error) {
	if len(userIDs) == 0 {
		return []*domain.HealthEntry{}, nil
	}
	return r.list(ctx, r.db.Where("user_id IN ?", userIDs))
}

func (r *EntryRepository) list(ctx context.Context, q *gorm.DB) ([]*domain.HealthEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []entryModel
	if err := q.WithContext(ctx).Order("date, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]*domain.HealthEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *EntryRepository) UpdateMetrics(ctx context.Context, id, userID int64, m domain.Metrics) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&entryModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"mood":      m.Mood,
			"sleep":     m.Sleep,
			"stress":    m.Stress,
			"activity":  m.Activity,
			"nutrition": m.Nutrition,
		})
	if res.Error != nil {
		return fmt.Errorf("update entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *EntryRepository) DeleteForOwner(ctx context.Context, id, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&entryModel{})
	if res.Error != nil {
		return fmt.Errorf("delete entry %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
