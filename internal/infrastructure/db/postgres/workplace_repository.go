package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
)

type WorkplaceRepository struct {
	db *gorm.DB
}

func NewWorkplaceRepository(db *gorm.DB) *WorkplaceRepository {
	return &WorkplaceRepository{db: db}
}

func (r *WorkplaceRepository) List(ctx context.Context) ([]*domain.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []workplaceModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list workplaces: %w", err)
	}
	out := make([]*domain.Workplace, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *WorkplaceRepository) FindByID(ctx context.Context, id int64) (*domain.Workplace, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *WorkplaceRepository) FindByName(ctx context.Context, name string) (*domain.Workplace, error) {
	return r.findOne(ctx, "name_lower = ?", strings.ToLower(name))
}

func (r *WorkplaceRepository) findOne(ctx context.Context, query string, arg any) (*domain.Workplace, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m workplaceModel
	if err := r.db.WithContext(ctx).Where(query, arg).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkplaceNotFound
		}
		return nil, fmt.Errorf("find workplace: %w", err)
	}
	return m.toDomain(), nil
}

func (r *WorkplaceRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&workplaceModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count workplace %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *WorkplaceRepository) Create(ctx context.Context, w *domain.Workplace) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	m := workplaceModel{Name: w.Name, NameLower: strings.ToLower(w.Name)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrWorkplaceNameTaken
		}
		return fmt.Errorf("insert workplace: %w", err)
	}
	w.ID = m.ID
	return nil
}

func (r *WorkplaceRepository) Update(ctx context.Context, w *domain.Workplace) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).
		Model(&workplaceModel{}).
		Where("id = ?", w.ID).
		Updates(map[string]any{"name": w.Name, "name_lower": strings.ToLower(w.Name)})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrWorkplaceNameTaken
		}
		return fmt.Errorf("update workplace %d: %w", w.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrWorkplaceNotFound
	}
	return nil
}

func (r *WorkplaceRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&workplaceModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete workplace %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrWorkplaceNotFound
	}
	return nil
}

func (r *WorkplaceRepository) MemberIDs(ctx context.Context, workplaceID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("workplace_id = ?", workplaceID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list members of workplace %d: %w", workplaceID, err)
	}
	return ids, nil
}
