package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulsepoint/wellness-api/internal/core/domain"
	"github.com/pulsepoint/wellness-api/internal/core/ports"
)

type statsService struct {
	users      ports.UserRepository
	workplaces ports.WorkplaceRepository
	entries    ports.EntryRepository
	log        zerolog.Logger
}

// NewStatsService returns the workplace aggregation service.
func NewStatsService(
	users ports.UserRepository,
	workplaces ports.WorkplaceRepository,
	entries ports.EntryRepository,
	log zerolog.Logger,
) ports.StatsService {
	return &statsService{users: users, workplaces: workplaces, entries: entries, log: log}
}

// GetDailyStatsForWorkplace averages every entry submitted by the manager's
// workplace, one record per calendar day in ascending order. An unknown id or
// an identity without the manager role yields an empty result, never an error.
func (s *statsService) GetDailyStatsForWorkplace(ctx context.Context, managerID int64) ([]domain.DailyStats, error) {
	manager, err := s.users.FindByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return []domain.DailyStats{}, nil
		}
		return nil, fmt.Errorf("daily stats: lookup manager: %w", err)
	}

	roles, err := s.users.Roles(ctx, manager.ID)
	if err != nil {
		return nil, fmt.Errorf("daily stats: load roles: %w", err)
	}
	if !domain.Roles(roles).Has(domain.RoleManager) {
		s.log.Debug().Int64("user_id", manager.ID).Msg("daily stats requested by non-manager")
		return []domain.DailyStats{}, nil
	}

	memberIDs, err := s.workplaces.MemberIDs(ctx, manager.WorkplaceID)
	if err != nil {
		return nil, fmt.Errorf("daily stats: list members: %w", err)
	}
	if len(memberIDs) == 0 {
		return []domain.DailyStats{}, nil
	}

	entries, err := s.entries.ListByUsers(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("daily stats: list entries: %w", err)
	}

	return aggregateDaily(entries), nil
}

type dailySums struct {
	mood, sleep, stress, activity, nutrition int
	count                                    int
}

func aggregateDaily(entries []*domain.HealthEntry) []domain.DailyStats {
	byDay := make(map[int64]*dailySums)
	for _, e := range entries {
		key := domain.Day(e.Date).Unix()
		sum, ok := byDay[key]
		if !ok {
			sum = &dailySums{}
			byDay[key] = sum
		}
		sum.mood += e.Mood
		sum.sleep += e.Sleep
		sum.stress += e.Stress
		sum.activity += e.Activity
		sum.nutrition += e.Nutrition
		sum.count++
	}

	days := make([]int64, 0, len(byDay))
	for k := range byDay {
		days = append(days, k)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	out := make([]domain.DailyStats, 0, len(days))
	for _, k := range days {
		sum := byDay[k]
		n := float64(sum.count)
		out = append(out, domain.DailyStats{
			Date:             time.Unix(k, 0).UTC(),
			AverageMood:      float64(sum.mood) / n,
			AverageSleep:     float64(sum.sleep) / n,
			AverageStress:    float64(sum.stress) / n,
			AverageActivity:  float64(sum.activity) / n,
			AverageNutrition: float64(sum.nutrition) / n,
			EntryCount:       sum.count,
		})
	}
	return out
}
