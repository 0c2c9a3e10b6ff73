package domain

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinMetric = 1
	MaxMetric = 5
)

var ErrEntryNotFound = errors.New("health entry not found")

// Metrics holds the five self-reported values of a daily submission.
type Metrics struct {
	Mood      int `json:"mood"`
	Sleep     int `json:"sleep"`
	Stress    int `json:"stress"`
	Activity  int `json:"activity"`
	Nutrition int `json:"nutrition"`
}

// Validate rejects any metric outside [MinMetric, MaxMetric], listing every
// offending field.
func (m Metrics) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"mood", m.Mood},
		{"sleep", m.Sleep},
		{"stress", m.Stress},
		{"activity", m.Activity},
		{"nutrition", m.Nutrition},
	}

	var reasons []string
	for _, f := range fields {
		if f.value < MinMetric || f.value > MaxMetric {
			reasons = append(reasons, fmt.Sprintf("%s must be between %d and %d", f.name, MinMetric, MaxMetric))
		}
	}
	if len(reasons) > 0 {
		return NewValidationError(ErrMetricOutOfRange, reasons...)
	}
	return nil
}

// HealthEntry is a single daily submission owned by one user.
type HealthEntry struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"user_id"`
	Date   time.Time `json:"date"`
	Metrics
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
