package domain

import "time"

// DailyStats aggregates every entry of a workplace submitted on Date.
type DailyStats struct {
	Date             time.Time `json:"date"`
	AverageMood      float64   `json:"average_mood"`
	AverageSleep     float64   `json:"average_sleep"`
	AverageStress    float64   `json:"average_stress"`
	AverageActivity  float64   `json:"average_activity"`
	AverageNutrition float64   `json:"average_nutrition"`
	EntryCount       int       `json:"entry_count"`
}
