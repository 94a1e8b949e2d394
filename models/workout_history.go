package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutHistory is one completed workout session.
type WorkoutHistory struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	WorkoutName     string    `gorm:"not null" json:"workout_name"`
	CompletedAt     time.Time `gorm:"index;not null" json:"completed_at"`
	DurationSeconds int       `json:"duration_seconds"`
	CaloriesBurned  *float64  `json:"calories_burned"` // nil when the session had no estimate
}
