package models

import (
	"time"

	"gorm.io/gorm"
)

// ExerciseHistory is one performed set/exercise inside a workout.
type ExerciseHistory struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	ExerciseName string    `gorm:"not null" json:"exercise_name"`
	MuscleGroup  string    `json:"muscle_group"`
	Weight       *float64  `json:"weight"` // kg; nil for bodyweight entries
	CompletedAt  time.Time `gorm:"index;not null" json:"completed_at"`
}
