package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalLoseWeight = "lose_weight"
	GoalGainWeight = "gain_weight"
	GoalGainMuscle = "gain_muscle"
)

type WeightGoal struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	GoalType      string     `gorm:"size:20;not null" json:"goal_type"`
	StartWeight   float64    `json:"start_weight"`
	CurrentWeight float64    `json:"current_weight"`
	TargetWeight  float64    `json:"target_weight"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	CompletedAt   *time.Time `json:"completed_at"`
}
