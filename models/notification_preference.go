package models

import "gorm.io/gorm"

// NotificationPreference stores each user's reminder schedule.
// Times are "HH:MM" in UTC; WorkoutDays is a comma list of weekday
// numbers (0=Sunday); MealTimes is a comma list of "HH:MM".
type NotificationPreference struct {
	gorm.Model
	UserID             uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	WorkoutEnabled     bool   `gorm:"default:false" json:"workout_enabled"`
	WorkoutTime        string `gorm:"size:5" json:"workout_time"`
	WorkoutDays        string `json:"workout_days"`
	MealEnabled        bool   `gorm:"default:false" json:"meal_enabled"`
	MealTimes          string `json:"meal_times"`
	MotivationEnabled  bool   `gorm:"default:false" json:"motivation_enabled"`
	MotivationTime     string `gorm:"size:5" json:"motivation_time"`
}
