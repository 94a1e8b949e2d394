package models

import "gorm.io/gorm"

// CustomFood is a user-authored food with per-100g macros.
type CustomFood struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null" json:"user_id"`
	Name     string  `gorm:"not null" json:"name"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}
