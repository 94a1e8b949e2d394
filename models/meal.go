package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal is one logged meal with its macro snapshot.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Name     string    `json:"name"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Calories float64   `json:"calories"`
	MealDate time.Time `gorm:"index;not null" json:"meal_date"`
}
