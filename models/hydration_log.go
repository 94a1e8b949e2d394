package models

import (
	"time"

	"gorm.io/gorm"
)

type HydrationLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	AmountML float64   `json:"amount_ml"`
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
}
