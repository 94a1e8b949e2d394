package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyMeasurement is one dated set of tape/scale measurements (cm / kg).
type BodyMeasurement struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	WeightKg   float64   `json:"weight_kg"`
	ChestCm    float64   `json:"chest_cm"`
	WaistCm    float64   `json:"waist_cm"`
	HipsCm     float64   `json:"hips_cm"`
	ArmsCm     float64   `json:"arms_cm"`
	ThighsCm   float64   `json:"thighs_cm"`
	MeasuredAt time.Time `gorm:"index;not null" json:"measured_at"`
}
