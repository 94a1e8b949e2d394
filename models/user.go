package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	AvatarURL     string
	HeightCm      float64
	CharacterID   string `gorm:"size:40"` // selected companion, restored on login
	IsAdmin       bool   `gorm:"default:false"`
	EmailVerified bool   `gorm:"default:false"`
	ResetToken    string
	ResetTokenExp time.Time
}
