package models

import (
	"time"

	"gorm.io/gorm"
)

// BodyPhoto references an image stored in S3; PhotoURL is the public URL,
// StorageKey is kept so cleanup can delete the object later.
type BodyPhoto struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	PhotoURL   string    `gorm:"not null" json:"photo_url"`
	StorageKey string    `json:"-"`
	TakenAt    time.Time `gorm:"index;not null" json:"taken_at"`
}
