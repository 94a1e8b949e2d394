package models

import "gorm.io/gorm"

// ExerciseLibraryEntry is a catalog exercise used for substitution suggestions.
type ExerciseLibraryEntry struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	MuscleGroup string `gorm:"index" json:"muscle_group"`
	Difficulty  string `gorm:"size:20" json:"difficulty"` // "beginner" | "intermediate" | "advanced"
	Equipment   string `json:"equipment"`
}
