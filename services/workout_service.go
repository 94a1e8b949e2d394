package services

import (
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
)

type CompletedExercise struct {
	ExerciseName string   `json:"exercise_name"`
	MuscleGroup  string   `json:"muscle_group"`
	Weight       *float64 `json:"weight"`
}

// LogWorkout records a completed session plus its per-exercise history
// rows. Each insert is independent; a failed exercise row does not roll
// back the session.
func LogWorkout(userID uint, name string, completedAt time.Time, durationSeconds int, calories *float64, exercises []CompletedExercise) (*models.WorkoutHistory, error) {
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	w := &models.WorkoutHistory{
		UserID:          userID,
		WorkoutName:     name,
		CompletedAt:     completedAt,
		DurationSeconds: durationSeconds,
		CaloriesBurned:  calories,
	}
	if err := config.DB.Create(w).Error; err != nil {
		return nil, err
	}

	for _, ex := range exercises {
		row := &models.ExerciseHistory{
			UserID:       userID,
			ExerciseName: ex.ExerciseName,
			MuscleGroup:  ex.MuscleGroup,
			Weight:       ex.Weight,
			CompletedAt:  completedAt,
		}
		if err := config.DB.Create(row).Error; err != nil {
			return nil, err
		}
	}
	return w, nil
}

func ListWorkouts(userID uint, limit int) ([]models.WorkoutHistory, error) {
	var rows []models.WorkoutHistory
	q := config.DB.
		Where("user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func DeleteWorkout(userID, workoutID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.WorkoutHistory{}).Error
}

// HasWorkoutToday reports whether the user already logged a workout for
// the current calendar day. Used by the reminder scheduler to skip
// redundant workout nudges.
func HasWorkoutToday(userID uint, now time.Time) (bool, error) {
	start := dayStart(now)
	var count int64
	err := config.DB.Model(&models.WorkoutHistory{}).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}
