package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"gorm.io/gorm"
)

func CreateWeightGoal(userID uint, goalType string, startWeight, targetWeight float64) (*models.WeightGoal, error) {
	switch goalType {
	case models.GoalLoseWeight, models.GoalGainWeight, models.GoalGainMuscle:
	default:
		return nil, errors.New("invalid goal type")
	}
	if startWeight <= 0 || targetWeight <= 0 {
		return nil, errors.New("weights must be positive")
	}

	goal := &models.WeightGoal{
		UserID:        userID,
		GoalType:      goalType,
		StartWeight:   startWeight,
		CurrentWeight: startWeight,
		TargetWeight:  targetWeight,
	}
	if err := config.DB.Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func ListWeightGoals(userID uint) ([]models.WeightGoal, error) {
	var goals []models.WeightGoal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// GetActiveWeightGoal returns the latest open goal, or nil when the user
// has none.
func GetActiveWeightGoal(userID uint) (*models.WeightGoal, error) {
	var goal models.WeightGoal
	err := config.DB.
		Where("user_id = ? AND completed = ?", userID, false).
		Order("created_at DESC").
		First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoalProgress records a new current weight and re-evaluates
// completion and milestones.
func UpdateGoalProgress(userID, goalID uint, currentWeight float64) (*models.WeightGoal, error) {
	var goal models.WeightGoal
	if err := config.DB.
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error; err != nil {
		return nil, err
	}

	goal.CurrentWeight = currentWeight

	// Completion is one-way: a goal never un-completes.
	if !goal.Completed && goalReached(goal.GoalType, currentWeight, goal.TargetWeight) {
		now := time.Now()
		goal.Completed = true
		goal.CompletedAt = &now
		EmitAlert(userID, "goal", fmt.Sprintf("Meta atingida! Você chegou a %.1f kg 🎉", currentWeight))
	}

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}

	// Milestones recompute from absolute progress every update, so one
	// can re-fire if weight oscillates around a multiple of 5. Kept
	// as-is; see DESIGN.md.
	if delta, ok := milestoneReached(goal.StartWeight, currentWeight); ok {
		EmitAlert(userID, "milestone", fmt.Sprintf("Marco alcançado: %.0f kg de progresso!", delta))
	}

	return &goal, nil
}

func goalReached(goalType string, current, target float64) bool {
	switch goalType {
	case models.GoalLoseWeight:
		return current <= target
	case models.GoalGainWeight, models.GoalGainMuscle:
		return current >= target
	default:
		return false
	}
}

// milestoneReached reports whether the absolute progress from the start
// weight is a positive multiple of 5 kg.
func milestoneReached(start, current float64) (float64, bool) {
	delta := math.Abs(current - start)
	if delta <= 0 {
		return 0, false
	}
	return delta, math.Mod(delta, 5) == 0
}
