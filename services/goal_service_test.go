package services

import (
	"testing"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"github.com/stretchr/testify/assert"
)

func TestGoalReachedLoseWeight(t *testing.T) {
	assert.False(t, goalReached(models.GoalLoseWeight, 85, 80))
	assert.True(t, goalReached(models.GoalLoseWeight, 80, 80))
	assert.True(t, goalReached(models.GoalLoseWeight, 79.5, 80))
}

func TestGoalReachedGainWeight(t *testing.T) {
	assert.False(t, goalReached(models.GoalGainWeight, 70, 75))
	assert.True(t, goalReached(models.GoalGainWeight, 75, 75))
	assert.True(t, goalReached(models.GoalGainWeight, 76, 75))
}

func TestGoalReachedGainMuscle(t *testing.T) {
	assert.True(t, goalReached(models.GoalGainMuscle, 82, 80))
	assert.False(t, goalReached(models.GoalGainMuscle, 78, 80))
}

func TestGoalReachedUnknownType(t *testing.T) {
	assert.False(t, goalReached("manter_peso", 80, 80))
}

func TestMilestoneReached(t *testing.T) {
	delta, ok := milestoneReached(90, 85)
	assert.True(t, ok)
	assert.Equal(t, 5.0, delta)

	delta, ok = milestoneReached(90, 80)
	assert.True(t, ok)
	assert.Equal(t, 10.0, delta)

	// gaining counts too, progress is absolute
	delta, ok = milestoneReached(70, 75)
	assert.True(t, ok)
	assert.Equal(t, 5.0, delta)

	_, ok = milestoneReached(90, 87.5)
	assert.False(t, ok)

	_, ok = milestoneReached(90, 90)
	assert.False(t, ok)
}
