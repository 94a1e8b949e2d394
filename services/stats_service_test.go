package services

import (
	"context"
	"testing"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestSumWorkoutsTreatsNilCaloriesAsZero(t *testing.T) {
	rows := []models.WorkoutHistory{
		{CaloriesBurned: fptr(100), DurationSeconds: 1800},
		{CaloriesBurned: nil, DurationSeconds: 600},
		{CaloriesBurned: fptr(200), DurationSeconds: 1200},
	}
	count, cals, dur := sumWorkouts(rows)
	assert.Equal(t, 3, count)
	assert.Equal(t, 300.0, cals)
	assert.Equal(t, 3600, dur)
}

func TestRankExercisesTopNWithTies(t *testing.T) {
	var rows []models.ExerciseHistory
	add := func(name string, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, models.ExerciseHistory{ExerciseName: name})
		}
	}
	add("A", 5)
	add("B", 5)
	add("C", 3)

	ranked := rankExercises(rows, 10)
	require.Len(t, ranked, 3)

	// A and B may come in either order; C must be last
	assert.Equal(t, "C", ranked[2].ExerciseName)
	assert.Equal(t, 3, ranked[2].Count)
	assert.ElementsMatch(t,
		[]string{"A", "B"},
		[]string{ranked[0].ExerciseName, ranked[1].ExerciseName},
	)
}

func TestRankExercisesTruncates(t *testing.T) {
	var rows []models.ExerciseHistory
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, n := range names {
		for j := 0; j <= i; j++ {
			rows = append(rows, models.ExerciseHistory{ExerciseName: n})
		}
	}
	ranked := rankExercises(rows, 10)
	assert.Len(t, ranked, 10)
	assert.Equal(t, "l", ranked[0].ExerciseName)
}

func TestBuildProgressSeriesFiltersAndSorts(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []models.ExerciseHistory{
		{ExerciseName: "supino", Weight: fptr(60), CompletedAt: base.AddDate(0, 0, 2)},
		{ExerciseName: "supino", Weight: nil, CompletedAt: base.AddDate(0, 0, 1)},
		{ExerciseName: "supino", Weight: fptr(55), CompletedAt: base},
	}
	series := buildProgressSeries(rows, 5)
	require.Len(t, series, 1)
	require.Len(t, series[0].Points, 2) // nil weight dropped
	assert.Equal(t, 55.0, series[0].Points[0].Weight)
	assert.Equal(t, 60.0, series[0].Points[1].Weight)
	assert.True(t, series[0].Points[0].CompletedAt.Before(series[0].Points[1].CompletedAt))
}

func TestBuildMuscleActivityAggregatesByCanonicalTag(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.ExerciseHistory{
		{MuscleGroup: "Peitoral", CompletedAt: now.AddDate(0, 0, -1)},
		{MuscleGroup: "peito", CompletedAt: now.AddDate(0, 0, -5)},
		{MuscleGroup: "Costas", CompletedAt: now.AddDate(0, 0, -8)},
	}
	acts := buildMuscleActivity(rows, now)
	require.Len(t, acts, 2)

	// sorted by canonical tag: back before chest
	assert.Equal(t, "back", acts[0].MuscleGroup)
	assert.Equal(t, 1, acts[0].WorkoutCount)
	assert.Equal(t, 0, acts[0].Intensity)

	assert.Equal(t, "chest", acts[1].MuscleGroup)
	assert.Equal(t, 2, acts[1].WorkoutCount)
	assert.Equal(t, now.AddDate(0, 0, -1), acts[1].LastTrainedAt)
	assert.Equal(t, 1, acts[1].DaysSinceTraining)
	assert.Equal(t, 3, acts[1].Intensity)
}

func TestIntensityTierBoundaries(t *testing.T) {
	assert.Equal(t, 3, intensityTier(0))
	assert.Equal(t, 3, intensityTier(2))
	assert.Equal(t, 2, intensityTier(3))
	assert.Equal(t, 2, intensityTier(4))
	assert.Equal(t, 1, intensityTier(5))
	assert.Equal(t, 1, intensityTier(7))
	assert.Equal(t, 0, intensityTier(8))
}

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, 0, PercentageChange(0, 0))
	assert.Equal(t, 100, PercentageChange(10, 0))
	assert.Equal(t, 50, PercentageChange(150, 100))
	assert.Equal(t, -50, PercentageChange(50, 100))
	assert.Equal(t, 33, PercentageChange(4, 3))
}

func TestStatsWithoutUserShortCircuit(t *testing.T) {
	svc := NewStatsService(nil)
	ctx := context.Background()

	daily, err := svc.DailyStats(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, daily.WorkoutCount)

	weekly, err := svc.WeeklyStats(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, weekly.WorkoutCount)

	top, err := svc.TopExercises(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	acts, err := svc.MuscleActivityMap(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, acts)
}
