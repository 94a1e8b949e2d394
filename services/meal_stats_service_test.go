package services

import (
	"context"
	"testing"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumMacrosTotals(t *testing.T) {
	md := &MacroData{}
	sumMacros(md, []models.Meal{
		{Protein: 30, Carbs: 50, Fat: 10, Calories: 410},
		{Protein: 25, Carbs: 40, Fat: 15, Calories: 395},
	})
	assert.Equal(t, 55.0, md.Protein)
	assert.Equal(t, 90.0, md.Carbs)
	assert.Equal(t, 25.0, md.Fat)
	assert.Equal(t, 805.0, md.Calories)
}

func TestSumMacrosEmpty(t *testing.T) {
	md := &MacroData{}
	sumMacros(md, nil)
	assert.Zero(t, md.Calories)
}

func TestWeeklyMacrosChronologicalWindow(t *testing.T) {
	// userID 0 skips the database and still builds the 7-day frame
	svc := NewMealStatsService(nil)
	week, err := svc.WeeklyMacros(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, week, 7)

	today := dayStart(time.Now())
	for i, md := range week {
		d := today.AddDate(0, 0, i-6)
		assert.Equal(t, d.Format("2006-01-02"), md.Date)
		assert.Equal(t, dayLabels[d.Weekday()], md.DayLabel)
		assert.Zero(t, md.Protein)
	}
	assert.Equal(t, today.Format("2006-01-02"), week[6].Date)
}

func TestDayLabelsPortugueseWeek(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	want := []string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}
	for i, label := range want {
		d := sunday.AddDate(0, 0, i)
		assert.Equal(t, label, dayLabels[d.Weekday()])
	}
}
