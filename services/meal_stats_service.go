package services

import (
	"context"
	"sync"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"gorm.io/gorm"
)

type MealStatsService struct{ db *gorm.DB }

func NewMealStatsService(db *gorm.DB) *MealStatsService { return &MealStatsService{db: db} }

// MacroData is one day's macro totals.
type MacroData struct {
	Date     string  `json:"date"`
	DayLabel string  `json:"day_label"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

var dayLabels = [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}

func (s *MealStatsService) DailyMacros(ctx context.Context, userID uint) (*MacroData, error) {
	day := dayStart(time.Now())
	out := &MacroData{Date: day.Format("2006-01-02"), DayLabel: dayLabels[day.Weekday()]}
	if userID == 0 {
		return out, nil
	}
	md, err := s.macrosForDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	return md, nil
}

// WeeklyMacros returns the last 7 days (today included) in chronological
// order. One bounded query per day, fired concurrently and joined; only
// the final slice order is deterministic.
func (s *MealStatsService) WeeklyMacros(ctx context.Context, userID uint) ([]MacroData, error) {
	today := dayStart(time.Now())
	out := make([]MacroData, 7)
	if userID == 0 {
		for i := 0; i < 7; i++ {
			d := today.AddDate(0, 0, i-6)
			out[i] = MacroData{Date: d.Format("2006-01-02"), DayLabel: dayLabels[d.Weekday()]}
		}
		return out, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, 7)
	for i := 0; i < 7; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := today.AddDate(0, 0, i-6)
			md, err := s.macrosForDay(ctx, userID, d)
			if err != nil {
				errs[i] = err
				return
			}
			out[i] = *md
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *MealStatsService) macrosForDay(ctx context.Context, userID uint, day time.Time) (*MacroData, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, day, day.AddDate(0, 0, 1)).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	md := &MacroData{Date: day.Format("2006-01-02"), DayLabel: dayLabels[day.Weekday()]}
	sumMacros(md, meals)
	return md, nil
}

func sumMacros(md *MacroData, meals []models.Meal) {
	for _, m := range meals {
		md.Protein += m.Protein
		md.Carbs += m.Carbs
		md.Fat += m.Fat
		md.Calories += m.Calories
	}
}
