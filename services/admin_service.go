package services

import (
	"context"
	"sync"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"gorm.io/gorm"
)

type AdminService struct{ db *gorm.DB }

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

type AdminStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalWorkouts int64 `json:"total_workouts"`
	TotalMeals    int64 `json:"total_meals"`
	ActiveUsers   int   `json:"active_users"`
}

// Stats runs the count queries concurrently and joins before building
// the response. "Active" means a workout or a meal in the last 7 days;
// the union of the two identity sets is preserved from the legacy
// behavior rather than collapsed into one query.
func (s *AdminService) Stats(ctx context.Context) (*AdminStats, error) {
	out := &AdminStats{}
	since := dayStart(time.Now()).AddDate(0, 0, -7)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		firstErr     error
		workoutUsers []uint
		mealUsers    []uint
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&out.TotalUsers).Error; err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.db.WithContext(ctx).Model(&models.WorkoutHistory{}).Count(&out.TotalWorkouts).Error; err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.db.WithContext(ctx).Model(&models.Meal{}).Count(&out.TotalMeals).Error; err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.db.WithContext(ctx).Model(&models.WorkoutHistory{}).
			Where("completed_at >= ?", since).
			Distinct().Pluck("user_id", &workoutUsers).Error; err != nil {
			fail(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.db.WithContext(ctx).Model(&models.Meal{}).
			Where("meal_date >= ?", since).
			Distinct().Pluck("user_id", &mealUsers).Error; err != nil {
			fail(err)
		}
	}()
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	out.ActiveUsers = unionSize(workoutUsers, mealUsers)
	return out, nil
}

func unionSize(a, b []uint) int {
	set := make(map[uint]struct{}, len(a)+len(b))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		set[id] = struct{}{}
	}
	return len(set)
}
