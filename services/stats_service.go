package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// ---------- Summaries ----------

type DailyStats struct {
	Date            string  `json:"date"`
	WorkoutCount    int     `json:"workout_count"`
	CaloriesBurned  float64 `json:"calories_burned"`
	DurationSeconds int     `json:"duration_seconds"`
}

type WeeklyStats struct {
	From             string  `json:"from"`
	To               string  `json:"to"`
	WorkoutCount     int     `json:"workout_count"`
	CaloriesBurned   float64 `json:"calories_burned"`
	DurationSeconds  int     `json:"duration_seconds"`
	WorkoutChangePct int     `json:"workout_change_pct"` // vs the previous 7 days
	CalorieChangePct int     `json:"calorie_change_pct"`
}

type TotalStats struct {
	WorkoutCount    int     `json:"workout_count"`
	CaloriesBurned  float64 `json:"calories_burned"`
	DurationSeconds int     `json:"duration_seconds"`
}

type ExerciseFrequency struct {
	ExerciseName string `json:"exercise_name"`
	Count        int    `json:"count"`
}

type ProgressPoint struct {
	Weight      float64   `json:"weight"`
	CompletedAt time.Time `json:"completed_at"`
}

type ExerciseProgress struct {
	ExerciseName string          `json:"exercise_name"`
	Points       []ProgressPoint `json:"points"`
}

type MuscleActivity struct {
	MuscleGroup       string    `json:"muscle_group"` // canonical tag
	LastTrainedAt     time.Time `json:"last_trained_at"`
	WorkoutCount      int       `json:"workout_count"`
	DaysSinceTraining int       `json:"days_since_training"`
	Intensity         int       `json:"intensity"` // 0..3
}

const (
	frequencyLookbackDays = 90
	muscleLookbackDays    = 30
	topExercises          = 10
	topProgressSeries     = 5
)

func (s *StatsService) DailyStats(ctx context.Context, userID uint) (*DailyStats, error) {
	out := &DailyStats{Date: time.Now().Format("2006-01-02")}
	if userID == 0 {
		return out, nil
	}
	start := dayStart(time.Now())
	rows, err := s.workoutsBetween(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	count, cals, dur := sumWorkouts(rows)
	out.WorkoutCount, out.CaloriesBurned, out.DurationSeconds = count, cals, dur
	return out, nil
}

func (s *StatsService) WeeklyStats(ctx context.Context, userID uint) (*WeeklyStats, error) {
	now := time.Now()
	from := dayStart(now).AddDate(0, 0, -7)
	out := &WeeklyStats{
		From: from.Format("2006-01-02"),
		To:   now.Format("2006-01-02"),
	}
	if userID == 0 {
		return out, nil
	}

	rows, err := s.workoutsBetween(ctx, userID, from, dayStart(now).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	prevRows, err := s.workoutsBetween(ctx, userID, from.AddDate(0, 0, -7), from)
	if err != nil {
		return nil, err
	}

	count, cals, dur := sumWorkouts(rows)
	prevCount, prevCals, _ := sumWorkouts(prevRows)

	out.WorkoutCount, out.CaloriesBurned, out.DurationSeconds = count, cals, dur
	out.WorkoutChangePct = PercentageChange(float64(count), float64(prevCount))
	out.CalorieChangePct = PercentageChange(cals, prevCals)
	return out, nil
}

func (s *StatsService) TotalStats(ctx context.Context, userID uint) (*TotalStats, error) {
	out := &TotalStats{}
	if userID == 0 {
		return out, nil
	}
	var rows []models.WorkoutHistory
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out.WorkoutCount, out.CaloriesBurned, out.DurationSeconds = sumWorkouts(rows)
	return out, nil
}

// TopExercises ranks the user's most performed exercises over the last
// 90 days. Ties between equal counts carry no documented order.
func (s *StatsService) TopExercises(ctx context.Context, userID uint) ([]ExerciseFrequency, error) {
	if userID == 0 {
		return []ExerciseFrequency{}, nil
	}
	rows, err := s.exercisesSince(ctx, userID, frequencyLookbackDays)
	if err != nil {
		return nil, err
	}
	return rankExercises(rows, topExercises), nil
}

// ProgressSeries returns the per-exercise weight series for the top 5
// most frequent exercises, restricted to rows that carry a weight.
func (s *StatsService) ProgressSeries(ctx context.Context, userID uint) ([]ExerciseProgress, error) {
	if userID == 0 {
		return []ExerciseProgress{}, nil
	}
	rows, err := s.exercisesSince(ctx, userID, frequencyLookbackDays)
	if err != nil {
		return nil, err
	}
	return buildProgressSeries(rows, topProgressSeries), nil
}

// MuscleActivityMap rolls up the last 30 days of exercise history into
// one entry per canonical muscle group.
func (s *StatsService) MuscleActivityMap(ctx context.Context, userID uint) ([]MuscleActivity, error) {
	if userID == 0 {
		return []MuscleActivity{}, nil
	}
	rows, err := s.exercisesSince(ctx, userID, muscleLookbackDays)
	if err != nil {
		return nil, err
	}
	return buildMuscleActivity(rows, time.Now()), nil
}

// ---------- reducers ----------

func sumWorkouts(rows []models.WorkoutHistory) (count int, calories float64, duration int) {
	for _, w := range rows {
		count++
		if w.CaloriesBurned != nil {
			calories += *w.CaloriesBurned
		}
		duration += w.DurationSeconds
	}
	return count, calories, duration
}

func rankExercises(rows []models.ExerciseHistory, limit int) []ExerciseFrequency {
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.ExerciseName]++
	}
	out := make([]ExerciseFrequency, 0, len(counts))
	for name, n := range counts {
		out = append(out, ExerciseFrequency{ExerciseName: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func buildProgressSeries(rows []models.ExerciseHistory, limit int) []ExerciseProgress {
	top := rankExercises(rows, limit)

	byName := map[string][]ProgressPoint{}
	for _, r := range rows {
		if r.Weight == nil {
			continue
		}
		byName[r.ExerciseName] = append(byName[r.ExerciseName], ProgressPoint{
			Weight:      *r.Weight,
			CompletedAt: r.CompletedAt,
		})
	}

	out := make([]ExerciseProgress, 0, len(top))
	for _, f := range top {
		points := byName[f.ExerciseName]
		sort.Slice(points, func(i, j int) bool {
			return points[i].CompletedAt.Before(points[j].CompletedAt)
		})
		out = append(out, ExerciseProgress{ExerciseName: f.ExerciseName, Points: points})
	}
	return out
}

func buildMuscleActivity(rows []models.ExerciseHistory, now time.Time) []MuscleActivity {
	byTag := map[string]*MuscleActivity{}
	for _, r := range rows {
		tag := NormalizeMuscleGroup(r.MuscleGroup)
		act, ok := byTag[tag]
		if !ok {
			act = &MuscleActivity{MuscleGroup: tag}
			byTag[tag] = act
		}
		act.WorkoutCount++
		if r.CompletedAt.After(act.LastTrainedAt) {
			act.LastTrainedAt = r.CompletedAt
		}
	}

	out := make([]MuscleActivity, 0, len(byTag))
	for _, act := range byTag {
		act.DaysSinceTraining = int(now.Sub(act.LastTrainedAt).Hours() / 24)
		act.Intensity = intensityTier(act.DaysSinceTraining)
		out = append(out, *act)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MuscleGroup < out[j].MuscleGroup })
	return out
}

// intensityTier maps days-since-last-trained onto a 0..3 display level.
func intensityTier(daysSince int) int {
	switch {
	case daysSince <= 2:
		return 3
	case daysSince <= 4:
		return 2
	case daysSince <= 7:
		return 1
	default:
		return 0
	}
}

// PercentageChange returns the rounded percent change from previous to
// current. A jump from zero to anything positive counts as 100%.
func PercentageChange(current, previous float64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round((current - previous) / previous * 100))
}

// ---------- internals ----------

func (s *StatsService) workoutsBetween(ctx context.Context, userID uint, from, to time.Time) ([]models.WorkoutHistory, error) {
	var rows []models.WorkoutHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, from, to).
		Find(&rows).Error
	return rows, err
}

func (s *StatsService) exercisesSince(ctx context.Context, userID uint, days int) ([]models.ExerciseHistory, error) {
	since := dayStart(time.Now()).AddDate(0, 0, -days)
	var rows []models.ExerciseHistory
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed_at >= ?", userID, since).
		Order("completed_at ASC").
		Find(&rows).Error
	return rows, err
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
