package services

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReminderService struct{ db *gorm.DB }

func NewReminderService(db *gorm.DB) *ReminderService { return &ReminderService{db: db} }

type ReminderRunResult struct {
	Message string `json:"message"`
	Checked int    `json:"checked"`
	Sent    int    `json:"sent"`
}

var motivationalMessages = []string{
	"Hoje é um ótimo dia para treinar! 💪",
	"Cada treino te deixa mais perto da sua meta.",
	"Constância vence talento. Bora!",
	"Seu corpo agradece cada gota de suor.",
	"Não pare agora, o resultado está chegando!",
	"Disciplina é escolher entre o que você quer agora e o que você quer mais.",
}

// Run is invoked by the scheduler endpoint. It walks every stored
// preference row and matches the current UTC time-of-day and weekday
// against each user's schedules.
func (s *ReminderService) Run(now time.Time) (*ReminderRunResult, error) {
	now = now.UTC()

	var prefs []models.NotificationPreference
	if err := s.db.Find(&prefs).Error; err != nil {
		return nil, err
	}

	sent := 0
	for _, pref := range prefs {
		if pref.WorkoutEnabled && matchesClock(pref.WorkoutTime, now) && matchesWeekday(pref.WorkoutDays, now.Weekday()) {
			has, err := HasWorkoutToday(pref.UserID, now)
			if err != nil {
				logrus.WithError(err).WithField("user_id", pref.UserID).Warn("workout lookup failed, skipping reminder")
			} else if !has {
				EmitAlert(pref.UserID, "reminder", "Hora do treino! Seu personagem está esperando. 🏋️")
				sent++
			}
		}

		if pref.MealEnabled && matchesAnyClock(pref.MealTimes, now) {
			EmitAlert(pref.UserID, "reminder", "Não esqueça de registrar sua refeição. 🍽️")
			sent++
		}

		if pref.MotivationEnabled && matchesClock(pref.MotivationTime, now) {
			msg := motivationalMessages[rand.Intn(len(motivationalMessages))]
			EmitAlert(pref.UserID, "reminder", msg)
			sent++
		}
	}

	return &ReminderRunResult{
		Message: fmt.Sprintf("reminder sweep complete at %s UTC", now.Format("15:04")),
		Checked: len(prefs),
		Sent:    sent,
	}, nil
}

// matchesClock compares an "HH:MM" schedule against the current minute.
func matchesClock(hhmm string, now time.Time) bool {
	hhmm = strings.TrimSpace(hhmm)
	if hhmm == "" {
		return false
	}
	return now.Format("15:04") == hhmm
}

func matchesAnyClock(csv string, now time.Time) bool {
	for _, part := range strings.Split(csv, ",") {
		if matchesClock(part, now) {
			return true
		}
	}
	return false
}

// matchesWeekday checks a comma list of weekday numbers (0=Sunday).
// An empty list means every day.
func matchesWeekday(csv string, wd time.Weekday) bool {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return true
	}
	for _, part := range strings.Split(csv, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if time.Weekday(n) == wd {
			return true
		}
	}
	return false
}
