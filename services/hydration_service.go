package services

import (
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
)

func LogWater(userID uint, amountML float64) (*models.HydrationLog, error) {
	row := &models.HydrationLog{
		UserID:   userID,
		AmountML: amountML,
		LoggedAt: time.Now(),
	}
	if err := config.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// TodayHydration sums today's logged water in milliliters.
func TodayHydration(userID uint) (float64, error) {
	if userID == 0 {
		return 0, nil
	}
	start := dayStart(time.Now())
	var rows []models.HydrationLog
	if err := config.DB.
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Find(&rows).Error; err != nil {
		return 0, err
	}
	var total float64
	for _, r := range rows {
		total += r.AmountML
	}
	return total, nil
}

func DeleteHydrationLog(userID, logID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.HydrationLog{}).Error
}
