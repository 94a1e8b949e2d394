package services

import (
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
)

type MealInput struct {
	Name     string    `json:"name"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Calories float64   `json:"calories"`
	MealDate time.Time `json:"meal_date"`
}

func AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	if in.MealDate.IsZero() {
		in.MealDate = time.Now()
	}
	meal := &models.Meal{
		UserID:   userID,
		Name:     in.Name,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Calories: in.Calories,
		MealDate: in.MealDate,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func UpdateMeal(userID, mealID uint, in MealInput) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}
	meal.Name = in.Name
	meal.Protein = in.Protein
	meal.Carbs = in.Carbs
	meal.Fat = in.Fat
	meal.Calories = in.Calories
	if !in.MealDate.IsZero() {
		meal.MealDate = in.MealDate
	}
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func DeleteMeal(userID, mealID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

func ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, from, to).
		Order("meal_date ASC").
		Find(&meals).Error
	return meals, err
}

func HasMealToday(userID uint, now time.Time) (bool, error) {
	start := dayStart(now)
	var count int64
	err := config.DB.Model(&models.Meal{}).
		Where("user_id = ? AND meal_date >= ? AND meal_date < ?", userID, start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}
