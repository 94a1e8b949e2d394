package services

import (
	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
)

type CustomFoodInput struct {
	Name     string  `json:"name" binding:"required"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Calories float64 `json:"calories"`
}

func CreateCustomFood(userID uint, in CustomFoodInput) (*models.CustomFood, error) {
	food := &models.CustomFood{
		UserID:   userID,
		Name:     in.Name,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Calories: in.Calories,
	}
	if err := config.DB.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func ListCustomFoods(userID uint) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

func UpdateCustomFood(userID, foodID uint, in CustomFoodInput) (*models.CustomFood, error) {
	var food models.CustomFood
	if err := config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}
	food.Name = in.Name
	food.Protein = in.Protein
	food.Carbs = in.Carbs
	food.Fat = in.Fat
	food.Calories = in.Calories
	if err := config.DB.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func DeleteCustomFood(userID, foodID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.CustomFood{}).Error
}
