package controllers

import (
	"net/http"
	"strconv"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

func CreateWeightGoal(c *gin.Context) {
	var body struct {
		GoalType     string  `json:"goal_type" binding:"required"`
		StartWeight  float64 `json:"start_weight" binding:"required,gt=0"`
		TargetWeight float64 `json:"target_weight" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateWeightGoal(c.GetUint("userID"), body.GoalType, body.StartWeight, body.TargetWeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func ListWeightGoals(c *gin.Context) {
	goals, err := services.ListWeightGoals(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func GetActiveWeightGoal(c *gin.Context) {
	goal, err := services.GetActiveWeightGoal(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

func UpdateGoalProgress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body struct {
		CurrentWeight float64 `json:"current_weight" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoalProgress(c.GetUint("userID"), uint(id), body.CurrentWeight)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
