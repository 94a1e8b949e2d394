package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

func LogWorkout(c *gin.Context) {
	var body struct {
		WorkoutName     string                       `json:"workout_name" binding:"required"`
		CompletedAt     time.Time                    `json:"completed_at"`
		DurationSeconds int                          `json:"duration_seconds"`
		CaloriesBurned  *float64                     `json:"calories_burned"`
		Exercises       []services.CompletedExercise `json:"exercises"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	uid := c.GetUint("userID")

	w, err := services.LogWorkout(uid, body.WorkoutName, body.CompletedAt, body.DurationSeconds, body.CaloriesBurned, body.Exercises)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, w)
}

func ListWorkouts(c *gin.Context) {
	uid := c.GetUint("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := services.ListWorkouts(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func DeleteWorkout(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteWorkout(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
