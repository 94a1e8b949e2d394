// controllers/stats_controller.go
package controllers

import (
	"net/http"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Workouts *services.StatsService
	Meals    *services.MealStatsService
}

func NewStatsController(w *services.StatsService, m *services.MealStatsService) *StatsController {
	return &StatsController{Workouts: w, Meals: m}
}

func (h *StatsController) GetDailyStats(c *gin.Context) {
	out, err := h.Workouts.DailyStats(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetWeeklyStats(c *gin.Context) {
	out, err := h.Workouts.WeeklyStats(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetTotalStats(c *gin.Context) {
	out, err := h.Workouts.TotalStats(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetTopExercises(c *gin.Context) {
	out, err := h.Workouts.TopExercises(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetProgressSeries(c *gin.Context) {
	out, err := h.Workouts.ProgressSeries(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetMuscleActivity(c *gin.Context) {
	out, err := h.Workouts.MuscleActivityMap(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetDailyMacros(c *gin.Context) {
	out, err := h.Meals.DailyMacros(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *StatsController) GetWeeklyMacros(c *gin.Context) {
	out, err := h.Meals.WeeklyMacros(c.Request.Context(), c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
