package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

func AddMeasurement(c *gin.Context) {
	var body services.MeasurementInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := services.AddMeasurement(c.GetUint("userID"), body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

func ListMeasurements(c *gin.Context) {
	rows, err := services.ListMeasurements(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func GetLatestMeasurement(c *gin.Context) {
	m, extra, err := services.LatestMeasurement(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if m == nil {
		c.JSON(http.StatusOK, gin.H{"measurement": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"measurement": m, "derived": extra})
}

func DeleteMeasurement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := services.DeleteMeasurement(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func AddBodyPhoto(c *gin.Context) {
	var body struct {
		ImageBase64 string    `json:"image_base64" binding:"required"`
		TakenAt     time.Time `json:"taken_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	photo, err := services.AddBodyPhoto(c.GetUint("userID"), body.ImageBase64, body.TakenAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func ListBodyPhotos(c *gin.Context) {
	rows, err := services.ListBodyPhotos(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func DeleteBodyPhoto(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := services.DeleteBodyPhoto(c.GetUint("userID"), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
