package controllers

import (
	"net/http"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Push *services.PushService
}

func NewNotificationController(p *services.PushService) *NotificationController {
	return &NotificationController{Push: p}
}

func (n *NotificationController) GetPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var pref models.NotificationPreference
	if err := config.DB.Where("user_id = ?", uid).First(&pref).Error; err != nil {
		// no row yet: return zero-value prefs, everything disabled
		pref.UserID = uid
	}
	c.JSON(http.StatusOK, pref)
}

func (n *NotificationController) UpdatePreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var body models.NotificationPreference
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	body.UserID = uid

	var pref models.NotificationPreference
	err := config.DB.
		Where("user_id = ?", uid).
		Assign(body).
		FirstOrCreate(&pref).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

type registerDeviceReq struct {
	Platform string `json:"platform" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

func (n *NotificationController) RegisterDevice(c *gin.Context) {
	uid := c.GetUint("userID")

	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	sub, err := n.Push.RegisterSubscription(uid, req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sub.ID, "platform": sub.Platform})
}

type toggleReq struct {
	Enabled bool `json:"enabled"`
}

// POST /user/notifications/toggle
func (n *NotificationController) ToggleNotifications(c *gin.Context) {
	uid := c.GetUint("userID")

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := config.DB.Model(&models.PushSubscription{}).
		Where("user_id = ?", uid).
		Update("enabled", req.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "notifications updated",
		"enabled": req.Enabled,
	})
}

func (n *NotificationController) ListAlerts(c *gin.Context) {
	alerts, err := services.ListAlerts(c.GetUint("userID"), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
