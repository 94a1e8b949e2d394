package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"
	"github.com/josielsoaresoficial/gym-jm-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type emailWebhookPayload struct {
	User struct {
		Email string `json:"email"`
	} `json:"user"`
	EmailData struct {
		Token      string `json:"token"`
		TokenHash  string `json:"token_hash"`
		RedirectTo string `json:"redirect_to"`
		ActionType string `json:"email_action_type"`
	} `json:"email_data"`
}

// EmailConfirmationWebhook receives the signed signup event from the
// auth provider and sends the verification email ourselves, so the
// message matches the app's branding.
func EmailConfirmationWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"http_code": 400, "message": "unreadable body"}})
		return
	}

	secret := os.Getenv("EMAIL_WEBHOOK_SECRET")
	if err := utils.VerifyWebhookSignature(payload, c.GetHeader("Webhook-Signature"), secret); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"http_code": 401, "message": err.Error()}})
		return
	}

	var body emailWebhookPayload
	if err := json.Unmarshal(payload, &body); err != nil || body.User.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"http_code": 400, "message": "malformed payload"}})
		return
	}

	verifyURL := fmt.Sprintf("%s/auth/verify?token=%s&type=%s&redirect_to=%s",
		os.Getenv("APP_BASE_URL"),
		body.EmailData.TokenHash,
		body.EmailData.ActionType,
		body.EmailData.RedirectTo,
	)

	if err := utils.SendConfirmationEmail(body.User.Email, verifyURL); err != nil {
		logrus.WithError(err).Error("confirmation email failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// token flows back through the provider; we only mark our own row
	if body.EmailData.ActionType == "email_verified" {
		_ = services.MarkEmailVerified(body.User.Email)
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
