// Endpoints that were serverless functions in the first deployment of
// this product. They keep their original request/response contracts.
package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

type FunctionsController struct {
	Cleanup   *services.CleanupService
	Reminders *services.ReminderService
}

func NewFunctionsController(cl *services.CleanupService, rm *services.ReminderService) *FunctionsController {
	return &FunctionsController{Cleanup: cl, Reminders: rm}
}

// RunCleanup empties the orphaned-uploads bucket in fixed-size batches.
// Response: {success, message, stats:{deleted, failed, total}}.
func (f *FunctionsController) RunCleanup(c *gin.Context) {
	stats, err := f.Cleanup.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "cleanup finished",
		"stats":   stats,
	})
}

// RunReminders is invoked by the external scheduler once a minute. It
// authenticates with a shared secret header instead of a user token.
func (f *FunctionsController) RunReminders(c *gin.Context) {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" || c.GetHeader("X-Cron-Secret") != secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := f.Reminders.Run(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
