package controllers

import (
	"net/http"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

type AlternativesController struct {
	Svc *services.AlternativesService
}

func NewAlternativesController(svc *services.AlternativesService) *AlternativesController {
	return &AlternativesController{Svc: svc}
}

// GetAlternatives suggests substitutions for a busy or unavailable
// exercise. Requires an authenticated user; any downstream failure
// (library query, model call, malformed model output) is a 500.
func (h *AlternativesController) GetAlternatives(c *gin.Context) {
	uid := c.GetUint("userID")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req services.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.Svc.GetAlternatives(c.Request.Context(), uid, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
