package controllers

import (
	"net/http"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

func (h *AdminController) GetStats(c *gin.Context) {
	out, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
