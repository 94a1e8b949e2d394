package controllers

import (
	"net/http"

	"github.com/josielsoaresoficial/gym-jm-sub001/services"

	"github.com/gin-gonic/gin"
)

func GetCharacterCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, services.CharacterCatalog())
}

func GetCurrentCharacter(c *gin.Context) {
	character, err := services.CurrentCharacter(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, character)
}

func SelectCharacter(c *gin.Context) {
	var body struct {
		CharacterID string `json:"character_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	character, err := services.SelectCharacter(c.GetUint("userID"), body.CharacterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, character)
}
