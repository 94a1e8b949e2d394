package services

import (
	"errors"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
)

// Character is a companion mascot shown alongside the user's progress.
type Character struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImagePath   string `json:"image_path"`
	Description string `json:"description"`
}

// Catalog is static for the lifetime of the process; the user's pick is
// persisted on the profile and restored on login. The first entry is
// the default.
var characterCatalog = []Character{
	{ID: "leo", Name: "Leo", ImagePath: "/characters/leo.png", Description: "O leão determinado"},
	{ID: "bia", Name: "Bia", ImagePath: "/characters/bia.png", Description: "A coelha veloz"},
	{ID: "tito", Name: "Tito", ImagePath: "/characters/tito.png", Description: "O touro forte"},
	{ID: "nina", Name: "Nina", ImagePath: "/characters/nina.png", Description: "A pantera ágil"},
	{ID: "gugu", Name: "Gugu", ImagePath: "/characters/gugu.png", Description: "O gorila gigante"},
}

func CharacterCatalog() []Character {
	return characterCatalog
}

func DefaultCharacter() Character {
	return characterCatalog[0]
}

func CharacterByID(id string) (Character, bool) {
	for _, c := range characterCatalog {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// CurrentCharacter restores the user's selection, falling back to the
// default when nothing (or something no longer in the catalog) is stored.
func CurrentCharacter(userID uint) (Character, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return DefaultCharacter(), err
	}
	if c, ok := CharacterByID(user.CharacterID); ok {
		return c, nil
	}
	return DefaultCharacter(), nil
}

func SelectCharacter(userID uint, characterID string) (Character, error) {
	c, ok := CharacterByID(characterID)
	if !ok {
		return Character{}, errors.New("unknown character")
	}
	err := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("character_id", c.ID).Error
	return c, err
}
