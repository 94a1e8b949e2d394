package services

import (
	"errors"
	"fmt"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
	"github.com/josielsoaresoficial/gym-jm-sub001/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	HeightCm      float64 `json:"height_cm"`
	AvatarBase64  string  `json:"avatar_base64"`
	CharacterID   string  `json:"character_id"`
}

func GetUserProfile(userID uint) (map[string]any, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]any{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"height_cm":      user.HeightCm,
		"avatar_url":     user.AvatarURL,
		"character_id":   user.CharacterID,
		"is_admin":       user.IsAdmin,
		"email_verified": user.EmailVerified,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.CharacterID != "" {
		user.CharacterID = input.CharacterID
	}
	if input.AvatarBase64 != "" {
		key := fmt.Sprintf("avatars/%d", userID)
		url, _, err := utils.UploadBase64Image(input.AvatarBase64, key)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}
