package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/josielsoaresoficial/gym-jm-sub001/config"
	"github.com/josielsoaresoficial/gym-jm-sub001/models"
	"github.com/josielsoaresoficial/gym-jm-sub001/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeasurementInput struct {
	WeightKg   float64   `json:"weight_kg"`
	ChestCm    float64   `json:"chest_cm"`
	WaistCm    float64   `json:"waist_cm"`
	HipsCm     float64   `json:"hips_cm"`
	ArmsCm     float64   `json:"arms_cm"`
	ThighsCm   float64   `json:"thighs_cm"`
	MeasuredAt time.Time `json:"measured_at"`
}

func AddMeasurement(userID uint, in MeasurementInput) (*models.BodyMeasurement, error) {
	if in.MeasuredAt.IsZero() {
		in.MeasuredAt = time.Now()
	}
	m := &models.BodyMeasurement{
		UserID:     userID,
		WeightKg:   in.WeightKg,
		ChestCm:    in.ChestCm,
		WaistCm:    in.WaistCm,
		HipsCm:     in.HipsCm,
		ArmsCm:     in.ArmsCm,
		ThighsCm:   in.ThighsCm,
		MeasuredAt: in.MeasuredAt,
	}
	if err := config.DB.Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func ListMeasurements(userID uint) ([]models.BodyMeasurement, error) {
	var rows []models.BodyMeasurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("measured_at DESC").
		Find(&rows).Error
	return rows, err
}

// LatestMeasurement returns the newest measurement plus BMI when the
// user has a stored height. No measurement yet is not an error.
func LatestMeasurement(userID uint) (*models.BodyMeasurement, map[string]any, error) {
	var m models.BodyMeasurement
	err := config.DB.
		Where("user_id = ?", userID).
		Order("measured_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	extra := map[string]any{}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil && user.HeightCm > 0 {
		if bmi, err := utils.CalculateBMI(user.HeightCm, m.WeightKg); err == nil {
			extra["bmi"] = bmi
			extra["bmi_category"] = utils.BMICategory(bmi)
		}
	}
	return &m, extra, nil
}

func DeleteMeasurement(userID, measurementID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", measurementID, userID).
		Delete(&models.BodyMeasurement{}).Error
}

// AddBodyPhoto uploads the image first and inserts the row second. When
// the insert fails the uploaded object is left behind for the cleanup
// job; there is no cross-store rollback.
func AddBodyPhoto(userID uint, imageBase64 string, takenAt time.Time) (*models.BodyPhoto, error) {
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	key := fmt.Sprintf("body-photos/%d/%s", userID, uuid.NewString())
	url, storedKey, err := utils.UploadBase64Image(imageBase64, key)
	if err != nil {
		return nil, err
	}
	photo := &models.BodyPhoto{
		UserID:     userID,
		PhotoURL:   url,
		StorageKey: storedKey,
		TakenAt:    takenAt,
	}
	if err := config.DB.Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

func ListBodyPhotos(userID uint) ([]models.BodyPhoto, error) {
	var rows []models.BodyPhoto
	err := config.DB.
		Where("user_id = ?", userID).
		Order("taken_at DESC").
		Find(&rows).Error
	return rows, err
}

func DeleteBodyPhoto(userID, photoID uint) error {
	var photo models.BodyPhoto
	if err := config.DB.
		Where("id = ? AND user_id = ?", photoID, userID).
		First(&photo).Error; err != nil {
		return err
	}
	if photo.StorageKey != "" {
		// best effort; orphaned objects are reclaimed by the cleanup job
		_ = utils.DeleteObjects([]string{photo.StorageKey})
	}
	return config.DB.Delete(&photo).Error
}
