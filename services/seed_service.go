package services

import (
	"errors"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/fixtures"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"gorm.io/gorm"
)

var ErrAlreadySeeded = errors.New("account already has health data")

// SeedDemoData fills an empty account with a few days of demo records so a
// fresh install has something to render. Refuses to touch an account that
// already has workouts.
func SeedDemoData(userID uint) error {
	var count int64
	if err := config.DB.Model(&models.WorkoutLog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	now := time.Now()
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fixtures.Workouts(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.WaterLogs(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.Meals(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.Goals(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.SleepLogs(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.VitalLogs(userID, now)).Error; err != nil {
			return err
		}
		if err := tx.Create(fixtures.MoodLogs(userID, now)).Error; err != nil {
			return err
		}
		return tx.Create(fixtures.Medications(userID)).Error
	})
	if err != nil {
		return err
	}

	afterHealthDataChange(userID)
	return nil
}
