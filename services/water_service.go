package services

import (
	"errors"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaterInput struct {
	Amount     int       `json:"amount"`
	OccurredAt time.Time `json:"timestamp"`
}

func CreateWaterLog(userID uint, in WaterInput) (*models.WaterLog, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	log := models.WaterLog{
		UserID:     userID,
		PublicID:   uuid.NewString(),
		Amount:     in.Amount,
		OccurredAt: occurred,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		return bumpGoals(tx, userID, func(goals []metrics.Goal) []metrics.Goal {
			return metrics.ApplyWaterAdded(goals, float64(in.Amount))
		})
	})
	if err != nil {
		return nil, err
	}

	afterHealthDataChange(userID)
	return &log, nil
}

func DeleteWaterLog(userID uint, publicID string) error {
	var log models.WaterLog
	err := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return metrics.ErrNotFound
		}
		return err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&log).Error; err != nil {
			return err
		}
		return bumpGoals(tx, userID, func(goals []metrics.Goal) []metrics.Goal {
			return metrics.ApplyWaterRemoved(goals, float64(log.Amount))
		})
	})
	if err != nil {
		return err
	}

	afterHealthDataChange(userID)
	return nil
}

func ListWaterLogs(userID uint) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("occurred_at desc").
		Find(&logs).Error
	return logs, err
}

func ListWaterLogsByDate(userID uint, date time.Time) ([]models.WaterLog, error) {
	start := metrics.DayStart(date)
	end := start.Add(24 * time.Hour)

	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at desc").
		Find(&logs).Error
	return logs, err
}

// DailyWaterTotal sums the given local calendar day's intake.
func DailyWaterTotal(userID uint, date time.Time) (int, error) {
	logs, err := ListWaterLogsByDate(userID, date)
	if err != nil {
		return 0, err
	}
	return metrics.SummarizeWater(WaterViews(logs)).TotalAmount, nil
}

func WaterViews(logs []models.WaterLog) []metrics.WaterEntry {
	out := make([]metrics.WaterEntry, len(logs))
	for i, l := range logs {
		out[i] = metrics.WaterEntry{ID: l.PublicID, Amount: l.Amount, OccurredAt: l.OccurredAt}
	}
	return out
}
