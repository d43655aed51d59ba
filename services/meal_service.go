package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealInput struct {
	Name       string    `json:"name" binding:"required"`
	MealType   string    `json:"type"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	OccurredAt time.Time `json:"timestamp"`
}

func CreateMealLog(userID uint, in MealInput) (*models.MealLog, error) {
	if in.Calories <= 0 {
		return nil, errors.New("calories must be positive")
	}
	switch in.MealType {
	case "breakfast", "lunch", "dinner", "snack":
	default:
		return nil, fmt.Errorf("unknown meal type %q", in.MealType)
	}

	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	log := models.MealLog{
		UserID:     userID,
		PublicID:   uuid.NewString(),
		Name:       in.Name,
		MealType:   in.MealType,
		Calories:   in.Calories,
		Protein:    in.Protein,
		Carbs:      in.Carbs,
		Fat:        in.Fat,
		OccurredAt: occurred,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}

	afterHealthDataChange(userID)
	return &log, nil
}

func DeleteMealLog(userID uint, publicID string) error {
	var log models.MealLog
	err := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return metrics.ErrNotFound
		}
		return err
	}
	if err := config.DB.Delete(&log).Error; err != nil {
		return err
	}

	afterHealthDataChange(userID)
	return nil
}

func ListMealLogs(userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("occurred_at desc").
		Find(&logs).Error
	return logs, err
}

func TodayMealViews(userID uint, now time.Time) ([]metrics.Meal, error) {
	start := metrics.DayStart(now)
	end := start.Add(24 * time.Hour)

	var logs []models.MealLog
	err := config.DB.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	out := make([]metrics.Meal, len(logs))
	for i, l := range logs {
		out[i] = metrics.Meal{Calories: l.Calories, Protein: l.Protein, Carbs: l.Carbs, Fat: l.Fat}
	}
	return out, nil
}
