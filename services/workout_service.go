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

type WorkoutInput struct {
	Activity   string    `json:"type" binding:"required"`
	Duration   int       `json:"duration"`
	Calories   int       `json:"calories"`
	Intensity  string    `json:"intensity"`
	Notes      string    `json:"notes"`
	OccurredAt time.Time `json:"date"`
}

// categoryForActivity folds the free-text activity into the backend's fixed
// workout categories.
func categoryForActivity(activity string) string {
	switch activity {
	case "Running", "Walking", "Cycling", "Swimming", "Dance", "Hiking", "Rowing", "Elliptical":
		return models.WorkoutCardio
	case "Strength Training":
		return models.WorkoutStrength
	case "Yoga", "Pilates":
		return models.WorkoutFlexibility
	case "Basketball", "Soccer", "Tennis":
		return models.WorkoutSports
	case "HIIT", "CrossFit":
		return models.WorkoutCrossfit
	default:
		return models.WorkoutOther
	}
}

// IntensityForCategory recovers a deterministic intensity when a stored row
// predates the intensity column. The mapping is stable so a DTO round trip
// always lands on the same value.
func IntensityForCategory(category string) string {
	switch category {
	case models.WorkoutStrength, models.WorkoutCrossfit:
		return string(metrics.IntensityHigh)
	case models.WorkoutFlexibility:
		return string(metrics.IntensityLow)
	default:
		return string(metrics.IntensityMedium)
	}
}

func validateWorkout(in WorkoutInput) error {
	if in.Duration <= 0 {
		return errors.New("duration must be positive")
	}
	if in.Calories <= 0 {
		return errors.New("calories must be positive")
	}
	switch in.Intensity {
	case "", string(metrics.IntensityLow), string(metrics.IntensityMedium), string(metrics.IntensityHigh):
	default:
		return fmt.Errorf("intensity must be Low, Medium or High")
	}
	return nil
}

func CreateWorkout(userID uint, in WorkoutInput) (*models.WorkoutLog, error) {
	if err := validateWorkout(in); err != nil {
		return nil, err
	}

	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}

	category := categoryForActivity(in.Activity)
	intensity := in.Intensity
	if intensity == "" {
		intensity = IntensityForCategory(category)
	}

	log := models.WorkoutLog{
		UserID:      userID,
		PublicID:    uuid.NewString(),
		WorkoutType: category,
		Activity:    in.Activity,
		Duration:    in.Duration,
		Calories:    in.Calories,
		Intensity:   intensity,
		Notes:       in.Notes,
		OccurredAt:  occurred,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&log).Error; err != nil {
			return err
		}
		return bumpGoals(tx, userID, metrics.ApplyWorkoutLogged)
	})
	if err != nil {
		return nil, err
	}

	afterHealthDataChange(userID)
	return &log, nil
}

// DeleteWorkout removes the entry by its public id. An unknown id is a
// no-op reported as not found; totals are derived from surviving rows so
// the delete fully reverses the entry's contribution.
func DeleteWorkout(userID uint, publicID string) error {
	var log models.WorkoutLog
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

func ListWorkouts(userID uint) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("occurred_at desc").
		Find(&logs).Error
	return logs, err
}

func ListWorkoutsByDate(userID uint, date time.Time) ([]models.WorkoutLog, error) {
	start := metrics.DayStart(date)
	end := start.Add(24 * time.Hour)

	var logs []models.WorkoutLog
	err := config.DB.
		Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?", userID, start, end).
		Order("occurred_at desc").
		Find(&logs).Error
	return logs, err
}

// WorkoutViews maps stored rows into the derived-metrics view.
func WorkoutViews(logs []models.WorkoutLog) []metrics.Workout {
	out := make([]metrics.Workout, len(logs))
	for i, l := range logs {
		intensity := l.Intensity
		if intensity == "" {
			intensity = IntensityForCategory(l.WorkoutType)
		}
		out[i] = metrics.Workout{
			ID:         l.PublicID,
			Activity:   l.Activity,
			Duration:   l.Duration,
			Calories:   l.Calories,
			Intensity:  metrics.Intensity(intensity),
			Notes:      l.Notes,
			OccurredAt: l.OccurredAt,
		}
	}
	return out
}

func WorkoutSummaries(userID uint, now time.Time) (all, today metrics.WorkoutSummary, err error) {
	logs, err := ListWorkouts(userID)
	if err != nil {
		return
	}
	views := WorkoutViews(logs)
	all = metrics.SummarizeWorkouts(views)
	today = metrics.SummarizeWorkouts(metrics.TodayWorkouts(views, now))
	return
}
