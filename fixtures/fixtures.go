// Package fixtures builds demo data for new accounts and for tests. The
// records mirror what a few days of normal app use would produce.
package fixtures

import (
	"time"

	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
)

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func atHour(now time.Time, hour, min int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
}

func Workouts(userID uint, now time.Time) []models.WorkoutLog {
	mk := func(days int, workoutType, activity string, duration, calories int, intensity, notes string) models.WorkoutLog {
		return models.WorkoutLog{
			UserID:      userID,
			PublicID:    uuid.New().String(),
			WorkoutType: workoutType,
			Activity:    activity,
			Duration:    duration,
			Calories:    calories,
			Intensity:   intensity,
			Notes:       notes,
			OccurredAt:  daysAgo(now, days),
		}
	}
	return []models.WorkoutLog{
		mk(0, models.WorkoutCardio, "Running", 30, 320, "Medium", "Morning run around the park"),
		mk(1, models.WorkoutStrength, "Strength Training", 45, 380, "High", "Focused on upper body"),
		mk(2, models.WorkoutFlexibility, "Yoga", 60, 200, "Low", "Relaxation yoga session"),
		mk(3, models.WorkoutCardio, "Cycling", 40, 350, "Medium", "City bike tour"),
		mk(4, models.WorkoutCardio, "Swimming", 35, 300, "Medium", "Pool laps"),
	}
}

func WaterLogs(userID uint, now time.Time) []models.WaterLog {
	entries := []struct {
		amount    int
		hour, min int
	}{
		{350, 8, 30},
		{250, 10, 15},
		{500, 13, 0},
		{250, 15, 45},
		{350, 18, 30},
	}
	logs := make([]models.WaterLog, len(entries))
	for i, e := range entries {
		logs[i] = models.WaterLog{
			UserID:     userID,
			PublicID:   uuid.New().String(),
			Amount:     e.amount,
			OccurredAt: atHour(now, e.hour, e.min),
		}
	}
	return logs
}

func Meals(userID uint, now time.Time) []models.MealLog {
	mk := func(name, mealType string, calories, protein, carbs, fat float64, hour, min int) models.MealLog {
		return models.MealLog{
			UserID:     userID,
			PublicID:   uuid.New().String(),
			Name:       name,
			MealType:   mealType,
			Calories:   calories,
			Protein:    protein,
			Carbs:      carbs,
			Fat:        fat,
			OccurredAt: atHour(now, hour, min),
		}
	}
	return []models.MealLog{
		mk("Oatmeal with fruits", "breakfast", 350, 12, 55, 6, 7, 30),
		mk("Chicken salad", "lunch", 450, 35, 20, 15, 12, 30),
		mk("Protein bar", "snack", 180, 15, 20, 8, 16, 0),
	}
}

func Goals(userID uint, now time.Time) []models.HealthGoal {
	deadline := now.AddDate(0, 3, 0)
	return []models.HealthGoal{
		{
			UserID: userID, PublicID: uuid.New().String(),
			Name: "Daily water intake", Category: "water",
			TargetValue: 2500, CurrentValue: 1700, Unit: "ml",
		},
		{
			UserID: userID, PublicID: uuid.New().String(),
			Name: "Weight goal", Category: "weight",
			TargetValue: 70, CurrentValue: 75, Unit: "kg", Deadline: &deadline,
		},
		{
			UserID: userID, PublicID: uuid.New().String(),
			Name: "Weekly workouts", Category: "workout",
			TargetValue: 5, CurrentValue: 3, Unit: "sessions",
		},
		{
			UserID: userID, PublicID: uuid.New().String(),
			Name: "Sleep duration", Category: "sleep",
			TargetValue: 8, CurrentValue: 7.5, Unit: "hours",
		},
	}
}

func SleepLogs(userID uint, now time.Time) []models.SleepLog {
	mk := func(startDays int, startHour, startMin int, endDays int, endHour, endMin int, duration float64, quality, notes string) models.SleepLog {
		start := atHour(daysAgo(now, startDays), startHour, startMin)
		end := atHour(daysAgo(now, endDays), endHour, endMin)
		return models.SleepLog{
			UserID:   userID,
			PublicID: uuid.New().String(),
			Start:    start,
			End:      end,
			Duration: duration,
			Quality:  quality,
			Notes:    notes,
		}
	}
	return []models.SleepLog{
		mk(1, 23, 0, 0, 7, 0, 8, "Good", "Restful night"),
		mk(2, 23, 30, 1, 7, 15, 7.75, "Fair", "Woke up once"),
		mk(3, 23, 15, 2, 6, 45, 7.5, "Good", ""),
	}
}

func VitalLogs(userID uint, now time.Time) []models.VitalLog {
	mk := func(vitalType, value, notes string) models.VitalLog {
		return models.VitalLog{
			UserID:     userID,
			PublicID:   uuid.New().String(),
			VitalType:  vitalType,
			Value:      value,
			OccurredAt: now,
			Notes:      notes,
		}
	}
	return []models.VitalLog{
		mk("heart_rate", "72", "Resting heart rate"),
		mk("blood_pressure", "120/80", "Morning reading"),
		mk("temperature", "36.6", ""),
		mk("oxygen", "98", ""),
	}
}

func MoodLogs(userID uint, now time.Time) []models.MoodLog {
	mk := func(days int, mood, notes string) models.MoodLog {
		return models.MoodLog{
			UserID:     userID,
			PublicID:   uuid.New().String(),
			Mood:       mood,
			OccurredAt: daysAgo(now, days),
			Notes:      notes,
		}
	}
	return []models.MoodLog{
		mk(0, "Good", "Feeling productive today"),
		mk(1, "Excellent", "Great workout session"),
		mk(2, "Neutral", "Busy day at work"),
		mk(3, "Good", "Nice weather"),
	}
}

func Medications(userID uint) []models.MedicationLog {
	mk := func(name, dosage, timeOfDay string, taken bool) models.MedicationLog {
		return models.MedicationLog{
			UserID:    userID,
			PublicID:  uuid.New().String(),
			Name:      name,
			Dosage:    dosage,
			TimeOfDay: timeOfDay,
			Taken:     taken,
		}
	}
	return []models.MedicationLog{
		mk("Vitamin D", "1000 IU", "08:00", true),
		mk("Fish Oil", "1000 mg", "08:00", true),
		mk("Multivitamin", "1 tablet", "08:00", true),
		mk("Zinc", "50 mg", "20:00", false),
	}
}
