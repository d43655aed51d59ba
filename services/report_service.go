package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionTotals sums the macro columns for a set of meals.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func nutritionTotals(meals []metrics.Meal) NutritionTotals {
	var t NutritionTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
	}
	return t
}

// DailyReport is one day's full picture across every log type.
type DailyReport struct {
	Date          string                  `json:"date"`
	Workouts      []metrics.Workout       `json:"workouts"`
	WorkoutTotals metrics.WorkoutSummary  `json:"workout_totals"`
	Water         []metrics.WaterEntry    `json:"water"`
	WaterTotals   metrics.WaterSummary    `json:"water_totals"`
	Nutrition     NutritionTotals         `json:"nutrition"`
	Macros        []metrics.NutrientShare `json:"macros"`
	Sleep         []models.SleepLog       `json:"sleep"`
	SleepHours    float64                 `json:"sleep_hours"`
	Medications   MedicationCounts        `json:"medications"`
}

type MedicationCounts struct {
	Taken  int `json:"taken"`
	Missed int `json:"missed"`
}

// DaySummary is the per-day row inside a weekly report.
type DaySummary struct {
	Date           string  `json:"date"`
	DayOfWeek      string  `json:"day_of_week"`
	CaloriesEaten  float64 `json:"calories_eaten"`
	MealCount      int     `json:"meal_count"`
	WorkoutMinutes int     `json:"workout_minutes"`
	CaloriesBurned int     `json:"calories_burned"`
	WorkoutCount   int     `json:"workout_count"`
	Water          int     `json:"water"`
	SleepHours     float64 `json:"sleep_hours"`
}

type WeeklyReport struct {
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []DaySummary   `json:"days"`
	Totals    WeeklyTotals   `json:"totals"`
	Averages  WeeklyAverages `json:"averages"`
	Goals     []GoalProgress `json:"goals"`
}

type WeeklyTotals struct {
	CaloriesEaten  float64 `json:"calories_eaten"`
	WorkoutMinutes int     `json:"workout_minutes"`
	CaloriesBurned int     `json:"calories_burned"`
	Water          int     `json:"water"`
	SleepHours     float64 `json:"sleep_hours"`
}

type WeeklyAverages struct {
	DailyCalories  float64 `json:"daily_calories"`
	WorkoutMinutes float64 `json:"daily_workout_minutes"`
	DailyWater     float64 `json:"daily_water"`
	SleepHours     float64 `json:"daily_sleep_hours"`
}

// weekWindow returns the Monday-to-Sunday week containing the given day,
// both bounds at local midnight.
func weekWindow(t time.Time) (start, end time.Time) {
	day := metrics.DayStart(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -offset)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// summarizeReportDay reduces one day's views to the weekly-report row.
func summarizeReportDay(date time.Time, workouts []metrics.Workout, water []metrics.WaterEntry, meals []metrics.Meal, sleepHours float64) DaySummary {
	ws := metrics.SummarizeWorkouts(workouts)
	nut := nutritionTotals(meals)
	return DaySummary{
		Date:           date.Format("2006-01-02"),
		DayOfWeek:      date.Weekday().String(),
		CaloriesEaten:  nut.Calories,
		MealCount:      len(meals),
		WorkoutMinutes: ws.TotalDuration,
		CaloriesBurned: ws.TotalCalories,
		WorkoutCount:   ws.Count,
		Water:          metrics.SummarizeWater(water).TotalAmount,
		SleepHours:     sleepHours,
	}
}

func weeklyTotals(days []DaySummary) WeeklyTotals {
	var t WeeklyTotals
	for _, d := range days {
		t.CaloriesEaten += d.CaloriesEaten
		t.WorkoutMinutes += d.WorkoutMinutes
		t.CaloriesBurned += d.CaloriesBurned
		t.Water += d.Water
		t.SleepHours += d.SleepHours
	}
	return t
}

func weeklyAverages(t WeeklyTotals, days int) WeeklyAverages {
	if days <= 0 {
		return WeeklyAverages{}
	}
	n := float64(days)
	return WeeklyAverages{
		DailyCalories:  t.CaloriesEaten / n,
		WorkoutMinutes: float64(t.WorkoutMinutes) / n,
		DailyWater:     float64(t.Water) / n,
		SleepHours:     t.SleepHours / n,
	}
}

// sleepEndingOn returns sleep logs whose end falls on the given local day.
func sleepEndingOn(userID uint, date time.Time) ([]models.SleepLog, error) {
	start := metrics.DayStart(date)
	end := start.Add(24 * time.Hour)

	var logs []models.SleepLog
	err := config.DB.
		Where("user_id = ? AND \"end\" >= ? AND \"end\" < ?", userID, start, end).
		Order("\"end\" asc").
		Find(&logs).Error
	return logs, err
}

// GenerateDailyReport assembles one day's report from the stored logs.
// Aggregates are recomputed from rows, never read from a running total.
func GenerateDailyReport(userID uint, date time.Time) (*DailyReport, error) {
	workoutLogs, err := ListWorkoutsByDate(userID, date)
	if err != nil {
		return nil, err
	}
	workouts := WorkoutViews(workoutLogs)

	waterLogs, err := ListWaterLogsByDate(userID, date)
	if err != nil {
		return nil, err
	}
	water := WaterViews(waterLogs)

	meals, err := TodayMealViews(userID, date)
	if err != nil {
		return nil, err
	}

	sleep, err := sleepEndingOn(userID, date)
	if err != nil {
		return nil, err
	}
	var sleepHours float64
	for _, s := range sleep {
		sleepHours += s.Duration
	}

	var taken, missed int64
	if err := config.DB.Model(&models.MedicationLog{}).
		Where("user_id = ? AND taken = ?", userID, true).Count(&taken).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.MedicationLog{}).
		Where("user_id = ? AND taken = ?", userID, false).Count(&missed).Error; err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:          metrics.DayStart(date).Format("2006-01-02"),
		Workouts:      workouts,
		WorkoutTotals: metrics.SummarizeWorkouts(workouts),
		Water:         water,
		WaterTotals:   metrics.SummarizeWater(water),
		Nutrition:     nutritionTotals(meals),
		Macros:        metrics.NutritionBreakdown(meals),
		Sleep:         sleep,
		SleepHours:    sleepHours,
		Medications:   MedicationCounts{Taken: int(taken), Missed: int(missed)},
	}, nil
}

// GenerateWeeklyReport assembles the Monday-to-Sunday week containing the
// given day: one summary row per day plus totals, averages and the current
// goal progress.
func GenerateWeeklyReport(userID uint, date time.Time) (*WeeklyReport, error) {
	start, end := weekWindow(date)

	days := make([]DaySummary, 0, 7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		workoutLogs, err := ListWorkoutsByDate(userID, d)
		if err != nil {
			return nil, err
		}
		waterLogs, err := ListWaterLogsByDate(userID, d)
		if err != nil {
			return nil, err
		}
		meals, err := TodayMealViews(userID, d)
		if err != nil {
			return nil, err
		}
		sleep, err := sleepEndingOn(userID, d)
		if err != nil {
			return nil, err
		}
		var sleepHours float64
		for _, s := range sleep {
			sleepHours += s.Duration
		}
		days = append(days, summarizeReportDay(d, WorkoutViews(workoutLogs), WaterViews(waterLogs), meals, sleepHours))
	}

	goals, err := GoalProgressReport(userID)
	if err != nil {
		return nil, err
	}

	totals := weeklyTotals(days)
	return &WeeklyReport{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Days:      days,
		Totals:    totals,
		Averages:  weeklyAverages(totals, len(days)),
		Goals:     goals,
	}, nil
}

// SaveReport persists a generated report payload for later reopening.
func SaveReport(userID uint, reportType string, start, end time.Time, payload interface{}) (*models.SavedReport, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var title string
	switch reportType {
	case "daily":
		title = fmt.Sprintf("Daily Report - %s", start.Format("2006-01-02"))
	case "weekly":
		title = fmt.Sprintf("Weekly Report - %s to %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
	default:
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}

	report := models.SavedReport{
		UserID:     userID,
		PublicID:   uuid.NewString(),
		ReportType: reportType,
		Title:      title,
		Data:       string(data),
		StartDate:  metrics.DayStart(start),
		EndDate:    metrics.DayStart(end),
	}
	if err := config.DB.Create(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func ListSavedReports(userID uint) ([]models.SavedReport, error) {
	var reports []models.SavedReport
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reports).Error
	return reports, err
}

func GetSavedReport(userID uint, publicID string) (*models.SavedReport, error) {
	var report models.SavedReport
	err := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, metrics.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func DeleteSavedReport(userID uint, publicID string) error {
	res := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).Delete(&models.SavedReport{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metrics.ErrNotFound
	}
	return nil
}
