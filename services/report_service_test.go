package services

import (
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func TestWeekWindowStartsMonday(t *testing.T) {
	cases := []struct {
		name  string
		day   string
		start string
		end   string
	}{
		{"midweek", "2026-08-26", "2026-08-24", "2026-08-30"},
		{"monday itself", "2026-08-24", "2026-08-24", "2026-08-30"},
		{"sunday belongs to the prior monday", "2026-08-30", "2026-08-24", "2026-08-30"},
		{"across a month boundary", "2026-09-01", "2026-08-31", "2026-09-06"},
	}

	for _, tc := range cases {
		day, err := time.ParseInLocation("2006-01-02", tc.day, time.Local)
		if err != nil {
			t.Fatalf("%s: bad fixture date: %v", tc.name, err)
		}
		start, end := weekWindow(day)
		if got := start.Format("2006-01-02"); got != tc.start {
			t.Fatalf("%s: start = %s, want %s", tc.name, got, tc.start)
		}
		if got := end.Format("2006-01-02"); got != tc.end {
			t.Fatalf("%s: end = %s, want %s", tc.name, got, tc.end)
		}
		if start.Weekday() != time.Monday {
			t.Fatalf("%s: week starts on %s", tc.name, start.Weekday())
		}
	}
}

func TestWeekWindowIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, 8, 26, 23, 45, 0, 0, time.Local)
	early := time.Date(2026, 8, 26, 0, 1, 0, 0, time.Local)

	lateStart, _ := weekWindow(late)
	earlyStart, _ := weekWindow(early)
	if !lateStart.Equal(earlyStart) {
		t.Fatalf("window start depends on time of day: %v vs %v", lateStart, earlyStart)
	}
}

func TestSummarizeReportDay(t *testing.T) {
	date := time.Date(2026, 8, 26, 0, 0, 0, 0, time.Local)
	workouts := []metrics.Workout{
		{Duration: 30, Calories: 320},
		{Duration: 45, Calories: 380},
	}
	water := []metrics.WaterEntry{{Amount: 350}, {Amount: 500}}
	meals := []metrics.Meal{
		{Calories: 350, Protein: 12, Carbs: 55, Fat: 6},
		{Calories: 450, Protein: 35, Carbs: 20, Fat: 15},
	}

	day := summarizeReportDay(date, workouts, water, meals, 7.5)
	if day.Date != "2026-08-26" || day.DayOfWeek != "Wednesday" {
		t.Fatalf("unexpected date fields: %s %s", day.Date, day.DayOfWeek)
	}
	if day.WorkoutMinutes != 75 || day.CaloriesBurned != 700 || day.WorkoutCount != 2 {
		t.Fatalf("unexpected workout totals: %+v", day)
	}
	if day.Water != 850 {
		t.Fatalf("water = %d, want 850", day.Water)
	}
	if day.CaloriesEaten != 800 || day.MealCount != 2 {
		t.Fatalf("unexpected nutrition totals: %+v", day)
	}
	if day.SleepHours != 7.5 {
		t.Fatalf("sleep hours = %v, want 7.5", day.SleepHours)
	}
}

func TestWeeklyTotalsAndAverages(t *testing.T) {
	days := []DaySummary{
		{CaloriesEaten: 1800, WorkoutMinutes: 30, CaloriesBurned: 320, Water: 2000, SleepHours: 7},
		{CaloriesEaten: 2200, WorkoutMinutes: 45, CaloriesBurned: 380, Water: 1500, SleepHours: 8},
		{CaloriesEaten: 2000, WorkoutMinutes: 0, CaloriesBurned: 0, Water: 2500, SleepHours: 6},
	}

	totals := weeklyTotals(days)
	if totals.CaloriesEaten != 6000 || totals.WorkoutMinutes != 75 || totals.CaloriesBurned != 700 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.Water != 6000 || totals.SleepHours != 21 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	avg := weeklyAverages(totals, len(days))
	if avg.DailyCalories != 2000 || avg.WorkoutMinutes != 25 || avg.DailyWater != 2000 || avg.SleepHours != 7 {
		t.Fatalf("unexpected averages: %+v", avg)
	}
}

func TestWeeklyAveragesEmptyWeek(t *testing.T) {
	avg := weeklyAverages(WeeklyTotals{}, 0)
	if avg != (WeeklyAverages{}) {
		t.Fatalf("averages over zero days should be zero, got %+v", avg)
	}
}

func TestNutritionTotals(t *testing.T) {
	meals := []metrics.Meal{
		{Calories: 350, Protein: 12, Carbs: 55, Fat: 6},
		{Calories: 180, Protein: 15, Carbs: 20, Fat: 8},
	}
	got := nutritionTotals(meals)
	want := NutritionTotals{Calories: 530, Protein: 27, Carbs: 75, Fat: 14}
	if got != want {
		t.Fatalf("nutritionTotals = %+v, want %+v", got, want)
	}
}
