package metrics_test

import (
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func TestWeeklyActivityBucketsByDay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local) // a Tuesday
	workouts := []metrics.Workout{
		workoutAt("today-am", 300, 30, time.Date(2026, 9, 1, 7, 0, 0, 0, time.Local)),
		workoutAt("today-pm", 200, 20, time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)),
		workoutAt("three-days-ago", 400, 45, time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)),
		workoutAt("too-old", 999, 99, time.Date(2026, 8, 20, 9, 0, 0, 0, time.Local)),
	}

	week := metrics.WeeklyActivity(workouts, now)
	if len(week) != 7 {
		t.Fatalf("week length = %d", len(week))
	}
	last := week[6]
	if last.Day != "Tue" || last.Calories != 500 || last.Workout != 50 {
		t.Fatalf("today bucket = %+v, want Tue/500/50", last)
	}
	if week[3].Calories != 400 { // Saturday, three days back
		t.Fatalf("sat bucket = %+v", week[3])
	}
	var total int
	for _, d := range week {
		total += d.Calories
	}
	if total != 900 {
		t.Fatalf("out-of-window workout leaked into series (total %d)", total)
	}
}

func TestNutritionBreakdown(t *testing.T) {
	t.Parallel()
	meals := []metrics.Meal{
		{Calories: 350, Protein: 12, Carbs: 55, Fat: 6},
		{Calories: 450, Protein: 35, Carbs: 20, Fat: 15},
		{Calories: 180, Protein: 15, Carbs: 20, Fat: 8},
	}
	shares := metrics.NutritionBreakdown(meals)
	if len(shares) != 3 {
		t.Fatalf("shares = %+v", shares)
	}
	var total int
	for _, s := range shares {
		total += s.Value
	}
	if total < 99 || total > 101 {
		t.Fatalf("shares should sum to ~100, got %d (%+v)", total, shares)
	}
	if shares[0].Name != "Protein" || shares[0].Value != 33 { // 62/186
		t.Fatalf("protein share = %+v", shares[0])
	}
}

func TestNutritionBreakdownEmpty(t *testing.T) {
	t.Parallel()
	shares := metrics.NutritionBreakdown(nil)
	var total int
	for _, s := range shares {
		total += s.Value
	}
	if total != 100 {
		t.Fatalf("empty breakdown must still sum to 100, got %d", total)
	}
}

// End-to-end over the pure core: one logged run moves every derived view.
func TestWorkoutLoggedScenario(t *testing.T) {
	t.Parallel()
	now := time.Now()

	tracker := metrics.NewWorkoutTracker()
	goals := testGoals()
	before := tracker.Summary().TotalCalories

	run := metrics.Workout{
		ID: "run-1", Activity: "Running", Duration: 30, Calories: 300,
		Intensity: metrics.IntensityHigh, OccurredAt: now,
	}
	tracker.Add(run)
	goals = metrics.ApplyWorkoutLogged(goals)

	if got := tracker.Summary().TotalCalories - before; got != 300 {
		t.Fatalf("calories delta = %d, want 300", got)
	}
	if got := findGoal(t, goals, metrics.GoalWorkout).Current; got != 4 {
		t.Fatalf("workout goal current = %v, want 4", got)
	}
	est := metrics.EstimateHeartRate(tracker.Entries(), now)
	if est.Average <= 70 {
		t.Fatalf("heart-rate average %d should exceed baseline 70", est.Average)
	}
}
