package metrics_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func workoutAt(id string, calories, duration int, at time.Time) metrics.Workout {
	return metrics.Workout{
		ID:         id,
		Activity:   "Running",
		Duration:   duration,
		Calories:   calories,
		Intensity:  metrics.IntensityMedium,
		OccurredAt: at,
	}
}

func TestWorkoutTrackerAddRemoveSequence(t *testing.T) {
	t.Parallel()
	now := time.Now()
	tr := metrics.NewWorkoutTracker()

	tr.Add(workoutAt("a", 300, 30, now))
	tr.Add(workoutAt("b", 450, 45, now))
	tr.Add(workoutAt("c", 200, 60, now))

	if got := tr.Summary().TotalCalories; got != 950 {
		t.Fatalf("total calories after adds = %d, want 950", got)
	}

	if _, err := tr.Remove("b"); err != nil {
		t.Fatalf("remove b: %v", err)
	}

	s := tr.Summary()
	if s.TotalCalories != 500 || s.TotalDuration != 90 || s.Count != 2 {
		t.Fatalf("summary after remove = %+v, want {500 90 2}", s)
	}

	// Total always equals the sum over surviving entries.
	var sum int
	for _, w := range tr.Entries() {
		sum += w.Calories
	}
	if sum != s.TotalCalories {
		t.Fatalf("running total %d diverged from entry sum %d", s.TotalCalories, sum)
	}
}

func TestWorkoutTrackerRemoveUnknownIsNoOp(t *testing.T) {
	t.Parallel()
	tr := metrics.NewWorkoutTracker(workoutAt("a", 300, 30, time.Now()))

	_, err := tr.Remove("nope")
	if !errors.Is(err, metrics.ErrNotFound) {
		t.Fatalf("remove unknown id: err = %v, want ErrNotFound", err)
	}
	if got := tr.Summary().TotalCalories; got != 300 {
		t.Fatalf("total changed on failed remove: %d", got)
	}
}

func TestWaterTrackerDeleteReversesContribution(t *testing.T) {
	t.Parallel()
	now := time.Now()
	tr := metrics.NewWaterTracker(
		metrics.WaterEntry{ID: "w1", Amount: 350, OccurredAt: now},
		metrics.WaterEntry{ID: "w2", Amount: 250, OccurredAt: now},
		metrics.WaterEntry{ID: "w3", Amount: 400, OccurredAt: now},
	)
	if got := tr.Summary().TotalAmount; got != 1000 {
		t.Fatalf("total = %d, want 1000", got)
	}

	removed, err := tr.Remove("w2")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Amount != 250 {
		t.Fatalf("removed amount = %d, want 250", removed.Amount)
	}

	s := tr.Summary()
	if s.TotalAmount != 750 {
		t.Fatalf("total after delete = %d, want 750", s.TotalAmount)
	}
	if s.MaxEntry != 400 {
		t.Fatalf("max after delete = %d, want 400", s.MaxEntry)
	}
}

func TestSummarizeWaterEmptyYieldsZeroAverage(t *testing.T) {
	t.Parallel()
	s := metrics.SummarizeWater(nil)
	if s.AveragePerEntry != 0 || s.MaxEntry != 0 || s.TotalAmount != 0 {
		t.Fatalf("empty summary = %+v, want zeros", s)
	}
}

func TestSummarizeWaterAverageAndMax(t *testing.T) {
	t.Parallel()
	now := time.Now()
	s := metrics.SummarizeWater([]metrics.WaterEntry{
		{ID: "1", Amount: 300, OccurredAt: now},
		{ID: "2", Amount: 500, OccurredAt: now},
		{ID: "3", Amount: 250, OccurredAt: now},
	})
	if s.TotalAmount != 1050 || s.Count != 3 {
		t.Fatalf("summary = %+v", s)
	}
	if s.AveragePerEntry != 350 {
		t.Fatalf("average = %v, want 350", s.AveragePerEntry)
	}
	if s.MaxEntry != 500 {
		t.Fatalf("max = %d, want 500", s.MaxEntry)
	}
}

func TestTodayWorkoutsIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 23, 30, 0, 0, time.Local)
	workouts := []metrics.Workout{
		workoutAt("early", 100, 20, time.Date(2026, 9, 1, 0, 5, 0, 0, time.Local)),
		workoutAt("yesterday", 100, 20, time.Date(2026, 8, 31, 23, 55, 0, 0, time.Local)),
	}
	today := metrics.TodayWorkouts(workouts, now)
	if len(today) != 1 || today[0].ID != "early" {
		t.Fatalf("today filter = %+v, want just the early entry", today)
	}
}

func TestParseWeight(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{75.5, 75.5, true},
		{"75.5", 75.5, true},
		{70, 70, true},
		{"abc", 0, false},
		{nil, 0, false},
		{-3.0, -3, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.in), func(t *testing.T) {
			got, ok := metrics.ParseWeight(tc.in)
			if ok != tc.ok || (ok && got != tc.want) {
				t.Fatalf("ParseWeight(%v) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}
