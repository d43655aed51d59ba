package fixtures_test

import (
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/fixtures"
)

func TestWorkoutsAreValid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	workouts := fixtures.Workouts(7, now)

	if len(workouts) != 5 {
		t.Fatalf("expected 5 workouts, got %d", len(workouts))
	}
	seen := map[string]bool{}
	for _, w := range workouts {
		if w.UserID != 7 {
			t.Errorf("workout %s has user %d, want 7", w.Activity, w.UserID)
		}
		if w.Duration <= 0 || w.Calories <= 0 {
			t.Errorf("workout %s has non-positive duration or calories", w.Activity)
		}
		if w.OccurredAt.After(now) {
			t.Errorf("workout %s dated in the future", w.Activity)
		}
		if seen[w.PublicID] {
			t.Errorf("duplicate public id %s", w.PublicID)
		}
		seen[w.PublicID] = true
	}
}

func TestWaterLogsSumMatchesGoalSeed(t *testing.T) {
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local)

	total := 0
	for _, l := range fixtures.WaterLogs(1, now) {
		if l.Amount <= 0 {
			t.Fatalf("water amount must be positive, got %d", l.Amount)
		}
		total += l.Amount
	}
	if total != 1700 {
		t.Fatalf("water logs total %d ml, want 1700", total)
	}

	for _, g := range fixtures.Goals(1, now) {
		if g.Category == "water" && g.CurrentValue != float64(total) {
			t.Fatalf("water goal current %v should match logged total %d", g.CurrentValue, total)
		}
	}
}

func TestGoalsCoverCategories(t *testing.T) {
	now := time.Now()
	want := map[string]bool{"water": false, "weight": false, "workout": false, "sleep": false}
	for _, g := range fixtures.Goals(1, now) {
		if _, ok := want[g.Category]; ok {
			want[g.Category] = true
		}
	}
	for cat, found := range want {
		if !found {
			t.Errorf("no %s goal in fixtures", cat)
		}
	}
}
