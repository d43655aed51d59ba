package services

import (
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"
)

func TestCategoryForActivity(t *testing.T) {
	cases := []struct {
		activity string
		want     string
	}{
		{"Running", models.WorkoutCardio},
		{"Walking", models.WorkoutCardio},
		{"Cycling", models.WorkoutCardio},
		{"Swimming", models.WorkoutCardio},
		{"Dance", models.WorkoutCardio},
		{"Hiking", models.WorkoutCardio},
		{"Rowing", models.WorkoutCardio},
		{"Elliptical", models.WorkoutCardio},
		{"Strength Training", models.WorkoutStrength},
		{"Yoga", models.WorkoutFlexibility},
		{"Pilates", models.WorkoutFlexibility},
		{"Basketball", models.WorkoutSports},
		{"Soccer", models.WorkoutSports},
		{"Tennis", models.WorkoutSports},
		{"HIIT", models.WorkoutCrossfit},
		{"CrossFit", models.WorkoutCrossfit},
		{"Juggling", models.WorkoutOther},
		{"", models.WorkoutOther},
	}

	for _, tc := range cases {
		if got := categoryForActivity(tc.activity); got != tc.want {
			t.Errorf("categoryForActivity(%q) = %q, want %q", tc.activity, got, tc.want)
		}
	}
}

func TestIntensityForCategory(t *testing.T) {
	cases := []struct {
		category string
		want     string
	}{
		{models.WorkoutStrength, "High"},
		{models.WorkoutCrossfit, "High"},
		{models.WorkoutFlexibility, "Low"},
		{models.WorkoutCardio, "Medium"},
		{models.WorkoutSports, "Medium"},
		{models.WorkoutOther, "Medium"},
	}

	for _, tc := range cases {
		if got := IntensityForCategory(tc.category); got != tc.want {
			t.Errorf("IntensityForCategory(%q) = %q, want %q", tc.category, got, tc.want)
		}
	}
}

// An activity mapped to a category and back to an intensity must always land
// on the same value, no matter how many times the record round-trips.
func TestIntensityRoundTripStable(t *testing.T) {
	activities := []string{"Running", "Strength Training", "Yoga", "Tennis", "HIIT", "Juggling"}

	for _, a := range activities {
		first := IntensityForCategory(categoryForActivity(a))
		for i := 0; i < 3; i++ {
			if got := IntensityForCategory(categoryForActivity(a)); got != first {
				t.Fatalf("round trip for %q unstable: got %q then %q", a, first, got)
			}
		}
	}
}

func TestValidateWorkout(t *testing.T) {
	cases := []struct {
		name    string
		in      WorkoutInput
		wantErr bool
	}{
		{"valid", WorkoutInput{Activity: "Running", Duration: 30, Calories: 300, Intensity: "High"}, false},
		{"no intensity ok", WorkoutInput{Activity: "Running", Duration: 30, Calories: 300}, false},
		{"zero duration", WorkoutInput{Activity: "Running", Duration: 0, Calories: 300}, true},
		{"negative duration", WorkoutInput{Activity: "Running", Duration: -5, Calories: 300}, true},
		{"zero calories", WorkoutInput{Activity: "Running", Duration: 30, Calories: 0}, true},
		{"bad intensity", WorkoutInput{Activity: "Running", Duration: 30, Calories: 300, Intensity: "extreme"}, true},
	}

	for _, tc := range cases {
		err := validateWorkout(tc.in)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestWorkoutViewsBackfillsIntensity(t *testing.T) {
	now := time.Now()
	logs := []models.WorkoutLog{
		{PublicID: "a", WorkoutType: models.WorkoutStrength, Activity: "Strength Training", Duration: 45, Calories: 380, OccurredAt: now},
		{PublicID: "b", WorkoutType: models.WorkoutCardio, Activity: "Running", Duration: 30, Calories: 320, Intensity: "High", OccurredAt: now},
	}

	views := WorkoutViews(logs)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].Intensity != metrics.IntensityHigh {
		t.Errorf("missing intensity should backfill from category: got %q", views[0].Intensity)
	}
	if views[1].Intensity != metrics.IntensityHigh {
		t.Errorf("stored intensity should win: got %q", views[1].Intensity)
	}
}
