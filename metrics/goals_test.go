package metrics_test

import (
	"testing"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func testGoals() []metrics.Goal {
	return []metrics.Goal{
		{ID: "g1", Name: "Daily water intake", Category: metrics.GoalWater, Target: 2500, Current: 2400, Unit: "ml"},
		{ID: "g2", Name: "Weekly workouts", Category: metrics.GoalWorkout, Target: 5, Current: 3, Unit: "sessions"},
		{ID: "g3", Name: "Weight goal", Category: metrics.GoalWeight, Target: 70, Current: 75, Unit: "kg"},
		{ID: "g4", Name: "Sleep duration", Category: metrics.GoalSleep, Target: 8, Current: 7.5, Unit: "hours"},
	}
}

func findGoal(t *testing.T, goals []metrics.Goal, cat metrics.GoalCategory) metrics.Goal {
	t.Helper()
	for _, g := range goals {
		if g.Category == cat {
			return g
		}
	}
	t.Fatalf("no %s goal", cat)
	return metrics.Goal{}
}

func TestApplyWaterAddedClampsToTarget(t *testing.T) {
	t.Parallel()
	goals := metrics.ApplyWaterAdded(testGoals(), 200)
	if got := findGoal(t, goals, metrics.GoalWater).Current; got != 2500 {
		t.Fatalf("water current = %v, want exactly 2500", got)
	}
	// Other categories pass through untouched.
	if got := findGoal(t, goals, metrics.GoalSleep).Current; got != 7.5 {
		t.Fatalf("sleep goal mutated: %v", got)
	}
}

func TestApplyWaterRemovedFloorsAtZero(t *testing.T) {
	t.Parallel()
	goals := testGoals()
	goals[0].Current = 150
	goals = metrics.ApplyWaterRemoved(goals, 250)
	if got := findGoal(t, goals, metrics.GoalWater).Current; got != 0 {
		t.Fatalf("water current = %v, want 0", got)
	}
}

func TestApplyWorkoutLoggedIncrementsAndClamps(t *testing.T) {
	t.Parallel()
	goals := metrics.ApplyWorkoutLogged(testGoals())
	if got := findGoal(t, goals, metrics.GoalWorkout).Current; got != 4 {
		t.Fatalf("workout current = %v, want 4", got)
	}

	goals = metrics.ApplyWorkoutLogged(metrics.ApplyWorkoutLogged(goals))
	if got := findGoal(t, goals, metrics.GoalWorkout).Current; got != 5 {
		t.Fatalf("workout current = %v, want clamp at target 5", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := testGoals()
	metrics.ApplyWaterAdded(in, 200)
	if in[0].Current != 2400 {
		t.Fatalf("input slice mutated: %v", in[0].Current)
	}
}

func TestPercentComplete(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		goal metrics.Goal
		want int
	}{
		{"normal", metrics.Goal{Target: 2500, Current: 2400}, 96},
		{"zero target", metrics.Goal{Target: 0, Current: 100}, 0},
		{"over target by direct edit", metrics.Goal{Target: 70, Current: 75}, 107},
		{"rounding", metrics.Goal{Target: 3, Current: 1}, 33},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := metrics.PercentComplete(tc.goal); got != tc.want {
				t.Fatalf("percent = %d, want %d", got, tc.want)
			}
		})
	}
}
