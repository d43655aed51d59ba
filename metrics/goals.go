package metrics

import (
	"math"
	"time"
)

type GoalCategory string

const (
	GoalWeight    GoalCategory = "weight"
	GoalWorkout   GoalCategory = "workout"
	GoalNutrition GoalCategory = "nutrition"
	GoalWater     GoalCategory = "water"
	GoalSleep     GoalCategory = "sleep"
	GoalOther     GoalCategory = "other"
)

type Goal struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category GoalCategory `json:"category"`
	Target   float64      `json:"target"`
	Current  float64      `json:"current"`
	Unit     string       `json:"unit"`
	Deadline *time.Time   `json:"deadline,omitempty"`
}

// ApplyWorkoutLogged bumps the workout-category goal by one session, clamped
// to its target. Other categories pass through unchanged.
func ApplyWorkoutLogged(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if g.Category == GoalWorkout {
			g.Current = math.Min(g.Current+1, g.Target)
		}
		out[i] = g
	}
	return out
}

func ApplyWaterAdded(goals []Goal, amount float64) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if g.Category == GoalWater {
			g.Current = math.Min(g.Current+amount, g.Target)
		}
		out[i] = g
	}
	return out
}

// ApplyWaterRemoved reverses a deleted water entry; current never drops
// below zero.
func ApplyWaterRemoved(goals []Goal, amount float64) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if g.Category == GoalWater {
			g.Current = math.Max(0, g.Current-amount)
		}
		out[i] = g
	}
	return out
}

// PercentComplete reports display progress; a zero target reads as 0%
// rather than dividing by zero.
func PercentComplete(g Goal) int {
	if g.Target <= 0 {
		return 0
	}
	return int(math.Round(g.Current / g.Target * 100))
}
