package metrics

import (
	"fmt"
	"math"
)

// MaxInsights caps the dashboard insight list.
const MaxInsights = 5

const (
	insightHeartRate = "heart_rate"
	insightWeight    = "weight"
	insightGeneral   = "general"
)

// HeartRateZone buckets an average heart rate for commentary.
func HeartRateZone(bpm int) string {
	switch {
	case bpm < 60:
		return "Rest"
	case bpm < 100:
		return "Normal"
	case bpm < 120:
		return "Elevated"
	default:
		return "Active"
	}
}

type insight struct {
	kind string
	text string
}

// InsightList holds display insights with replacement semantics: the newest
// heart-rate insight always occupies the first slot, and at most one weight
// insight is present at a time.
type InsightList struct {
	items []insight
}

func (l *InsightList) SetHeartRate(text string) {
	rest := make([]insight, 0, len(l.items))
	for _, it := range l.items {
		if it.kind != insightHeartRate {
			rest = append(rest, it)
		}
	}
	l.items = append([]insight{{kind: insightHeartRate, text: text}}, rest...)
	l.trim()
}

func (l *InsightList) SetWeight(text string) {
	for i, it := range l.items {
		if it.kind == insightWeight {
			l.items[i].text = text
			return
		}
	}
	l.items = append(l.items, insight{kind: insightWeight, text: text})
	l.trim()
}

func (l *InsightList) Append(text string) {
	l.items = append(l.items, insight{kind: insightGeneral, text: text})
	l.trim()
}

func (l *InsightList) trim() {
	if len(l.items) > MaxInsights {
		l.items = l.items[:MaxInsights]
	}
}

func (l *InsightList) Strings() []string {
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.text
	}
	return out
}

// GenerateInsights turns the current derived state into short display
// strings. The result is never empty: baseline commentary fills in when no
// workouts or weight are present.
func GenerateInsights(heartRate int, weight float64, goals []Goal, workouts []Workout) []string {
	var list InsightList

	switch HeartRateZone(heartRate) {
	case "Rest":
		list.SetHeartRate(fmt.Sprintf("Your average heart rate of %d bpm is in the rest zone", heartRate))
	case "Normal":
		list.SetHeartRate(fmt.Sprintf("Your average heart rate of %d bpm is in the healthy range", heartRate))
	case "Elevated":
		list.SetHeartRate(fmt.Sprintf("Your average heart rate of %d bpm is elevated, consider a recovery day", heartRate))
	default:
		list.SetHeartRate(fmt.Sprintf("Your average heart rate of %d bpm reflects an active day, remember to stay hydrated", heartRate))
	}

	if weight > 0 {
		if target, ok := weightGoalTarget(goals); ok {
			diff := weight - target
			switch {
			case math.Abs(diff) < 0.5:
				list.SetWeight("You're right at your weight goal - great job!")
			case diff > 0:
				list.SetWeight(fmt.Sprintf("You're %.1fkg above your weight goal", diff))
			default:
				list.SetWeight(fmt.Sprintf("You're %.1fkg below your weight goal", -diff))
			}
		} else {
			list.SetWeight("Set a weight goal to track your progress over time")
		}
	}

	if len(workouts) == 0 {
		list.Append("Log a workout to start building your activity insights")
	} else {
		s := SummarizeWorkouts(workouts)
		list.Append(fmt.Sprintf("You've burned %d calories across %d workouts - keep it up!", s.TotalCalories, s.Count))
	}

	return list.Strings()
}

func weightGoalTarget(goals []Goal) (float64, bool) {
	for _, g := range goals {
		if g.Category == GoalWeight && g.Target > 0 {
			return g.Target, true
		}
	}
	return 0, false
}
