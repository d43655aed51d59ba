package metrics

import (
	"math"
	"time"
)

type DayActivity struct {
	Day      string `json:"day"`
	Calories int    `json:"calories"`
	Workout  int    `json:"workout"` // minutes
}

// WeeklyActivity shapes the trailing seven days of workouts into the
// dashboard's activity chart series, oldest day first.
func WeeklyActivity(workouts []Workout, now time.Time) []DayActivity {
	out := make([]DayActivity, 7)
	idx := map[string]int{}
	for i := 0; i < 7; i++ {
		d := DayStart(now.AddDate(0, 0, i-6))
		out[i] = DayActivity{Day: DayLabel(d)}
		idx[d.Format("2006-01-02")] = i
	}
	for _, w := range workouts {
		key := DayStart(w.OccurredAt).Format("2006-01-02")
		if i, ok := idx[key]; ok {
			out[i].Calories += w.Calories
			out[i].Workout += w.Duration
		}
	}
	return out
}

type Meal struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type NutrientShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"` // percent
}

// NutritionBreakdown reports the macronutrient split of the given meals as
// whole percentages. Empty input yields an even split so the chart never
// divides by zero.
func NutritionBreakdown(meals []Meal) []NutrientShare {
	var protein, carbs, fat float64
	for _, m := range meals {
		protein += m.Protein
		carbs += m.Carbs
		fat += m.Fat
	}
	total := protein + carbs + fat
	if total <= 0 {
		return []NutrientShare{{"Protein", 33}, {"Carbs", 34}, {"Fat", 33}}
	}
	pct := func(v float64) int { return int(math.Round(v / total * 100)) }
	return []NutrientShare{
		{"Protein", pct(protein)},
		{"Carbs", pct(carbs)},
		{"Fat", pct(fat)},
	}
}
