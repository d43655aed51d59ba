package metrics

import (
	"errors"
	"math"
	"time"
)

type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Workout is the in-memory view of a logged workout, already validated at
// the service boundary.
type Workout struct {
	ID         string
	Activity   string
	Duration   int // minutes
	Calories   int // kcal
	Intensity  Intensity
	OccurredAt time.Time
	Notes      string
}

type WaterEntry struct {
	ID         string
	Amount     int // milliliters
	OccurredAt time.Time
}

type WorkoutSummary struct {
	TotalCalories int `json:"total_calories"`
	TotalDuration int `json:"total_duration"`
	Count         int `json:"count"`
}

type WaterSummary struct {
	TotalAmount     int     `json:"total_amount"`
	Count           int     `json:"count"`
	AveragePerEntry float64 `json:"average_per_entry"`
	MaxEntry        int     `json:"max_entry"`
}

var ErrNotFound = errors.New("not found")

func SummarizeWorkouts(workouts []Workout) WorkoutSummary {
	var s WorkoutSummary
	for _, w := range workouts {
		s.TotalCalories += w.Calories
		s.TotalDuration += w.Duration
		s.Count++
	}
	return s
}

func SummarizeWater(entries []WaterEntry) WaterSummary {
	var s WaterSummary
	for _, e := range entries {
		s.TotalAmount += e.Amount
		s.Count++
		if e.Amount > s.MaxEntry {
			s.MaxEntry = e.Amount
		}
	}
	if s.Count > 0 {
		s.AveragePerEntry = math.Round(float64(s.TotalAmount)/float64(s.Count)*100) / 100
	}
	return s
}

func TodayWorkouts(workouts []Workout, now time.Time) []Workout {
	var out []Workout
	for _, w := range workouts {
		if SameDay(w.OccurredAt, now) {
			out = append(out, w)
		}
	}
	return out
}

func TodayWater(entries []WaterEntry, now time.Time) []WaterEntry {
	var out []WaterEntry
	for _, e := range entries {
		if SameDay(e.OccurredAt, now) {
			out = append(out, e)
		}
	}
	return out
}

// WorkoutTracker keeps running totals updated incrementally: adds contribute
// to the totals, removes reverse exactly the removed entry's contribution.
type WorkoutTracker struct {
	entries map[string]Workout
	summary WorkoutSummary
}

func NewWorkoutTracker(seed ...Workout) *WorkoutTracker {
	t := &WorkoutTracker{entries: make(map[string]Workout)}
	for _, w := range seed {
		t.Add(w)
	}
	return t
}

func (t *WorkoutTracker) Add(w Workout) {
	if _, dup := t.entries[w.ID]; dup {
		return
	}
	t.entries[w.ID] = w
	t.summary.TotalCalories += w.Calories
	t.summary.TotalDuration += w.Duration
	t.summary.Count++
}

// Remove reverses the entry's contribution. Removing an unknown id is a
// no-op reported as ErrNotFound.
func (t *WorkoutTracker) Remove(id string) (Workout, error) {
	w, ok := t.entries[id]
	if !ok {
		return Workout{}, ErrNotFound
	}
	delete(t.entries, id)
	t.summary.TotalCalories -= w.Calories
	t.summary.TotalDuration -= w.Duration
	t.summary.Count--
	return w, nil
}

func (t *WorkoutTracker) Summary() WorkoutSummary { return t.summary }

func (t *WorkoutTracker) Entries() []Workout {
	out := make([]Workout, 0, len(t.entries))
	for _, w := range t.entries {
		out = append(out, w)
	}
	return out
}

type WaterTracker struct {
	entries map[string]WaterEntry
	total   int
}

func NewWaterTracker(seed ...WaterEntry) *WaterTracker {
	t := &WaterTracker{entries: make(map[string]WaterEntry)}
	for _, e := range seed {
		t.Add(e)
	}
	return t
}

func (t *WaterTracker) Add(e WaterEntry) {
	if _, dup := t.entries[e.ID]; dup {
		return
	}
	t.entries[e.ID] = e
	t.total += e.Amount
}

func (t *WaterTracker) Remove(id string) (WaterEntry, error) {
	e, ok := t.entries[id]
	if !ok {
		return WaterEntry{}, ErrNotFound
	}
	delete(t.entries, id)
	t.total -= e.Amount
	return e, nil
}

// Summary recomputes average and max from the surviving entries so a remove
// never leaves a stale maximum behind.
func (t *WaterTracker) Summary() WaterSummary {
	s := WaterSummary{TotalAmount: t.total, Count: len(t.entries)}
	for _, e := range t.entries {
		if e.Amount > s.MaxEntry {
			s.MaxEntry = e.Amount
		}
	}
	if s.Count > 0 {
		s.AveragePerEntry = math.Round(float64(s.TotalAmount)/float64(s.Count)*100) / 100
	}
	return s
}
