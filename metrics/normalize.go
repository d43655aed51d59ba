package metrics

import (
	"encoding/json"
	"strconv"
	"time"
)

// ParseWeight normalizes a weight value coming from loosely typed JSON,
// where the backend may serialize decimals as strings.
func ParseWeight(v interface{}) (float64, bool) {
	switch w := v.(type) {
	case float64:
		return w, w > 0
	case float32:
		return float64(w), w > 0
	case int:
		return float64(w), w > 0
	case int64:
		return float64(w), w > 0
	case json.Number:
		f, err := w.Float64()
		return f, err == nil && f > 0
	case string:
		f, err := strconv.ParseFloat(w, 64)
		return f, err == nil && f > 0
	default:
		return 0, false
	}
}

func DayStart(t time.Time) time.Time {
	tt := t.Local()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// SameDay compares the local calendar-day component, ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func DayLabel(t time.Time) string {
	return t.Local().Format("Mon")
}
