package metrics

import (
	"math"
	"sort"
	"time"
)

// RestingRate is the baseline average reported when no workouts exist.
const RestingRate = 72

const (
	hourlyDecay = 0.85 // per hour since the workout ended
	slotDecay   = 0.8  // per trend slot after the seeded one
	averageCap  = 140
	trendFloor  = 50
	trendCeil   = 160
)

type HeartRatePoint struct {
	Hour string `json:"hour"`
	Rate int    `json:"rate"`
}

type HeartRateEstimate struct {
	Average int              `json:"average"`
	Trend   []HeartRatePoint `json:"trend"`
}

var trendSlots = []struct {
	label string
	hour  int
}{
	{"6AM", 6}, {"8AM", 8}, {"10AM", 10}, {"12PM", 12},
	{"2PM", 14}, {"4PM", 16}, {"6PM", 18},
}

func intensityScore(i Intensity) float64 {
	switch i {
	case IntensityHigh:
		return 3
	case IntensityMedium:
		return 2
	case IntensityLow:
		return 1
	default:
		return 1.5
	}
}

func intensityDelta(i Intensity) float64 {
	switch i {
	case IntensityHigh:
		return 50
	case IntensityMedium:
		return 30
	case IntensityLow:
		return 15
	default:
		return 25
	}
}

func intensityFactor(i Intensity) float64 {
	switch i {
	case IntensityHigh:
		return 1.5
	case IntensityMedium:
		return 1.2
	default:
		return 1.0
	}
}

// EstimateHeartRate derives a synthetic average heart rate and an
// hour-by-hour trend curve from workout history. Recent, intense workouts
// pull the average up; the effect decays with hours elapsed.
func EstimateHeartRate(workouts []Workout, now time.Time) HeartRateEstimate {
	if len(workouts) == 0 {
		return HeartRateEstimate{Average: RestingRate, Trend: flatTrend(RestingRate)}
	}

	today := TodayWorkouts(workouts, now)

	if len(today) == 0 {
		recent := make([]Workout, len(workouts))
		copy(recent, workouts)
		sort.Slice(recent, func(i, j int) bool {
			return recent[i].OccurredAt.After(recent[j].OccurredAt)
		})
		if len(recent) > 3 {
			recent = recent[:3]
		}
		var sum float64
		for _, w := range recent {
			sum += intensityScore(w.Intensity)
		}
		avg := int(math.Round(70 + 2*(sum/float64(len(recent)))))
		return HeartRateEstimate{Average: avg, Trend: flatTrend(avg)}
	}

	var weighted, weights float64
	for _, w := range today {
		hours := now.Sub(w.OccurredAt).Hours()
		if hours < 0 {
			hours = 0
		}
		delta := intensityDelta(w.Intensity) * math.Pow(hourlyDecay, hours)
		weight := (math.Max(0, 24-hours) / 24) * (float64(w.Duration) / 60)
		weighted += delta * weight
		weights += weight
	}

	avg := 70.0
	if weights > 0 {
		avg = 70 + weighted/weights
	}
	if avg > averageCap {
		avg = averageCap
	}
	average := int(math.Round(avg))

	return HeartRateEstimate{Average: average, Trend: trendCurve(average, today, now)}
}

func flatTrend(base int) []HeartRatePoint {
	out := make([]HeartRatePoint, len(trendSlots))
	for i, s := range trendSlots {
		out[i] = HeartRatePoint{Hour: s.label, Rate: clampRate(base)}
	}
	return out
}

// trendCurve seeds every slot at the average, then lets each of today's
// workouts bump its nearest slot and bleed the bump into the following
// slots. Workouts are walked most-recent-first, so when two workouts share
// a slot the one processed last (the older one) supplies the seed value.
func trendCurve(base int, today []Workout, now time.Time) []HeartRatePoint {
	rates := make([]float64, len(trendSlots))
	for i := range rates {
		rates[i] = float64(base)
	}

	ordered := make([]Workout, len(today))
	copy(ordered, today)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].OccurredAt.After(ordered[j].OccurredAt)
	})

	for _, w := range ordered {
		slot := nearestSlot(w.OccurredAt)
		peak := math.Min(trendCeil, math.Round(
			float64(base)+float64(w.Duration)/10+float64(w.Calories)/50*intensityFactor(w.Intensity)))
		rates[slot] = peak
		bump := peak - float64(base)
		for j := slot + 1; j < len(rates); j++ {
			bump *= slotDecay
			rates[j] = float64(base) + bump
		}
	}

	out := make([]HeartRatePoint, len(trendSlots))
	for i, s := range trendSlots {
		out[i] = HeartRatePoint{Hour: s.label, Rate: clampRate(int(math.Round(rates[i])))}
	}
	return out
}

func nearestSlot(t time.Time) int {
	hour := t.Local().Hour()
	best, bestDist := 0, math.MaxInt32
	for i, s := range trendSlots {
		d := hour - s.hour
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func clampRate(r int) int {
	if r < trendFloor {
		return trendFloor
	}
	if r > trendCeil {
		return trendCeil
	}
	return r
}
