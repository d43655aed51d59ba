package metrics_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func sampleOn(daysAgo int, weight float64, now time.Time) metrics.WeightSample {
	return metrics.WeightSample{Date: metrics.DayStart(now.AddDate(0, 0, -daysAgo)), Weight: weight}
}

func TestSynthesizeNoHistoryCentersOnCurrentWeight(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewSource(1))

	trend := metrics.SynthesizeWeightTrend(70, nil, now, rng)
	if len(trend.Points) != 7 {
		t.Fatalf("synthetic series length = %d, want 7", len(trend.Points))
	}

	// The final sample is today's; its fluctuation amplitude is 0.5/2.
	last := trend.Points[len(trend.Points)-1]
	if math.Abs(last.Weight-70) > 0.3 {
		t.Fatalf("last synthetic weight %.1f strayed from 70", last.Weight)
	}

	// Older samples may wander further but stay within their own bound.
	for i, p := range trend.Points {
		daysBack := 30 - i*5
		bound := (float64(daysBack)/10+0.5)/2 + 0.05 // half-amplitude plus rounding slack
		if math.Abs(p.Weight-70) > bound {
			t.Fatalf("point %d (%s) weight %.1f outside bound %.2f", i, p.Date, p.Weight, bound)
		}
	}
}

func TestSynthesizeUsesRealHistoryWhenSufficient(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	history := []metrics.WeightSample{
		sampleOn(20, 78, now),
		sampleOn(15, 77.2, now),
		sampleOn(10, 76.5, now),
		sampleOn(5, 76, now),
		sampleOn(0, 75.4, now),
	}

	trend := metrics.SynthesizeWeightTrend(75.4, history, now, rand.New(rand.NewSource(1)))
	if len(trend.Points) != 5 {
		t.Fatalf("expected history verbatim, got %d points", len(trend.Points))
	}
	if trend.Points[0].Weight != 78 || trend.Points[4].Weight != 75.4 {
		t.Fatalf("history reordered or mutated: %+v", trend.Points)
	}
	if trend.Description != "You've lost 2.6kg over this period" {
		t.Fatalf("description = %q", trend.Description)
	}
}

func TestSynthesizeKeepsLastTenOfLongHistory(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	var history []metrics.WeightSample
	for i := 14; i >= 0; i-- {
		history = append(history, sampleOn(i, 80-float64(14-i)*0.1, now))
	}

	trend := metrics.SynthesizeWeightTrend(78.6, history, now, nil)
	if len(trend.Points) != 10 {
		t.Fatalf("points = %d, want 10", len(trend.Points))
	}
	if !trend.Points[0].Date.Equal(metrics.DayStart(now.AddDate(0, 0, -9))) {
		t.Fatalf("window start = %v", trend.Points[0].Date)
	}
}

func TestSynthesizeNoWeightNoHistory(t *testing.T) {
	t.Parallel()
	trend := metrics.SynthesizeWeightTrend(0, nil, time.Now(), nil)
	if len(trend.Points) != 0 {
		t.Fatalf("expected empty series, got %d points", len(trend.Points))
	}
	if trend.Description != "Set your current weight to begin tracking" {
		t.Fatalf("description = %q", trend.Description)
	}
}

func TestTrendDescriptions(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	cases := []struct {
		name   string
		first  float64
		last   float64
		want   string
	}{
		{"stable under half a kilo", 75.0, 75.4, "Your weight has been stable"},
		{"gained", 74.0, 76.5, "You've gained 2.5kg over this period"},
		{"lost", 76.5, 74.0, "You've lost 2.5kg over this period"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			history := []metrics.WeightSample{
				sampleOn(20, tc.first, now),
				sampleOn(15, tc.first, now),
				sampleOn(10, (tc.first+tc.last)/2, now),
				sampleOn(5, tc.last, now),
				sampleOn(0, tc.last, now),
			}
			trend := metrics.SynthesizeWeightTrend(tc.last, history, now, nil)
			if trend.Description != tc.want {
				t.Fatalf("description = %q, want %q", trend.Description, tc.want)
			}
		})
	}
}

func TestYAxisBounds(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	history := []metrics.WeightSample{
		sampleOn(20, 74.2, now),
		sampleOn(15, 75.1, now),
		sampleOn(10, 76.8, now),
		sampleOn(5, 75.9, now),
		sampleOn(0, 74.9, now),
	}
	trend := metrics.SynthesizeWeightTrend(74.9, history, now, nil)
	if trend.YMin != 73 { // floor(74.2 - 1)
		t.Fatalf("YMin = %d, want 73", trend.YMin)
	}
	if trend.YMax != 78 { // ceil(76.8 + 1)
		t.Fatalf("YMax = %d, want 78", trend.YMax)
	}
}
