package metrics_test

import (
	"testing"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
)

func TestEstimateNoWorkoutsIsRestingRate(t *testing.T) {
	t.Parallel()
	est := metrics.EstimateHeartRate(nil, time.Now())
	if est.Average != 72 {
		t.Fatalf("average = %d, want 72", est.Average)
	}
	if len(est.Trend) != 7 {
		t.Fatalf("trend slots = %d, want 7", len(est.Trend))
	}
	for _, p := range est.Trend {
		if p.Rate != 72 {
			t.Fatalf("flat baseline expected, got %s=%d", p.Hour, p.Rate)
		}
	}
}

func TestEstimateHistoricalOnlyUsesIntensityScores(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	cases := []struct {
		name     string
		workouts []metrics.Workout
		want     int
	}{
		{
			name: "high medium low averages to 74",
			workouts: []metrics.Workout{
				{ID: "1", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: yesterday},
				{ID: "2", Intensity: metrics.IntensityMedium, Duration: 30, Calories: 300, OccurredAt: yesterday.Add(-time.Hour)},
				{ID: "3", Intensity: metrics.IntensityLow, Duration: 30, Calories: 300, OccurredAt: yesterday.Add(-2 * time.Hour)},
			},
			want: 74, // 70 + 2*(3+2+1)/3
		},
		{
			name: "unspecified intensity scores 1.5",
			workouts: []metrics.Workout{
				{ID: "1", Duration: 30, Calories: 300, OccurredAt: yesterday},
			},
			want: 73, // 70 + 2*1.5
		},
		{
			name: "only three most recent count",
			workouts: []metrics.Workout{
				{ID: "1", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: yesterday},
				{ID: "2", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: yesterday.Add(-time.Hour)},
				{ID: "3", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: yesterday.Add(-2 * time.Hour)},
				{ID: "4", Intensity: metrics.IntensityLow, Duration: 30, Calories: 300, OccurredAt: yesterday.Add(-3 * time.Hour)},
			},
			want: 76, // the Low workout falls outside the 3 most recent
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			est := metrics.EstimateHeartRate(tc.workouts, now)
			if est.Average != tc.want {
				t.Fatalf("average = %d, want %d", est.Average, tc.want)
			}
		})
	}
}

func TestEstimateTodayWorkoutRaisesAverage(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	workouts := []metrics.Workout{
		{ID: "1", Activity: "Running", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: now},
	}
	est := metrics.EstimateHeartRate(workouts, now)

	// Zero hours elapsed: full +50 delta on the 70 base.
	if est.Average != 120 {
		t.Fatalf("average = %d, want 120", est.Average)
	}
	if est.Average <= 70 {
		t.Fatalf("today workout must push average above baseline 70")
	}
}

func TestEstimateTrendSeedAndDecay(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	workouts := []metrics.Workout{
		{ID: "1", Activity: "Running", Intensity: metrics.IntensityHigh, Duration: 30, Calories: 300, OccurredAt: now},
	}
	est := metrics.EstimateHeartRate(workouts, now)

	// base 120; peak at the 10AM slot = round(120 + 30/10 + 300/50*1.5) = 132,
	// then the 12-point bump decays by 0.8 per slot.
	want := []int{120, 120, 132, 130, 128, 126, 125}
	for i, p := range est.Trend {
		if p.Rate != want[i] {
			t.Fatalf("trend[%d] (%s) = %d, want %d (full trend %+v)", i, p.Hour, p.Rate, want[i], est.Trend)
		}
	}
}

func TestEstimateBoundsHold(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, time.Local)
	var workouts []metrics.Workout
	for h := 6; h <= 18; h++ {
		workouts = append(workouts, metrics.Workout{
			ID:         string(rune('a' + h)),
			Intensity:  metrics.IntensityHigh,
			Duration:   180,
			Calories:   2000,
			OccurredAt: time.Date(2026, 9, 1, h, 0, 0, 0, time.Local),
		})
	}
	est := metrics.EstimateHeartRate(workouts, now)
	if est.Average < 0 || est.Average > 140 {
		t.Fatalf("average %d outside [0,140]", est.Average)
	}
	for _, p := range est.Trend {
		if p.Rate < 50 || p.Rate > 160 {
			t.Fatalf("trend point %s=%d outside [50,160]", p.Hour, p.Rate)
		}
	}
}

func TestEstimateSameSlotOlderWorkoutSeeds(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	older := metrics.Workout{ID: "older", Intensity: metrics.IntensityLow, Duration: 20, Calories: 100,
		OccurredAt: time.Date(2026, 9, 1, 10, 5, 0, 0, time.Local)}
	newer := metrics.Workout{ID: "newer", Intensity: metrics.IntensityHigh, Duration: 60, Calories: 600,
		OccurredAt: time.Date(2026, 9, 1, 10, 45, 0, 0, time.Local)}

	// Both map to the 10AM slot. Processing runs most-recent-first, so the
	// older workout is applied last and supplies the slot's final seed.
	est := metrics.EstimateHeartRate([]metrics.Workout{older, newer}, now)
	flipped := metrics.EstimateHeartRate([]metrics.Workout{newer, older}, now)
	for i := range est.Trend {
		if est.Trend[i] != flipped.Trend[i] {
			t.Fatalf("trend depends on input order: %+v vs %+v", est.Trend, flipped.Trend)
		}
	}
}
