package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"
)

const dashboardCacheTTL = 5 * time.Minute

// DashboardSnapshot is the one payload the rendering layer consumes: every
// derived view recomputed from the user's current collections.
type DashboardSnapshot struct {
	GeneratedAt    time.Time                 `json:"generated_at"`
	Workouts       metrics.WorkoutSummary    `json:"workouts"`
	WorkoutsToday  metrics.WorkoutSummary    `json:"workouts_today"`
	Water          metrics.WaterSummary      `json:"water_today"`
	CurrentWeight  float64                   `json:"current_weight"`
	HeartRate      metrics.HeartRateEstimate `json:"heart_rate"`
	WeightTrend    metrics.WeightTrend       `json:"weight_trend"`
	Goals          []GoalProgress            `json:"goals"`
	Insights       []string                  `json:"insights"`
	WeeklyActivity []metrics.DayActivity     `json:"weekly_activity"`
	Nutrition      []metrics.NutrientShare   `json:"nutrition"`
}

func dashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:%d", userID)
}

// GetDashboard returns the cached snapshot when fresh, otherwise recomputes
// from the database. Aggregates are always derived from surviving rows, so
// a failed mutation can never leave them corrupted.
func GetDashboard(userID uint, now time.Time) (*DashboardSnapshot, error) {
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(context.Background(), dashboardCacheKey(userID)).Bytes()
		if err == nil {
			var snap DashboardSnapshot
			if json.Unmarshal(raw, &snap) == nil {
				return &snap, nil
			}
		}
	}

	snap, err := buildDashboard(userID, now)
	if err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if raw, err := json.Marshal(snap); err == nil {
			config.RedisClient.Set(context.Background(), dashboardCacheKey(userID), raw, dashboardCacheTTL)
		}
	}
	return snap, nil
}

func buildDashboard(userID uint, now time.Time) (*DashboardSnapshot, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	workoutLogs, err := ListWorkouts(userID)
	if err != nil {
		return nil, err
	}
	workouts := WorkoutViews(workoutLogs)

	waterLogs, err := ListWaterLogsByDate(userID, now)
	if err != nil {
		return nil, err
	}

	history, err := GetWeightHistory(userID)
	if err != nil {
		return nil, err
	}

	goals, err := GoalProgressReport(userID)
	if err != nil {
		return nil, err
	}
	goalViews := make([]metrics.Goal, len(goals))
	for i, g := range goals {
		goalViews[i] = g.Goal
	}

	meals, err := TodayMealViews(userID, now)
	if err != nil {
		return nil, err
	}

	estimate := metrics.EstimateHeartRate(workouts, now)

	return &DashboardSnapshot{
		GeneratedAt:    now,
		Workouts:       metrics.SummarizeWorkouts(workouts),
		WorkoutsToday:  metrics.SummarizeWorkouts(metrics.TodayWorkouts(workouts, now)),
		Water:          metrics.SummarizeWater(WaterViews(waterLogs)),
		CurrentWeight:  user.Weight,
		HeartRate:      estimate,
		WeightTrend:    metrics.SynthesizeWeightTrend(user.Weight, history, now, nil),
		Goals:          goals,
		Insights:       metrics.GenerateInsights(estimate.Average, user.Weight, goalViews, workouts),
		WeeklyActivity: metrics.WeeklyActivity(workouts, now),
		Nutrition:      metrics.NutritionBreakdown(meals),
	}, nil
}

// afterHealthDataChange runs once a mutating flow has committed: drop the
// stale snapshot, rebuild, and push the fresh one to connected clients.
// Cache and broadcast are best-effort; the committed rows are the truth.
func afterHealthDataChange(userID uint) {
	if config.RedisClient != nil {
		config.RedisClient.Del(context.Background(), dashboardCacheKey(userID))
	}

	if _dashboardHub == nil {
		return
	}
	snap, err := GetDashboard(userID, time.Now())
	if err != nil {
		if config.Logger != nil {
			config.Logger.Warnw("dashboard rebuild failed", "userID", userID, "err", err)
		}
		return
	}
	_dashboardHub.Broadcast(userID, map[string]interface{}{
		"kind":      "dashboard.updated",
		"dashboard": snap,
	})
}

var _dashboardHub *RealtimeHub

func InitDashboardHub(hub *RealtimeHub) { _dashboardHub = hub }
