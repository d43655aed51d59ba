package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GoalInput struct {
	Name     string     `json:"name" binding:"required"`
	Category string     `json:"category" binding:"required"`
	Target   float64    `json:"target"`
	Current  float64    `json:"current"`
	Unit     string     `json:"unit"`
	Deadline *time.Time `json:"deadline"`
}

func validGoalCategory(c string) bool {
	switch metrics.GoalCategory(c) {
	case metrics.GoalWeight, metrics.GoalWorkout, metrics.GoalNutrition,
		metrics.GoalWater, metrics.GoalSleep, metrics.GoalOther:
		return true
	}
	return false
}

func CreateGoal(userID uint, in GoalInput) (*models.HealthGoal, error) {
	if !validGoalCategory(in.Category) {
		return nil, fmt.Errorf("unknown goal category %q", in.Category)
	}
	if in.Current < 0 {
		return nil, errors.New("current must not be negative")
	}

	goal := models.HealthGoal{
		UserID:       userID,
		PublicID:     uuid.NewString(),
		Name:         in.Name,
		Category:     in.Category,
		TargetValue:  in.Target,
		CurrentValue: in.Current,
		Unit:         in.Unit,
		Deadline:     in.Deadline,
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}

	afterHealthDataChange(userID)
	return &goal, nil
}

// UpdateGoal is a direct edit: unlike automatic events it may push current
// past the target.
func UpdateGoal(userID uint, publicID string, in GoalInput) (*models.HealthGoal, error) {
	if !validGoalCategory(in.Category) {
		return nil, fmt.Errorf("unknown goal category %q", in.Category)
	}
	if in.Current < 0 {
		return nil, errors.New("current must not be negative")
	}

	var goal models.HealthGoal
	err := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, metrics.ErrNotFound
		}
		return nil, err
	}

	goal.Name = in.Name
	goal.Category = in.Category
	goal.TargetValue = in.Target
	goal.CurrentValue = in.Current
	goal.Unit = in.Unit
	goal.Deadline = in.Deadline

	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}

	afterHealthDataChange(userID)
	return &goal, nil
}

func DeleteGoal(userID uint, publicID string) error {
	res := config.DB.Where("user_id = ? AND public_id = ?", userID, publicID).Delete(&models.HealthGoal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metrics.ErrNotFound
	}

	afterHealthDataChange(userID)
	return nil
}

func ListGoals(userID uint) ([]models.HealthGoal, error) {
	var goals []models.HealthGoal
	err := config.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&goals).Error
	return goals, err
}

func GoalViews(goals []models.HealthGoal) []metrics.Goal {
	out := make([]metrics.Goal, len(goals))
	for i, g := range goals {
		out[i] = metrics.Goal{
			ID:       g.PublicID,
			Name:     g.Name,
			Category: metrics.GoalCategory(g.Category),
			Target:   g.TargetValue,
			Current:  g.CurrentValue,
			Unit:     g.Unit,
			Deadline: g.Deadline,
		}
	}
	return out
}

type GoalProgress struct {
	Goal    metrics.Goal `json:"goal"`
	Percent int          `json:"percent"`
}

func GoalProgressReport(userID uint) ([]GoalProgress, error) {
	goals, err := ListGoals(userID)
	if err != nil {
		return nil, err
	}
	views := GoalViews(goals)
	out := make([]GoalProgress, len(views))
	for i, g := range views {
		out[i] = GoalProgress{Goal: g, Percent: metrics.PercentComplete(g)}
	}
	return out, nil
}

// bumpGoals loads the user's goals inside the surrounding transaction,
// applies a pure transform from the metrics package and persists any rows
// whose current value moved. Goals that just reached their target emit a
// goal alert.
func bumpGoals(tx *gorm.DB, userID uint, apply func([]metrics.Goal) []metrics.Goal) error {
	var rows []models.HealthGoal
	if err := tx.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	updated := apply(GoalViews(rows))
	for i := range rows {
		if rows[i].CurrentValue == updated[i].Current {
			continue
		}
		achieved := updated[i].Current >= updated[i].Target &&
			rows[i].CurrentValue < rows[i].TargetValue && rows[i].TargetValue > 0

		rows[i].CurrentValue = updated[i].Current
		if err := tx.Save(&rows[i]).Error; err != nil {
			return err
		}
		if achieved {
			EmitAlert(userID, "goal", fmt.Sprintf("Goal achieved: %s", rows[i].Name))
		}
	}
	return nil
}
