package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthGoal tracks a target/current pair for one goal category. CurrentValue
// is clamped by automatic events (workout logged, water added) but a direct
// edit may push it past the target.
type HealthGoal struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	PublicID     string `gorm:"size:36;uniqueIndex;not null"`
	Name         string `gorm:"size:100;not null"`
	Category     string `gorm:"size:20;index;not null"` // weight|workout|nutrition|water|sleep|other
	TargetValue  float64
	CurrentValue float64
	Unit         string `gorm:"size:20"`
	Deadline     *time.Time
}
