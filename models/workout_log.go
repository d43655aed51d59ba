package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutCategory groups free-text activities into the backend's fixed set.
const (
	WorkoutCardio      = "cardio"
	WorkoutStrength    = "strength"
	WorkoutFlexibility = "flexibility"
	WorkoutSports      = "sports"
	WorkoutCrossfit    = "crossfit"
	WorkoutOther       = "other"
)

type WorkoutLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	PublicID    string    `gorm:"size:36;uniqueIndex;not null"`
	WorkoutType string    `gorm:"size:20;not null"` // one of the category constants
	Activity    string    `gorm:"size:100;not null"`
	Duration    int       `gorm:"not null"` // minutes
	Calories    int       `gorm:"not null"` // kcal
	Intensity   string    `gorm:"size:10"`  // "Low" | "Medium" | "High"
	Notes       string    `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"index;not null"`
}
