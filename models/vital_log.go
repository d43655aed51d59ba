package models

import (
	"time"

	"gorm.io/gorm"
)

// VitalLog stores readings as strings so compound values like a "120/80"
// blood pressure survive round trips.
type VitalLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null"`
	VitalType  string    `gorm:"size:20;not null"` // heart_rate|blood_pressure|temperature|glucose|oxygen
	Value      string    `gorm:"size:50;not null"`
	OccurredAt time.Time `gorm:"index;not null"`
	Notes      string    `gorm:"type:text"`
}
