package models

import (
	"time"

	"gorm.io/gorm"
)

type SleepLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	PublicID string    `gorm:"size:36;uniqueIndex;not null"`
	Start    time.Time `gorm:"not null"`
	End      time.Time `gorm:"not null"`
	Duration float64   `gorm:"not null"` // hours
	Quality  string    `gorm:"size:10"`  // Poor|Fair|Good|Excellent
	Notes    string    `gorm:"type:text"`
}
