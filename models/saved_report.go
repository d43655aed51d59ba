package models

import (
	"time"

	"gorm.io/gorm"
)

// SavedReport keeps a generated report payload so it can be re-opened later
// without recomputing. Data holds the report JSON as produced at save time.
type SavedReport struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null"`
	ReportType string    `gorm:"size:10;not null"` // "daily" | "weekly"
	Title      string    `gorm:"size:100;not null"`
	Data       string    `gorm:"type:jsonb"`
	StartDate  time.Time `gorm:"not null"`
	EndDate    time.Time `gorm:"not null"`
}
