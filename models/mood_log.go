package models

import (
	"time"

	"gorm.io/gorm"
)

type MoodLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null"`
	Mood       string    `gorm:"size:10;not null"` // Excellent|Good|Neutral|Bad|Terrible
	OccurredAt time.Time `gorm:"index;not null"`
	Notes      string    `gorm:"type:text"`
}
