package models

import (
	"time"

	"gorm.io/gorm"
)

type WaterLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null"`
	Amount     int       `gorm:"not null"` // milliliters
	OccurredAt time.Time `gorm:"index;not null"`
}
