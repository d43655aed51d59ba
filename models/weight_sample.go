package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightSample holds one weight per user per calendar day; a new sample for
// the same day replaces the prior one.
type WeightSample struct {
	gorm.Model
	UserID uint      `gorm:"index:idx_weight_user_date,unique;not null"`
	Date   time.Time `gorm:"index:idx_weight_user_date,unique;not null"` // local midnight
	Weight float64   `gorm:"not null"`                                   // kilograms
}
