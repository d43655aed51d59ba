package models

import (
	"time"

	"gorm.io/gorm"
)

type MealLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	PublicID   string    `gorm:"size:36;uniqueIndex;not null"`
	Name       string    `gorm:"size:100;not null"`
	MealType   string    `gorm:"size:20;not null"` // breakfast|lunch|dinner|snack
	Calories   float64   `gorm:"not null"`
	Protein    float64   // grams
	Carbs      float64   // grams
	Fat        float64   // grams
	OccurredAt time.Time `gorm:"index;not null"`
}
