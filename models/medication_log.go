package models

import "gorm.io/gorm"

type MedicationLog struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	PublicID  string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"size:100;not null"`
	Dosage    string `gorm:"size:50"`
	TimeOfDay string `gorm:"size:5"` // "HH:MM"
	Taken     bool
}
