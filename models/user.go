package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email             string `gorm:"uniqueIndex;not null"`
	Password          string `gorm:"not null"`
	FirstName         string
	LastName          string
	Birthday          time.Time
	Gender            string
	Height            float64 // centimeters
	Weight            float64 // kilograms
	BloodType         string
	EmergencyContact  string
	MedicalConditions string // comma separated
	Allergies         string // comma separated
	FitnessGoal       string
	ProfilePicture    string
	Role              string `gorm:"size:16;default:user"` // "user" | "admin"
	MFAEnabled        bool
	MFACode           string
	ResetCode         string
	ResetCodeExp      time.Time
	Disabled          bool
	Onboarded         bool
}
