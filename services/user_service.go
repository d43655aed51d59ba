package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"
	"github.com/Rishikeshkrishna20/Fitness/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Birthday         string      `json:"birthday"` // YYYY-MM-DD
	Gender           string      `json:"gender"`
	Height           float64     `json:"height"`
	Weight           interface{} `json:"weight"` // number or string, normalized below
	BloodType        string      `json:"blood_type"`
	EmergencyContact string      `json:"emergency_contact"`
	FitnessGoal      string      `json:"goal"`
	ProfilePicture   string      `json:"profile_picture"`
	Onboarded        *bool       `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	payload := map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"first_name":        user.FirstName,
		"last_name":         user.LastName,
		"birthday":          user.Birthday.Format("2006-01-02"),
		"age":               age,
		"gender":            user.Gender,
		"height":            user.Height,
		"weight":            user.Weight,
		"blood_type":        user.BloodType,
		"emergency_contact": user.EmergencyContact,
		"goal":              user.FitnessGoal,
		"profile_picture":   user.ProfilePicture,
		"mfa_enabled":       user.MFAEnabled,
		"onboarded":         user.Onboarded,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		payload["bmi"] = bmi
		payload["bmi_category"] = utils.BMICategory(bmi)
	}

	return payload, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.BloodType != "" {
		user.BloodType = input.BloodType
	}
	if input.EmergencyContact != "" {
		user.EmergencyContact = input.EmergencyContact
	}
	if input.FitnessGoal != "" {
		user.FitnessGoal = input.FitnessGoal
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadAvatar(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	if input.Onboarded != nil {
		user.Onboarded = *input.Onboarded
	}

	if input.Weight != nil {
		weight, ok := metrics.ParseWeight(input.Weight)
		if !ok || weight > 500 {
			return errors.New("weight must be between 0 and 500 kg")
		}
		if err := setWeight(user, weight); err != nil {
			return err
		}
		afterHealthDataChange(user.ID)
		return nil
	}

	return config.DB.Save(user).Error
}

// UpdateWeight records a new current weight; today's weight sample is
// replaced rather than duplicated.
func UpdateWeight(email string, raw interface{}) error {
	weight, ok := metrics.ParseWeight(raw)
	if !ok || weight > 500 {
		return errors.New("weight must be between 0 and 500 kg")
	}

	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	if err := setWeight(user, weight); err != nil {
		return err
	}
	afterHealthDataChange(user.ID)
	return nil
}

func setWeight(user *models.User, weight float64) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		user.Weight = weight
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		day := metrics.DayStart(time.Now())
		sample := models.WeightSample{UserID: user.ID, Date: day, Weight: weight}
		return tx.
			Where("user_id = ? AND date = ?", user.ID, day).
			Assign(models.WeightSample{Weight: weight}).
			FirstOrCreate(&sample).Error
	})
}

func GetWeightHistory(userID uint) ([]metrics.WeightSample, error) {
	var rows []models.WeightSample
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]metrics.WeightSample, len(rows))
	for i, r := range rows {
		out[i] = metrics.WeightSample{Date: r.Date, Weight: r.Weight}
	}
	return out, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func DisableUser(email string) error {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return err
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
