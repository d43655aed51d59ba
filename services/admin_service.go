package services

import (
	"errors"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"

	"github.com/google/uuid"
)

// Page bounds admin list queries. Page numbers start at 1.
type Page struct {
	Number int
	Size   int
}

func (p Page) normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 || p.Size > 100 {
		p.Size = 20
	}
	return p
}

func (p Page) offset() int { return (p.Number - 1) * p.Size }

type AdminUserView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Disabled  bool      `json:"disabled"`
	Onboarded bool      `json:"onboarded"`
	CreatedAt time.Time `json:"created_at"`
}

func AdminListUsers(p Page) ([]AdminUserView, int64, error) {
	p = p.normalize()

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := config.DB.Order("id asc").Offset(p.offset()).Limit(p.Size).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	views := make([]AdminUserView, len(users))
	for i, u := range users {
		views[i] = AdminUserView{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
			Disabled:  u.Disabled,
			Onboarded: u.Onboarded,
			CreatedAt: u.CreatedAt,
		}
	}
	return views, total, nil
}

// AdminSetUserDisabled flips the account toggle; a disabled account can no
// longer log in or pass the auth middleware.
func AdminSetUserDisabled(userID uint, disabled bool) error {
	res := config.DB.Model(&models.User{}).Where("id = ?", userID).Update("disabled", disabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metrics.ErrNotFound
	}
	return nil
}

func adminList(dest interface{}, model interface{}, userID uint, p Page) (int64, error) {
	p = p.normalize()

	q := config.DB.Model(model)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}

	err := q.Order("id desc").Offset(p.offset()).Limit(p.Size).Find(dest).Error
	return total, err
}

func AdminListWorkouts(userID uint, p Page) ([]models.WorkoutLog, int64, error) {
	var rows []models.WorkoutLog
	total, err := adminList(&rows, &models.WorkoutLog{}, userID, p)
	return rows, total, err
}

func AdminListWater(userID uint, p Page) ([]models.WaterLog, int64, error) {
	var rows []models.WaterLog
	total, err := adminList(&rows, &models.WaterLog{}, userID, p)
	return rows, total, err
}

func AdminListMeals(userID uint, p Page) ([]models.MealLog, int64, error) {
	var rows []models.MealLog
	total, err := adminList(&rows, &models.MealLog{}, userID, p)
	return rows, total, err
}

func AdminListSleep(userID uint, p Page) ([]models.SleepLog, int64, error) {
	var rows []models.SleepLog
	total, err := adminList(&rows, &models.SleepLog{}, userID, p)
	return rows, total, err
}

func AdminListVitals(userID uint, p Page) ([]models.VitalLog, int64, error) {
	var rows []models.VitalLog
	total, err := adminList(&rows, &models.VitalLog{}, userID, p)
	return rows, total, err
}

func AdminListMoods(userID uint, p Page) ([]models.MoodLog, int64, error) {
	var rows []models.MoodLog
	total, err := adminList(&rows, &models.MoodLog{}, userID, p)
	return rows, total, err
}

func AdminListMedications(userID uint, p Page) ([]models.MedicationLog, int64, error) {
	var rows []models.MedicationLog
	total, err := adminList(&rows, &models.MedicationLog{}, userID, p)
	return rows, total, err
}

type SleepInput struct {
	Start    string  `json:"start"` // RFC3339
	End      string  `json:"end"`
	Duration float64 `json:"duration"` // hours; derived from start/end when 0
	Quality  string  `json:"quality"`
	Notes    string  `json:"notes"`
}

func validSleepQuality(q string) bool {
	switch q {
	case "Poor", "Fair", "Good", "Excellent":
		return true
	}
	return false
}

func CreateSleepLog(userID uint, in SleepInput) (*models.SleepLog, error) {
	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return nil, errors.New("start must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return nil, errors.New("end must be RFC3339")
	}
	if !end.After(start) {
		return nil, errors.New("end must be after start")
	}
	if in.Quality != "" && !validSleepQuality(in.Quality) {
		return nil, errors.New("quality must be Poor, Fair, Good or Excellent")
	}

	duration := in.Duration
	if duration <= 0 {
		duration = end.Sub(start).Hours()
	}

	log := models.SleepLog{
		UserID:   userID,
		PublicID: uuid.New().String(),
		Start:    start,
		End:      end,
		Duration: duration,
		Quality:  in.Quality,
		Notes:    in.Notes,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

type VitalInput struct {
	VitalType string `json:"type"`
	Value     string `json:"value"`
	Notes     string `json:"notes"`
}

func validVitalType(t string) bool {
	switch t {
	case "heart_rate", "blood_pressure", "temperature", "glucose", "oxygen":
		return true
	}
	return false
}

func CreateVitalLog(userID uint, in VitalInput) (*models.VitalLog, error) {
	if !validVitalType(in.VitalType) {
		return nil, errors.New("unknown vital type")
	}
	if in.Value == "" {
		return nil, errors.New("value is required")
	}

	log := models.VitalLog{
		UserID:     userID,
		PublicID:   uuid.New().String(),
		VitalType:  in.VitalType,
		Value:      in.Value,
		OccurredAt: time.Now(),
		Notes:      in.Notes,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

type MoodInput struct {
	Mood  string `json:"mood"`
	Notes string `json:"notes"`
}

func validMood(m string) bool {
	switch m {
	case "Excellent", "Good", "Neutral", "Bad", "Terrible":
		return true
	}
	return false
}

func CreateMoodLog(userID uint, in MoodInput) (*models.MoodLog, error) {
	if !validMood(in.Mood) {
		return nil, errors.New("mood must be Excellent, Good, Neutral, Bad or Terrible")
	}

	log := models.MoodLog{
		UserID:     userID,
		PublicID:   uuid.New().String(),
		Mood:       in.Mood,
		OccurredAt: time.Now(),
		Notes:      in.Notes,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

type MedicationInput struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	TimeOfDay string `json:"time"`
	Taken     *bool  `json:"taken"`
}

func CreateMedicationLog(userID uint, in MedicationInput) (*models.MedicationLog, error) {
	if in.Name == "" {
		return nil, errors.New("name is required")
	}

	log := models.MedicationLog{
		UserID:    userID,
		PublicID:  uuid.New().String(),
		Name:      in.Name,
		Dosage:    in.Dosage,
		TimeOfDay: in.TimeOfDay,
	}
	if in.Taken != nil {
		log.Taken = *in.Taken
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// SetMedicationTaken flips the taken flag on a medication entry.
func SetMedicationTaken(userID uint, publicID string, taken bool) error {
	res := config.DB.Model(&models.MedicationLog{}).
		Where("user_id = ? AND public_id = ?", userID, publicID).
		Update("taken", taken)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metrics.ErrNotFound
	}
	return nil
}

func adminDelete(model interface{}, publicID string) error {
	res := config.DB.Where("public_id = ?", publicID).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return metrics.ErrNotFound
	}
	return nil
}

func AdminDeleteSleepLog(publicID string) error      { return adminDelete(&models.SleepLog{}, publicID) }
func AdminDeleteVitalLog(publicID string) error      { return adminDelete(&models.VitalLog{}, publicID) }
func AdminDeleteMoodLog(publicID string) error       { return adminDelete(&models.MoodLog{}, publicID) }
func AdminDeleteMedicationLog(publicID string) error {
	return adminDelete(&models.MedicationLog{}, publicID)
}
