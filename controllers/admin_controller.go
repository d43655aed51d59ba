package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rishikeshkrishna20/Fitness/config"
	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/models"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

func pageFromQuery(c *gin.Context) services.Page {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return services.Page{Number: number, Size: size}
}

// userFilter reads an optional ?user_id= query; 0 means all users.
func userFilter(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
	return uint(id)
}

func listResponse(c *gin.Context, key string, rows interface{}, total int64, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{key: rows, "total": total})
}

func AdminListUsers(c *gin.Context) {
	users, total, err := services.AdminListUsers(pageFromQuery(c))
	listResponse(c, "users", users, total, err)
}

func AdminSetUserDisabled(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input struct {
		Disabled *bool `json:"disabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.AdminSetUserDisabled(uint(userID), *input.Disabled); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func AdminListWorkouts(c *gin.Context) {
	rows, total, err := services.AdminListWorkouts(userFilter(c), pageFromQuery(c))
	listResponse(c, "workouts", rows, total, err)
}

// AdminDeleteWorkout resolves the owner from the row so the delete runs
// the same goal-reversal flow as a user-initiated delete.
func AdminDeleteWorkout(c *gin.Context) {
	var row models.WorkoutLog
	if err := config.DB.Where("public_id = ?", c.Param("id")).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}
	if err := services.DeleteWorkout(row.UserID, row.PublicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

func AdminListWater(c *gin.Context) {
	rows, total, err := services.AdminListWater(userFilter(c), pageFromQuery(c))
	listResponse(c, "water", rows, total, err)
}

func AdminDeleteWater(c *gin.Context) {
	var row models.WaterLog
	if err := config.DB.Where("public_id = ?", c.Param("id")).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "water entry not found"})
		return
	}
	if err := services.DeleteWaterLog(row.UserID, row.PublicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "water entry deleted"})
}

func AdminListMeals(c *gin.Context) {
	rows, total, err := services.AdminListMeals(userFilter(c), pageFromQuery(c))
	listResponse(c, "meals", rows, total, err)
}

func AdminDeleteMeal(c *gin.Context) {
	var row models.MealLog
	if err := config.DB.Where("public_id = ?", c.Param("id")).First(&row).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	if err := services.DeleteMealLog(row.UserID, row.PublicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}

func AdminListSleep(c *gin.Context) {
	rows, total, err := services.AdminListSleep(userFilter(c), pageFromQuery(c))
	listResponse(c, "sleep", rows, total, err)
}

func AdminDeleteSleep(c *gin.Context) {
	adminDeleteByID(c, services.AdminDeleteSleepLog, "sleep log")
}

func AdminListVitals(c *gin.Context) {
	rows, total, err := services.AdminListVitals(userFilter(c), pageFromQuery(c))
	listResponse(c, "vitals", rows, total, err)
}

func AdminDeleteVital(c *gin.Context) {
	adminDeleteByID(c, services.AdminDeleteVitalLog, "vital log")
}

func AdminListMoods(c *gin.Context) {
	rows, total, err := services.AdminListMoods(userFilter(c), pageFromQuery(c))
	listResponse(c, "moods", rows, total, err)
}

func AdminDeleteMood(c *gin.Context) {
	adminDeleteByID(c, services.AdminDeleteMoodLog, "mood log")
}

func AdminListMedications(c *gin.Context) {
	rows, total, err := services.AdminListMedications(userFilter(c), pageFromQuery(c))
	listResponse(c, "medications", rows, total, err)
}

func AdminDeleteMedication(c *gin.Context) {
	adminDeleteByID(c, services.AdminDeleteMedicationLog, "medication log")
}

func adminDeleteByID(c *gin.Context, del func(string) error, noun string) {
	if err := del(c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": noun + " deleted"})
}
