package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

// parseDateParam reads an optional ?date=YYYY-MM-DD query; absent means today.
func parseDateParam(c *gin.Context) (time.Time, bool, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, false, nil
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, false, errors.New("date must be YYYY-MM-DD")
	}
	return date, true, nil
}

func ListWorkouts(c *gin.Context) {
	userID := c.GetUint("userID")

	date, hasDate, err := parseDateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var logs interface{}
	if hasDate {
		logs, err = services.ListWorkoutsByDate(userID, date)
	} else {
		logs, err = services.ListWorkouts(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": logs})
}

func CreateWorkout(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateWorkout(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"workout": log})
}

func DeleteWorkout(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteWorkout(userID, c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout deleted"})
}

func ListWater(c *gin.Context) {
	userID := c.GetUint("userID")

	date, hasDate, err := parseDateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var logs interface{}
	if hasDate {
		logs, err = services.ListWaterLogsByDate(userID, date)
	} else {
		logs, err = services.ListWaterLogs(userID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"water": logs})
}

func CreateWater(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.WaterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateWaterLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"water": log})
}

func DeleteWater(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteWaterLog(userID, c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "water entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "water entry deleted"})
}

func DailyWaterTotal(c *gin.Context) {
	userID := c.GetUint("userID")

	date, hasDate, err := parseDateParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !hasDate {
		date = time.Now()
	}

	total, err := services.DailyWaterTotal(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date.Format("2006-01-02"), "total": total})
}

func ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	logs, err := services.ListMealLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": logs})
}

func CreateMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateMealLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": log})
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteMealLog(userID, c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
