package controllers

import (
	"errors"
	"net/http"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

func CreateSleep(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.SleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateSleepLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sleep": log})
}

func ListSleep(c *gin.Context) {
	userID := c.GetUint("userID")

	rows, total, err := services.AdminListSleep(userID, pageFromQuery(c))
	listResponse(c, "sleep", rows, total, err)
}

func CreateVital(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.VitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateVitalLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vital": log})
}

func ListVitals(c *gin.Context) {
	userID := c.GetUint("userID")

	rows, total, err := services.AdminListVitals(userID, pageFromQuery(c))
	listResponse(c, "vitals", rows, total, err)
}

func CreateMood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateMoodLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mood": log})
}

func ListMoods(c *gin.Context) {
	userID := c.GetUint("userID")

	rows, total, err := services.AdminListMoods(userID, pageFromQuery(c))
	listResponse(c, "moods", rows, total, err)
}

func CreateMedication(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.CreateMedicationLog(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"medication": log})
}

func ListMedications(c *gin.Context) {
	userID := c.GetUint("userID")

	rows, total, err := services.AdminListMedications(userID, pageFromQuery(c))
	listResponse(c, "medications", rows, total, err)
}

func SetMedicationTaken(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Taken *bool `json:"taken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetMedicationTaken(userID, c.Param("id"), *input.Taken); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "medication updated"})
}
