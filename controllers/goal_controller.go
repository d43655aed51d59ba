package controllers

import (
	"errors"
	"net/http"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

func ListGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.ListGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

func CreateGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.CreateGoal(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

func UpdateGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoal(userID, c.Param("id"), input)
	if err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

func DeleteGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteGoal(userID, c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}

func GoalProgress(c *gin.Context) {
	userID := c.GetUint("userID")

	report, err := services.GoalProgressReport(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"progress": report})
}
