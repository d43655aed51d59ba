package controllers

import (
	"net/http"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	snapshot, err := services.GetDashboard(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func ListAlerts(c *gin.Context) {
	userID := c.GetUint("userID")

	alerts, err := services.ListAlerts(userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
