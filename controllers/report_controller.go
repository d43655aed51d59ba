package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Rishikeshkrishna20/Fitness/metrics"
	"github.com/Rishikeshkrishna20/Fitness/services"

	"github.com/gin-gonic/gin"
)

func reportDate(c *gin.Context) (time.Time, error) {
	date, ok, err := parseDateParam(c)
	if err != nil {
		return time.Time{}, err
	}
	if !ok {
		return time.Now(), nil
	}
	return date, nil
}

func GetDailyReport(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := services.GenerateDailyReport(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("save") == "true" {
		day := metrics.DayStart(date)
		if _, err := services.SaveReport(userID, "daily", day, day, report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, report)
}

func GetWeeklyReport(c *gin.Context) {
	userID := c.GetUint("userID")

	date, err := reportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := services.GenerateWeeklyReport(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("save") == "true" {
		start, err := time.ParseInLocation("2006-01-02", report.StartDate, time.Local)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		end := start.AddDate(0, 0, 6)
		if _, err := services.SaveReport(userID, "weekly", start, end, report); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, report)
}

func ListSavedReports(c *gin.Context) {
	userID := c.GetUint("userID")

	reports, err := services.ListSavedReports(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func GetSavedReport(c *gin.Context) {
	userID := c.GetUint("userID")

	report, err := services.GetSavedReport(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func DeleteSavedReport(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := services.DeleteSavedReport(userID, c.Param("id")); err != nil {
		if errors.Is(err, metrics.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted"})
}
