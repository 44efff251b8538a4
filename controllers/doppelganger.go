package controllers

import (
	"errors"
	"net/http"

	"doppelx/services"

	"github.com/gin-gonic/gin"
)

// CreateAnalysis runs a fresh doppelganger analysis. Baseline metrics may
// be supplied in the body; otherwise they are derived from recent activity.
func CreateAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			StudyHours      float64 `json:"study_hours"`
			Breaks          float64 `json:"breaks"`
			SleepHours      float64 `json:"sleep_hours"`
			PastPerformance float64 `json:"past_performance"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid analysis payload"})
			return
		}

		analysis, err := services.CreateAnalysis(userID, services.Baseline{
			StudyHours:      body.StudyHours,
			Breaks:          body.Breaks,
			SleepHours:      body.SleepHours,
			PastPerformance: body.PastPerformance,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, analysis)
	}
}

// GetAnalyses lists all retained analyses, newest first.
func GetAnalyses() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		analyses, err := services.ListAnalyses(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, analyses)
	}
}

func GetLatestAnalysis() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		analysis, err := services.LatestAnalysis(userID)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No analysis found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, analysis)
	}
}

// SimulateScenario projects a what-if scenario without persisting anything.
func SimulateScenario() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			StudyHours float64 `json:"study_hours"`
			Breaks     float64 `json:"breaks"`
			SleepHours float64 `json:"sleep_hours"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid scenario payload"})
			return
		}

		result, err := services.SimulateScenario(userID, body.StudyHours, body.Breaks, body.SleepHours)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
