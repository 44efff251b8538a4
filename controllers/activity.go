package controllers

import (
	"errors"
	"net/http"
	"time"

	"doppelx/models"
	"doppelx/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetActivities returns the user's activity log, newest first.
func GetActivities() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		activities, err := services.ListActivities(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

// CreateActivity logs a new daily activity entry.
func CreateActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Date           time.Time `json:"date"`
			StudyHours     float64   `json:"study_hours"`
			Score          float64   `json:"score"`
			Breaks         int       `json:"breaks"`
			SleepHours     float64   `json:"sleep_hours"`
			TasksCompleted int       `json:"tasks_completed"`
			Notes          string    `json:"notes"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity payload"})
			return
		}

		activity := &models.Activity{
			UserID:         userID,
			Date:           body.Date,
			StudyHours:     body.StudyHours,
			Score:          body.Score,
			Breaks:         body.Breaks,
			SleepHours:     body.SleepHours,
			TasksCompleted: body.TasksCompleted,
			Notes:          body.Notes,
		}
		if err := services.CreateActivity(activity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, activity)
	}
}

// UpdateActivity applies a partial update to one of the user's activities.
func UpdateActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Date           *time.Time `json:"date"`
			StudyHours     *float64   `json:"study_hours"`
			Score          *float64   `json:"score"`
			Breaks         *int       `json:"breaks"`
			SleepHours     *float64   `json:"sleep_hours"`
			TasksCompleted *int       `json:"tasks_completed"`
			Notes          *string    `json:"notes"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity payload"})
			return
		}

		update := bson.M{}
		if body.Date != nil {
			update["date"] = *body.Date
		}
		if body.StudyHours != nil {
			update["study_hours"] = *body.StudyHours
		}
		if body.Score != nil {
			update["score"] = *body.Score
		}
		if body.Breaks != nil {
			update["breaks"] = *body.Breaks
		}
		if body.SleepHours != nil {
			update["sleep_hours"] = *body.SleepHours
		}
		if body.TasksCompleted != nil {
			update["tasks_completed"] = *body.TasksCompleted
		}
		if body.Notes != nil {
			update["notes"] = *body.Notes
		}

		activity, err := services.UpdateActivity(userID, c.Param("id"), update)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, activity)
	}
}

// DeleteActivity removes one of the user's activities.
func DeleteActivity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		err := services.DeleteActivity(userID, c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
	}
}

// GetActivityStats returns aggregate statistics over the user's history.
func GetActivityStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		stats, err := services.GetActivityStats(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
