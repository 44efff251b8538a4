package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"doppelx/services"

	"github.com/gin-gonic/gin"
)

// CreateStudySession starts a new timed session for the current user.
func CreateStudySession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Type     string `json:"type"`     // pomodoro | infinity
			Duration int    `json:"duration"` // seconds
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session payload"})
			return
		}

		session, err := services.CreateStudySession(userID, body.Type, body.Duration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, session)
	}
}

// UpdateStudySession records the final duration and completion of a session.
func UpdateStudySession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Duration  int  `json:"duration"`
			Completed bool `json:"completed"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session payload"})
			return
		}

		session, err := services.CompleteStudySession(userID, c.Param("id"), body.Duration, body.Completed)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Study session not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// GetStudySessions returns recent sessions, newest first.
func GetStudySessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		limit := int64(50)
		if l := c.Query("limit"); l != "" {
			if n, err := strconv.ParseInt(l, 10, 64); err == nil && n > 0 {
				limit = n
			}
		}

		sessions, err := services.ListStudySessions(userID, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

func GetStudyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		stats, err := services.GetStudyStats(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
