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

func GetTasks() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		tasks, err := services.ListTasks(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func CreateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Name      string    `json:"name"`
			StartTime string    `json:"start_time"`
			EndTime   string    `json:"end_time"`
			Priority  string    `json:"priority"`
			Date      time.Time `json:"date"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task payload"})
			return
		}

		task := &models.Task{
			UserID:    userID,
			Name:      body.Name,
			StartTime: body.StartTime,
			EndTime:   body.EndTime,
			Priority:  body.Priority,
			Date:      body.Date,
		}
		if err := services.CreateTask(task); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func UpdateTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Name      *string    `json:"name"`
			StartTime *string    `json:"start_time"`
			EndTime   *string    `json:"end_time"`
			Priority  *string    `json:"priority"`
			Date      *time.Time `json:"date"`
			TimeSpent *float64   `json:"time_spent"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task payload"})
			return
		}

		update := bson.M{}
		if body.Name != nil {
			update["name"] = *body.Name
		}
		if body.StartTime != nil {
			update["start_time"] = *body.StartTime
		}
		if body.EndTime != nil {
			update["end_time"] = *body.EndTime
		}
		if body.Priority != nil {
			update["priority"] = *body.Priority
		}
		if body.Date != nil {
			update["date"] = *body.Date
		}
		if body.TimeSpent != nil {
			update["time_spent"] = *body.TimeSpent
		}

		task, err := services.UpdateTask(userID, c.Param("id"), update)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func DeleteTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		err := services.DeleteTask(userID, c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
	}
}

// UpdateTimeSpent records the minutes tracked against a task.
func UpdateTimeSpent() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			TimeSpent float64 `json:"time_spent"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
			return
		}

		task, err := services.UpdateTimeSpent(userID, c.Param("id"), body.TimeSpent)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, task)
	}
}
