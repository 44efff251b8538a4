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

func GetSchedules() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		schedules, err := services.ListSchedules(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, schedules)
	}
}

func CreateSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Name  string                `json:"name"`
			Tasks []models.ScheduleTask `json:"tasks"`
			Date  time.Time             `json:"date"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid schedule payload"})
			return
		}

		schedule := &models.Schedule{
			UserID: userID,
			Name:   body.Name,
			Tasks:  body.Tasks,
			Date:   body.Date,
		}
		if err := services.CreateSchedule(schedule); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, schedule)
	}
}

// GenerateSchedule assigns sequential hourly slots to the given task names
// and saves the result as a new generated schedule.
func GenerateSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Tasks      []string `json:"tasks"`
			Priorities []string `json:"priorities"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid schedule payload"})
			return
		}

		schedule, err := services.GenerateSchedule(userID, body.Tasks, body.Priorities)
		if errors.Is(err, services.ErrNoTasks) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Tasks array is required"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, schedule)
	}
}

func GetSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		schedule, err := services.GetSchedule(userID, c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Schedule not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, schedule)
	}
}

func UpdateSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Name  *string                `json:"name"`
			Tasks *[]models.ScheduleTask `json:"tasks"`
			Date  *time.Time             `json:"date"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid schedule payload"})
			return
		}

		update := bson.M{}
		if body.Name != nil {
			update["name"] = *body.Name
		}
		if body.Tasks != nil {
			update["tasks"] = *body.Tasks
		}
		if body.Date != nil {
			update["date"] = *body.Date
		}

		schedule, err := services.UpdateSchedule(userID, c.Param("id"), update)
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Schedule not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, schedule)
	}
}

func DeleteSchedule() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		err := services.DeleteSchedule(userID, c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Schedule not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
	}
}
