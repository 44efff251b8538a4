package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a daily study log entry submitted by the user.
type Activity struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Date           time.Time          `bson:"date" json:"date"`
	StudyHours     float64            `bson:"study_hours" json:"study_hours"`
	Score          float64            `bson:"score" json:"score"` // 0-100
	Breaks         int                `bson:"breaks" json:"breaks"`
	SleepHours     float64            `bson:"sleep_hours" json:"sleep_hours"`
	TasksCompleted int                `bson:"tasks_completed" json:"tasks_completed"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ActivityStats summarizes a user's full activity history.
type ActivityStats struct {
	TotalActivities     int     `json:"total_activities"`
	TotalStudyHours     float64 `json:"total_study_hours"`
	AverageScore        float64 `json:"average_score"`
	TotalTasksCompleted int     `json:"total_tasks_completed"`
	AverageSleepHours   float64 `json:"average_sleep_hours"`
}
