package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StudySession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Type      string             `bson:"type" json:"type"`         // pomodoro | infinity
	Duration  int                `bson:"duration" json:"duration"` // seconds
	StartTime time.Time          `bson:"start_time" json:"start_time"`
	EndTime   *time.Time         `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Completed bool               `bson:"completed" json:"completed"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// StudyStats summarizes a user's study session history.
type StudyStats struct {
	TotalSessions      int     `json:"total_sessions"`
	TotalTime          int     `json:"total_time"` // seconds
	CompletedSessions  int     `json:"completed_sessions"`
	PomodoroSessions   int     `json:"pomodoro_sessions"`
	InfinitySessions   int     `json:"infinity_sessions"`
	AverageSessionTime float64 `json:"average_session_time"`
}
