package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Schedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Name        string             `bson:"name" json:"name"`
	Tasks       []ScheduleTask     `bson:"tasks" json:"tasks"`
	Date        time.Time          `bson:"date" json:"date"`
	IsGenerated bool               `bson:"is_generated" json:"is_generated"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

type ScheduleTask struct {
	Name      string `bson:"name" json:"name"`
	StartTime string `bson:"start_time" json:"start_time"` // "HH:00"
	EndTime   string `bson:"end_time" json:"end_time"`
	Priority  string `bson:"priority" json:"priority"`
}
