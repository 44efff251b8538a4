package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	StartTime string             `bson:"start_time" json:"start_time"` // "HH:MM"
	EndTime   string             `bson:"end_time" json:"end_time"`
	Priority  string             `bson:"priority" json:"priority"` // low | medium | high
	Date      time.Time          `bson:"date" json:"date"`
	TimeSpent float64            `bson:"time_spent" json:"time_spent"` // minutes
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
