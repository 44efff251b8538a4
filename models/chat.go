package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat holds the single conversation log of a user, created lazily on first access.
type Chat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Messages  []ChatMessage      `bson:"messages" json:"messages"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ChatMessage struct {
	Role      string     `bson:"role" json:"role"` // user | assistant
	Content   string     `bson:"content" json:"content"`
	Links     []ChatLink `bson:"links,omitempty" json:"links,omitempty"`
	Timestamp time.Time  `bson:"timestamp" json:"timestamp"`
}

type ChatLink struct {
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}
