package services

import (
	"context"
	"errors"
	"log"
	"time"

	"doppelx/config"
	"doppelx/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Responder generates an assistant reply from recent conversation history.
// Production binds it to the Gemini-backed ai.Service; tests use a stub.
type Responder interface {
	Reply(ctx context.Context, history []models.ChatMessage) (string, error)
}

// contextWindow is how many trailing messages are sent to the responder.
const contextWindow = 5

// GetOrCreateChat returns the user's conversation log, creating an empty
// one on first access.
func GetOrCreateChat(userID string) (*models.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("chats")

	var chat models.Chat
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&chat)
	if err == nil {
		return &chat, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	now := time.Now()
	chat = models.Chat{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Messages:  []models.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := coll.InsertOne(ctx, chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// SendMessage appends the user's message to the log, generates a reply
// (delegating to the responder when available, otherwise using the
// built-in responses) and appends that too. A responder failure falls
// back to the built-in response and is never surfaced to the caller.
func SendMessage(userID, message string, responder Responder) (string, []models.ChatLink, error) {
	chat, err := GetOrCreateChat(userID)
	if err != nil {
		return "", nil, err
	}

	chat.Messages = append(chat.Messages, models.ChatMessage{
		Role:      "user",
		Content:   message,
		Timestamp: time.Now(),
	})

	reply := ""
	if responder != nil {
		history := chat.Messages
		if len(history) > contextWindow {
			history = history[len(history)-contextWindow:]
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		reply, err = responder.Reply(ctx, history)
		cancel()
		if err != nil {
			log.Printf("responder error, falling back to built-in reply: %v", err)
			reply = ""
		}
	}
	if reply == "" {
		reply = CannedResponse(message)
	}

	links := ExtractLinks(message)

	chat.Messages = append(chat.Messages, models.ChatMessage{
		Role:      "assistant",
		Content:   reply,
		Links:     links,
		Timestamp: time.Now(),
	})

	if err := saveMessages(chat); err != nil {
		return "", nil, err
	}
	return reply, links, nil
}

func saveMessages(chat *models.Chat) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("chats")

	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": chat.ID},
		bson.M{"$set": bson.M{"messages": chat.Messages, "updated_at": time.Now()}},
	)
	return err
}

// ClearChat empties the user's conversation log.
func ClearChat(userID string) error {
	chat, err := GetOrCreateChat(userID)
	if err != nil {
		return err
	}
	chat.Messages = []models.ChatMessage{}
	return saveMessages(chat)
}
