package controllers

import (
	"net/http"

	"doppelx/services"

	"github.com/gin-gonic/gin"
)

// SendMessage appends the user's message to their chat log and replies,
// delegating to the responder when one is configured.
func SendMessage(responder services.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var body struct {
			Message string `json:"message"`
		}
		if err := c.BindJSON(&body); err != nil || body.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
			return
		}

		reply, links, err := services.SendMessage(userID, body.Message, responder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": reply, "links": links})
	}
}

// GetChatHistory returns the user's full conversation log.
func GetChatHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		chat, err := services.GetOrCreateChat(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, chat.Messages)
	}
}

func ClearChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		if err := services.ClearChat(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
	}
}
