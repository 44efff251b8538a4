package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"doppelx/models"

	"google.golang.org/genai"
)

const (
	model = "gemini-1.5-flash"

	systemPrompt = "You are a helpful study assistant. Provide study techniques, tips, " +
		"and recommendations. Include relevant links when possible."
)

// Service delegates chat replies to the Gemini API.
type Service struct {
	client *genai.Client
}

func NewService(apiKey string) (*Service, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	log.Println("AI service initialized")
	return &Service{client: client}, nil
}

// Reply generates an assistant response from the trailing conversation
// history. An empty model response is treated as an error so callers can
// fall back to the built-in replies.
func (s *Service) Reply(ctx context.Context, history []models.ChatMessage) (string, error) {
	result, err := s.client.Models.GenerateContent(
		ctx,
		model,
		genai.Text(buildPrompt(history)),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate AI response: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("no text content found in AI response")
	}
	return text, nil
}

func buildPrompt(history []models.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, m := range history {
		sb.WriteString(m.Role)
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("assistant:")
	return sb.String()
}
