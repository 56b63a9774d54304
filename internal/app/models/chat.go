package models

import (
	"medconnect-service/internal/pkg/dto/responses"
	"time"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type Conversation struct {
	ID        string        `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (c Conversation) ConvertIntoResponse() responses.Conversation {
	messages := make([]responses.ChatMessage, 0, len(c.Messages))
	for _, message := range c.Messages {
		messages = append(messages, responses.ChatMessage{
			ID:        message.ID,
			Role:      string(message.Role),
			Content:   message.Content,
			Timestamp: message.Timestamp,
		})
	}
	return responses.Conversation{
		ID:        c.ID,
		Messages:  messages,
		CreatedAt: c.CreatedAt,
	}
}
