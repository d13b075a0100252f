package ai

import (
	"context"

	"mindspace/internal/model"
)

// Provider is the generative chat backend the companion talks to.
type Provider interface {
	// Chat sends the conversation so far plus the new user message and
	// returns the assistant reply.
	Chat(ctx context.Context, system string, history []model.ChatMessage, message string) (string, error)
}
