package chat

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/grupodoporao/mesa/internal/services/chat Service

import "context"

// Service turns typed chat lines into chat messages and dice rolls
type Service interface {
	// Send posts a line to the chat. Lines starting with "/" are commands.
	Send(ctx context.Context, input *SendInput) (*SendOutput, error)
}
