// Package chat handles the table chat: plain messages and the slash
// commands that roll dice.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/services/game"
)

type service struct {
	game   GameStore
	logger *slog.Logger
}

// New creates a new chat service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Game == nil {
		return nil, ErrNilGameStore
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		game:   cfg.Game,
		logger: logger.With("component", "chat"),
	}, nil
}

// Send posts a line. Blank lines are ignored. Unknown commands and
// impossible rolls are answered with an error message instead of an
// error return, so the caller only sees errors it cannot show in chat.
func (s *service) Send(ctx context.Context, input *SendInput) (*SendOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if strings.TrimSpace(input.Message) == "" {
		return &SendOutput{}, nil
	}

	user := input.User
	if user == "" {
		user = AnonymousUser
	}

	if !strings.HasPrefix(input.Message, "/") {
		msg := s.game.AddChatMessage(input.Message, user, models.MessageTypeText)
		return &SendOutput{Message: &msg}, nil
	}

	return s.command(ctx, input.Message, user)
}

func (s *service) command(ctx context.Context, raw, user string) (*SendOutput, error) {
	cmd := strings.ToLower(strings.TrimSpace(raw))

	if cmd == "/help" {
		msg := s.game.AddChatMessage(helpText(), SystemUser, models.MessageTypeSystem)
		return &SendOutput{Message: &msg}, nil
	}

	rc, err := parseRoll(cmd)
	if errors.Is(err, errNotRollCommand) {
		s.logger.Debug("unknown chat command", "command", raw, "user", user)
		msg := s.game.AddChatMessage(fmt.Sprintf("Comando não reconhecido: %s", raw), SystemUser, models.MessageTypeError)
		return &SendOutput{Message: &msg}, nil
	}
	if err != nil {
		msg := s.game.AddChatMessage(fmt.Sprintf("Rolagem inválida: %s", raw), SystemUser, models.MessageTypeError)
		return &SendOutput{Message: &msg}, nil
	}

	out, err := s.game.RollDice(ctx, &game.RollDiceInput{
		Sides:    rc.sides,
		Count:    rc.count,
		Modifier: rc.modifier,
		User:     user,
		Mode:     rc.mode,
	})
	if errors.Is(err, dice.ErrInvalidArgument) {
		msg := s.game.AddChatMessage(fmt.Sprintf("Rolagem inválida: %s", raw), SystemUser, models.MessageTypeError)
		return &SendOutput{Message: &msg}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to roll %s: %w", cmd, err)
	}

	msg := s.game.AddChatMessage(FormatRoll(out.Roll), user, models.MessageTypeDice)
	return &SendOutput{Message: &msg, Roll: &out.Roll}, nil
}
