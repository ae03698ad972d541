package chat

import (
	"context"
	"log/slog"

	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/services/game"
)

const (
	// AnonymousUser signs lines sent without a display name
	AnonymousUser = "Anônimo"

	// SystemUser signs help and error replies
	SystemUser = "Sistema"
)

// Command describes a chat command for help listings
type Command struct {
	Name        string
	Description string
}

// Commands are the shortcuts offered to users. Any /NdM or /NdM+K roll is
// also accepted.
var Commands = []Command{
	{Name: "/d20", Description: "Rola 1d20"},
	{Name: "/d6", Description: "Rola 1d6"},
	{Name: "/2d6", Description: "Rola 2d6"},
	{Name: "/advantage", Description: "Rola d20 com vantagem"},
	{Name: "/disadvantage", Description: "Rola d20 com desvantagem"},
	{Name: "/help", Description: "Lista os comandos"},
}

// GameStore is the part of the game store the chat writes to
type GameStore interface {
	RollDice(ctx context.Context, input *game.RollDiceInput) (*game.RollDiceOutput, error)
	AddChatMessage(message, user string, msgType models.MessageType) models.ChatMessage
}

// Config holds configuration for the chat service
type Config struct {
	Game   GameStore
	Logger *slog.Logger
}

// SendInput contains a typed chat line
type SendInput struct {
	Message string
	User    string
}

// SendOutput contains what Send posted. Message is nil for blank lines;
// Roll is set only for dice commands.
type SendOutput struct {
	Message *models.ChatMessage
	Roll    *models.DiceRoll
}
