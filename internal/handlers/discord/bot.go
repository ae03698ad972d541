package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/invites"
	"github.com/grupodoporao/mesa/internal/repositories/notes"
	"github.com/grupodoporao/mesa/internal/services/chat"
	"github.com/grupodoporao/mesa/internal/services/game"
)

// requestTimeout bounds the work done for one Discord event
const requestTimeout = 10 * time.Second

// GameStore is the part of the game store the bot drives directly
type GameStore interface {
	RollDice(ctx context.Context, input *game.RollDiceInput) (*game.RollDiceOutput, error)
}

// Bot relays one Discord channel into the table chat and exposes the
// /mesa slash command
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	chat       chat.Service
	game       GameStore
	notes      notes.Repository
	invites    invites.Repository
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ChannelID limits chat relaying to one channel. Empty relays every
	// channel the bot can read.
	ChannelID string

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	ChatService chat.Service
	GameStore   GameStore

	// Notes enables the note subcommand when set
	Notes notes.Repository

	// Invites enables the invite subcommand when set
	Invites invites.Repository
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChatService == nil {
		return nil, errors.New("chat service cannot be nil")
	}

	if cfg.GameStore == nil {
		return nil, errors.New("game store cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		chat:       cfg.ChatService,
		game:       cfg.GameStore,
		notes:      cfg.Notes,
		invites:    cfg.Invites,
		config:     cfg,
		logger:     logger.With("component", "discord"),
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	mesaCmd := NewMesaCommand(b.game, b.notes, b.invites, b.logger)
	if err := b.RegisterCommand(mesaCmd); err != nil {
		return fmt.Errorf("failed to register mesa command: %w", err)
	}

	b.logger.Info("discord bot running", "channel_id", b.config.ChannelID, "guild_id", b.config.GuildID)
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Debug("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are global
// unless a guild id is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction routes slash commands and button clicks
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", "error", err)
		}
	}
}

// handleComponentInteraction handles the "roll again" button
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	input, ok := ParseRollAgainID(customID)
	if !ok {
		return fmt.Errorf("unknown component %q", customID)
	}
	input.User = interactionUser(i)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	out, err := b.game.RollDice(ctx, input)
	if err != nil {
		return RespondWithError(s, i, "Rolagem inválida")
	}
	return renderRoll(s, i, out)
}

// handleMessageCreate relays channel messages into the table chat. Replies
// to commands are posted back to the channel; plain text is not echoed.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	reply, ok := b.relay(ctx, m)
	if !ok {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		b.logger.Error("failed to post chat reply", "channel_id", m.ChannelID, "error", err)
	}
}

// relay sends m to the chat service and returns the reply to post, if any
func (b *Bot) relay(ctx context.Context, m *discordgo.MessageCreate) (string, bool) {
	if m.Author == nil || m.Author.Bot {
		return "", false
	}
	if b.config.ChannelID != "" && m.ChannelID != b.config.ChannelID {
		return "", false
	}

	out, err := b.chat.Send(ctx, &chat.SendInput{
		Message: m.Content,
		User:    messageUser(m),
	})
	if err != nil {
		b.logger.Error("failed to relay message", "channel_id", m.ChannelID, "error", err)
		return "", false
	}
	if out.Message == nil || out.Message.Type == models.MessageTypeText {
		return "", false
	}
	return out.Message.Message, true
}

func messageUser(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	return m.Author.Username
}

func interactionUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil {
		if i.Member.Nick != "" {
			return i.Member.Nick
		}
		if i.Member.User != nil {
			return i.Member.User.Username
		}
	}
	if i.User != nil {
		return i.User.Username
	}
	return chat.AnonymousUser
}
