package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/invites"
	"github.com/grupodoporao/mesa/internal/repositories/notes"
	"github.com/grupodoporao/mesa/internal/services/chat"
	"github.com/grupodoporao/mesa/internal/services/game"
)

// MesaCommand handles the /mesa command
type MesaCommand struct {
	BaseCommand
	game    GameStore
	notes   notes.Repository
	invites invites.Repository
	logger  *slog.Logger
}

var minSides = float64(2)

// NewMesaCommand creates the /mesa command handler. The note and invite
// subcommands are only offered when their repository is given.
func NewMesaCommand(gameStore GameStore, notesRepo notes.Repository, invitesRepo invites.Repository, logger *slog.Logger) *MesaCommand {
	options := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "roll",
			Description: "Rola dados na mesa",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "sides",
					Description: "Lados do dado",
					Required:    true,
					MinValue:    &minSides,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "Quantidade de dados",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "modifier",
					Description: "Modificador somado ao total",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "mode",
					Description: "Tipo de rolagem",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "normal", Value: string(models.RollTypeStandard)},
						{Name: "vantagem", Value: string(models.RollTypeAdvantage)},
						{Name: "desvantagem", Value: string(models.RollTypeDisadvantage)},
					},
				},
			},
		},
	}

	if notesRepo != nil {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "note",
			Description: "Anota algo da campanha",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "title",
					Description: "Título",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "content",
					Description: "Conteúdo",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Categoria",
					Choices:     categoryChoices(),
				},
			},
		})
	}

	if invitesRepo != nil {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "invite",
			Description: "Convida um jogador pela tag",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "tag",
					Description: "Tag do jogador",
					Required:    true,
				},
			},
		})
	}

	return &MesaCommand{
		BaseCommand: BaseCommand{
			Name:        "mesa",
			Description: "Comandos da mesa de RPG",
			Options:     options,
		},
		game:    gameStore,
		notes:   notesRepo,
		invites: invitesRepo,
		logger:  logger,
	}
}

// Handle processes a Discord interaction for the mesa command
func (c *MesaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	sub := data.Options[0]
	switch sub.Name {
	case "roll":
		return c.handleRoll(ctx, s, i, sub.Options)
	case "note":
		return c.handleNote(ctx, s, i, sub.Options)
	case "invite":
		return c.handleInvite(ctx, s, i, sub.Options)
	}
	return errors.New("unknown subcommand")
}

func (c *MesaCommand) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := RollInputFromOptions(optionMap(opts))
	input.User = interactionUser(i)

	out, err := c.game.RollDice(ctx, input)
	if err != nil {
		c.logger.Debug("rejected roll", "sides", input.Sides, "count", input.Count, "error", err)
		return RespondWithError(s, i, fmt.Sprintf("Rolagem inválida: %s", chat.Notation(input.Count, input.Sides, input.Modifier)))
	}
	return renderRoll(s, i, out)
}

func (c *MesaCommand) handleNote(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	if c.notes == nil {
		return RespondWithError(s, i, "Notas desativadas")
	}

	m := optionMap(opts)
	input := &notes.CreateNoteInput{}
	if o, ok := m["title"]; ok {
		input.Title = o.StringValue()
	}
	if o, ok := m["content"]; ok {
		input.Content = o.StringValue()
	}
	if o, ok := m["category"]; ok {
		input.Category = o.StringValue()
	}

	note, err := c.notes.CreateNote(ctx, input)
	if err != nil {
		c.logger.Error("failed to create note", "error", err)
		return RespondWithError(s, i, "Não foi possível salvar a nota")
	}
	return RespondWithMessage(s, i, fmt.Sprintf("📝 Nota salva: **%s** (%s)", note.Title, note.Category))
}

func (c *MesaCommand) handleInvite(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	if c.invites == nil {
		return RespondWithError(s, i, "Convites desativados")
	}

	var tag string
	if o, ok := optionMap(opts)["tag"]; ok {
		tag = o.StringValue()
	}

	invited, err := c.invites.InvitePlayer(ctx, &invites.InvitePlayerInput{Tag: tag})
	if err != nil {
		return RespondWithError(s, i, InviteErrorMessage(err, tag))
	}
	return RespondWithMessage(s, i, fmt.Sprintf("✉️ Convite enviado para **%s** (%s, nível %d)", invited.Name, invited.Class, invited.Level))
}

// InviteErrorMessage turns an invite failure into the reply shown to the master
func InviteErrorMessage(err error, tag string) string {
	switch {
	case errors.Is(err, invites.ErrPlayerNotFound):
		return fmt.Sprintf("Jogador não encontrado: %s", tag)
	case errors.Is(err, invites.ErrAlreadyInvited):
		return fmt.Sprintf("Jogador já convidado: %s", tag)
	default:
		return "Não foi possível enviar o convite"
	}
}

// RollInputFromOptions reads the roll subcommand options. Count defaults
// to one and mode to standard.
func RollInputFromOptions(m map[string]*discordgo.ApplicationCommandInteractionDataOption) *game.RollDiceInput {
	input := &game.RollDiceInput{Count: 1, Mode: models.RollTypeStandard}
	if o, ok := m["sides"]; ok {
		input.Sides = int(o.IntValue())
	}
	if o, ok := m["count"]; ok {
		input.Count = int(o.IntValue())
	}
	if o, ok := m["modifier"]; ok {
		input.Modifier = int(o.IntValue())
	}
	if o, ok := m["mode"]; ok {
		input.Mode = models.RollType(o.StringValue())
	}
	return input
}

func categoryChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(models.NoteCategories))
	for i, c := range models.NoteCategories {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: c, Value: c}
	}
	return choices
}
