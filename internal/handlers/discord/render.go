package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/services/chat"
	"github.com/grupodoporao/mesa/internal/services/game"
)

// rollAgainPrefix starts the custom id of the "roll again" button
const rollAgainPrefix = "roll_again"

// RollAgainID encodes a roll into a button custom id
func RollAgainID(roll models.DiceRoll) string {
	return fmt.Sprintf("%s:%d:%d:%d:%s", rollAgainPrefix, roll.Sides, roll.Count, roll.Modifier, roll.RollType)
}

// ParseRollAgainID decodes a custom id built by RollAgainID
func ParseRollAgainID(id string) (*game.RollDiceInput, bool) {
	parts := strings.Split(id, ":")
	if len(parts) != 5 || parts[0] != rollAgainPrefix {
		return nil, false
	}

	var nums [3]int
	for i, p := range parts[1:4] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}

	mode := models.RollType(parts[4])
	if !mode.IsValid() {
		return nil, false
	}

	return &game.RollDiceInput{
		Sides:    nums[0],
		Count:    nums[1],
		Modifier: nums[2],
		Mode:     mode,
	}, true
}

// RollEmbed describes a roll for Discord
func RollEmbed(out *game.RollDiceOutput) *discordgo.MessageEmbed {
	roll := out.Roll

	color := colorInfo
	var notes []string
	for i, c := range out.Criticals {
		switch c {
		case models.CriticalSuccess:
			color = colorSuccess
			notes = append(notes, fmt.Sprintf("Dado %d: sucesso crítico!", i+1))
		case models.CriticalFailure:
			if color != colorSuccess {
				color = colorError
			}
			notes = append(notes, fmt.Sprintf("Dado %d: falha crítica!", i+1))
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:       chat.FormatRoll(roll),
		Description: strings.Join(notes, "\n"),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total", Value: strconv.Itoa(roll.Total), Inline: true},
			{Name: "Tipo", Value: rollTypeLabel(roll.RollType), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: roll.User},
	}
	return embed
}

func rollTypeLabel(t models.RollType) string {
	switch t {
	case models.RollTypeAdvantage:
		return "Vantagem"
	case models.RollTypeDisadvantage:
		return "Desvantagem"
	}
	return "Normal"
}

// renderRoll answers an interaction with the roll and a "roll again" button
func renderRoll(s *discordgo.Session, i *discordgo.InteractionCreate, out *game.RollDiceOutput) error {
	button := discordgo.Button{
		Label:    "Rolar de novo",
		Style:    discordgo.PrimaryButton,
		CustomID: RollAgainID(out.Roll),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎲",
		},
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{RollEmbed(out)},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{button}},
			},
		},
	})
}
