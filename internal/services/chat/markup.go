package chat

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/grupodoporao/mesa/internal/models"
)

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// FormatMarkup renders a chat message as HTML. The text is escaped first,
// then **bold** spans become <strong> elements.
func FormatMarkup(text string) string {
	return boldPattern.ReplaceAllString(html.EscapeString(text), "<strong>$1</strong>")
}

// FormatRoll renders a roll as a dice chat line, e.g.
// "🎲 2d6: 3, 5 = **8**"
func FormatRoll(roll models.DiceRoll) string {
	results := make([]string, len(roll.Results))
	for i, r := range roll.Results {
		results[i] = strconv.Itoa(r)
	}

	return fmt.Sprintf("🎲 %s: %s = **%d**", Notation(roll.Count, roll.Sides, roll.Modifier), strings.Join(results, ", "), roll.Total)
}

// Notation writes dice in NdM form with an optional signed modifier
func Notation(count, sides, modifier int) string {
	switch {
	case modifier > 0:
		return fmt.Sprintf("%dd%d+%d", count, sides, modifier)
	case modifier < 0:
		return fmt.Sprintf("%dd%d%d", count, sides, modifier)
	}
	return fmt.Sprintf("%dd%d", count, sides)
}
