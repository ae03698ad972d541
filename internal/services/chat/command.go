package chat

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/grupodoporao/mesa/internal/models"
)

// Bounds of generic /NdM+K commands. They keep a typo from posting
// thousands of results and keep totals far from int overflow.
const (
	maxCommandDice     = 100
	maxCommandSides    = 1000
	maxCommandModifier = 1000
)

var (
	errNotRollCommand = errors.New("not a dice command")
	errRollOutOfRange = errors.New("dice command out of range")
)

var dicePattern = regexp.MustCompile(`^/(\d*)d(\d+)([+-]\d+)?$`)

// rollCommand is a parsed dice command
type rollCommand struct {
	sides    int
	count    int
	modifier int
	mode     models.RollType
}

var shortcuts = map[string]rollCommand{
	"/advantage":    {sides: 20, count: 2, mode: models.RollTypeAdvantage},
	"/disadvantage": {sides: 20, count: 2, mode: models.RollTypeDisadvantage},
}

// parseRoll recognizes dice commands. Shortcuts like /d20 and /2d6 are
// ordinary NdM commands. It fails with errNotRollCommand for anything
// else and with errRollOutOfRange when a number exceeds the bounds.
func parseRoll(cmd string) (rollCommand, error) {
	if rc, ok := shortcuts[cmd]; ok {
		return rc, nil
	}

	m := dicePattern.FindStringSubmatch(cmd)
	if m == nil {
		return rollCommand{}, errNotRollCommand
	}

	rc := rollCommand{count: 1, mode: models.RollTypeStandard}
	var err error
	if m[1] != "" {
		if rc.count, err = boundedAtoi(m[1], maxCommandDice); err != nil {
			return rollCommand{}, err
		}
	}
	if rc.sides, err = boundedAtoi(m[2], maxCommandSides); err != nil {
		return rollCommand{}, err
	}
	if m[3] != "" {
		if rc.modifier, err = boundedAtoi(m[3], maxCommandModifier); err != nil {
			return rollCommand{}, err
		}
	}
	return rc, nil
}

// boundedAtoi parses a signed decimal whose magnitude is at most limit
func boundedAtoi(s string, limit int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n > limit || n < -limit {
		return 0, errRollOutOfRange
	}
	return n, nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Comandos disponíveis:")
	for _, c := range Commands {
		b.WriteString("\n**")
		b.WriteString(c.Name)
		b.WriteString("** ")
		b.WriteString(c.Description)
	}
	b.WriteString("\n**/NdM+K** Rola N dados de M lados com modificador K")
	return b.String()
}
