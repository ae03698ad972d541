// Package playertag stores the public tag other tables use to invite
// this player.
package playertag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
)

// StorageKey is where the tag is kept
const StorageKey = "player-tag"

const (
	minLength = 3
	maxLength = 20
)

// ErrTagNotSet is returned by GetTag before a tag has been saved
var ErrTagNotSet = errors.New("player tag not set")

// ValidationError explains why a tag was rejected. The message is
// shown to the user.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrTagEmpty      ValidationError = "Tag não pode estar vazia"
	ErrTagTooShort   ValidationError = "Tag deve ter pelo menos 3 caracteres"
	ErrTagTooLong    ValidationError = "Tag deve ter no máximo 20 caracteres"
	ErrTagCharacters ValidationError = "Tag pode conter apenas letras, números e underscore"
	ErrTagUnderscore ValidationError = "Tag não pode começar ou terminar com underscore"
)

var (
	adjectives = []string{"brave", "wise", "swift", "mighty", "clever", "bold", "noble", "fierce"}
	nouns      = []string{"warrior", "mage", "rogue", "paladin", "ranger", "bard", "cleric", "monk"}
)

// Config holds configuration for the player tag repository
type Config struct {
	Storage storage.Store

	// Roller picks the words and number of suggested tags
	Roller dice.Roller
}

// Repository reads and writes the player tag
type Repository struct {
	storage storage.Store
	roller  dice.Roller
}

// New creates a player tag repository
func New(cfg *Config) (*Repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Storage == nil {
		return nil, errors.New("storage cannot be nil")
	}
	if cfg.Roller == nil {
		return nil, errors.New("dice roller cannot be nil")
	}

	return &Repository{
		storage: cfg.Storage,
		roller:  cfg.Roller,
	}, nil
}

// GetTag returns the saved tag or ErrTagNotSet
func (r *Repository) GetTag(ctx context.Context) (string, error) {
	tag, err := r.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", ErrTagNotSet
	}
	if err != nil {
		return "", fmt.Errorf("failed to read player tag: %w", err)
	}
	return tag, nil
}

// SaveTag validates and stores a tag
func (r *Repository) SaveTag(ctx context.Context, tag string) error {
	if err := Validate(tag); err != nil {
		return err
	}
	if err := r.storage.Set(ctx, StorageKey, tag); err != nil {
		return fmt.Errorf("failed to save player tag: %w", err)
	}
	return nil
}

// Suggest builds a random tag such as "swiftranger417". It is not saved.
func (r *Repository) Suggest() (string, error) {
	adjective, err := r.pick(len(adjectives))
	if err != nil {
		return "", err
	}
	noun, err := r.pick(len(nouns))
	if err != nil {
		return "", err
	}
	number, err := r.roller.Roll(999, 1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%d", adjectives[adjective], nouns[noun], number[0]), nil
}

func (r *Repository) pick(n int) (int, error) {
	results, err := r.roller.Roll(n, 1)
	if err != nil {
		return 0, err
	}
	return results[0] - 1, nil
}

// Validate checks a tag against the naming rules
func Validate(tag string) error {
	switch {
	case tag == "":
		return ErrTagEmpty
	case len(tag) < minLength:
		return ErrTagTooShort
	case len(tag) > maxLength:
		return ErrTagTooLong
	}

	for _, c := range tag {
		if !isTagChar(c) {
			return ErrTagCharacters
		}
	}

	if strings.HasPrefix(tag, "_") || strings.HasSuffix(tag, "_") {
		return ErrTagUnderscore
	}
	return nil
}

func isTagChar(c rune) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
