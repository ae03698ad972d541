package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
)

var (
	// ErrNoteNotFound is returned when a note id does not exist
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyNote is returned when a note has no title or no content
	ErrEmptyNote = errors.New("note title and content are required")
)

// repository keeps the whole note list as one JSON value
type repository struct {
	mu      sync.Mutex
	storage storage.Store
	clock   clock.Clock
	ids     sequence.Generator
}

// New creates a notes repository backed by a durable store
func New(cfg *Config) (*repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Storage == nil {
		return nil, errors.New("storage cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.IDs == nil {
		return nil, errors.New("id generator cannot be nil")
	}

	return &repository{
		storage: cfg.Storage,
		clock:   cfg.Clock,
		ids:     cfg.IDs,
	}, nil
}

// ListNotes returns every note, newest first
func (r *repository) ListNotes(ctx context.Context) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// CreateNote adds a note at the top of the list
func (r *repository) CreateNote(ctx context.Context, input *CreateNoteInput) (*models.Note, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyNote
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = models.DefaultNoteCategory
	}

	now := r.clock.Now()
	note := models.Note{
		ID:        r.ids.Next(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.save(ctx, append([]models.Note{note}, list...)); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote merges a patch into a note and bumps its update time
func (r *repository) UpdateNote(ctx context.Context, input *UpdateNoteInput) (*models.Note, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != input.NoteID {
			continue
		}
		updated := input.Patch.Apply(list[i])
		updated.UpdatedAt = r.clock.Now()
		list[i] = updated

		if err := r.save(ctx, list); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, ErrNoteNotFound
}

// DeleteNote removes a note
func (r *repository) DeleteNote(ctx context.Context, input *DeleteNoteInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == input.NoteID {
			return r.save(ctx, append(list[:i], list[i+1:]...))
		}
	}
	return ErrNoteNotFound
}

func (r *repository) load(ctx context.Context) ([]models.Note, error) {
	raw, err := r.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Note{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	var list []models.Note
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	if list == nil {
		list = []models.Note{}
	}
	return list, nil
}

func (r *repository) save(ctx context.Context, list []models.Note) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := r.storage.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
