package notes

import (
	"context"

	"github.com/grupodoporao/mesa/internal/models"
)

// Repository defines the interface for campaign note persistence
type Repository interface {
	// ListNotes returns every note, newest first
	ListNotes(ctx context.Context) ([]models.Note, error)

	// CreateNote adds a note at the top of the list
	CreateNote(ctx context.Context, input *CreateNoteInput) (*models.Note, error)

	// UpdateNote merges a patch into a note
	UpdateNote(ctx context.Context, input *UpdateNoteInput) (*models.Note, error)

	// DeleteNote removes a note
	DeleteNote(ctx context.Context, input *DeleteNoteInput) error
}
