package notes

import (
	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
)

// StorageKey is where the note list is kept
const StorageKey = "session-notes"

// Config holds configuration for the notes repository
type Config struct {
	Storage storage.Store
	Clock   clock.Clock
	IDs     sequence.Generator
}

// CreateNoteInput contains the fields of a new note. Title and content
// are required; an empty category means models.DefaultNoteCategory.
type CreateNoteInput struct {
	Title    string
	Content  string
	Category string
}

// UpdateNoteInput contains a note id and the fields to change
type UpdateNoteInput struct {
	NoteID int64
	Patch  models.NotePatch
}

// DeleteNoteInput identifies the note to remove
type DeleteNoteInput struct {
	NoteID int64
}
