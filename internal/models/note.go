package models

import (
	"time"
)

// DefaultNoteCategory is used for notes created without a category
const DefaultNoteCategory = "geral"

// NoteCategories are the categories offered when writing a note
var NoteCategories = []string{"geral", "combate", "historia", "npcs", "locais", "tesouros"}

// Note is a master's campaign note, kept apart from session notes
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotePatch is a shallow update of a Note. Nil fields are left as is.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *string
}

// Apply returns a copy of n with the patch merged in
func (patch NotePatch) Apply(n Note) Note {
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Category != nil {
		n.Category = *patch.Category
	}
	return n
}
