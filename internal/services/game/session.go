package game

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// StartSession replaces the current session with a new, empty one
func (s *Store) StartSession(name string) models.GameSession {
	now := s.clock.Now()
	session := models.GameSession{
		ID:    s.ids.Next(),
		Name:  name,
		Date:  &now,
		Notes: []models.SessionNote{},
	}
	s.Dispatch(StartSessionAction{Session: session})

	s.logger.Info("session started", "session_id", session.ID, "name", name)
	return session
}

// EndSession resets the current session, discarding its notes
func (s *Store) EndSession() {
	ended := s.State().CurrentSession
	s.Dispatch(EndSessionAction{})

	if ended.Active() {
		s.logger.Info("session ended", "session_id", ended.ID, "notes", len(ended.Notes))
	}
}

// AddSessionNote appends a note to the current session
func (s *Store) AddSessionNote(content, author, noteType string) models.SessionNote {
	if noteType == "" {
		noteType = DefaultNoteType
	}

	note := models.SessionNote{
		ID:        s.ids.Next(),
		Timestamp: s.clock.Now(),
		Content:   content,
		Author:    author,
		Type:      noteType,
	}
	s.Dispatch(AddSessionNoteAction{Note: note})
	return note
}
