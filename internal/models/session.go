package models

import (
	"time"
)

// SessionNote is an entry appended to the current session's log
type SessionNote struct {
	// ID is unique and increases with creation time
	ID int64 `json:"id"`

	// Timestamp is when the note was written
	Timestamp time.Time `json:"timestamp"`

	// Content is the note text
	Content string `json:"content"`

	// Author is the display name of the writer
	Author string `json:"author"`

	// Type categorizes the note, "note" by default
	Type string `json:"type"`
}

// GameSession is the session currently being played. A zero ID means no
// session is active.
type GameSession struct {
	// ID identifies the session, 0 when none is active
	ID int64 `json:"id"`

	// Name is the session title
	Name string `json:"name"`

	// Date is when the session started
	Date *time.Time `json:"date"`

	// Notes are appended in order during the session
	Notes []SessionNote `json:"notes"`

	// Duration is the session length in minutes
	Duration int `json:"duration"`
}

// Active reports whether a session has been started
func (s GameSession) Active() bool {
	return s.ID != 0
}
