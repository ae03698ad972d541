package auth

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// State is the auth state
type State struct {
	User            *models.User
	IsAuthenticated bool
	UserType        models.UserType
	Loading         bool
	Error           string
}

// InitialState is the logged out state
func InitialState() State {
	return State{}
}

// Status derives the phase of s
func (s State) Status() Status {
	switch {
	case s.Loading:
		return StatusAuthenticating
	case s.IsAuthenticated:
		return StatusAuthenticated
	case s.Error != "":
		return StatusError
	}
	return StatusAnonymous
}

// Snapshot is the persisted part of State
type Snapshot struct {
	User     *models.User    `json:"user"`
	UserType models.UserType `json:"userType"`
}

// Snapshot extracts the persisted fields. ok is false while logged out,
// in which case nothing should be stored.
func (s State) Snapshot() (snap Snapshot, ok bool) {
	if !s.IsAuthenticated || s.User == nil {
		return Snapshot{}, false
	}
	return Snapshot{User: s.User, UserType: s.UserType}, true
}

// Valid reports whether a decoded snapshot can be restored
func (s Snapshot) Valid() bool {
	return s.User != nil && s.UserType.IsValid()
}
