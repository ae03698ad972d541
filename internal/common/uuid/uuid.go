// Package uuid issues the string ids of players and characters.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/grupodoporao/mesa/internal/common/uuid UUID

// UUID generates string identifiers
type UUID interface {
	NewUUID() string
}

// TimeOrdered issues version 7 UUIDs, which sort by creation time like
// the numeric record ids do
type TimeOrdered struct{}

// New creates the default generator
func New() *TimeOrdered {
	return &TimeOrdered{}
}

// NewUUID returns a v7 UUID, or a random v4 one if the clock-based
// generator fails
func (TimeOrdered) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
