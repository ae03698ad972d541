package models

import (
	"time"
)

// RollType selects how the results of a roll are combined into a total
type RollType string

const (
	// RollTypeStandard sums every die plus the modifier
	RollTypeStandard RollType = "standard"

	// RollTypeAdvantage keeps the higher of two dice
	RollTypeAdvantage RollType = "advantage"

	// RollTypeDisadvantage keeps the lower of two dice
	RollTypeDisadvantage RollType = "disadvantage"
)

// IsValid reports whether the roll type is one of the known types
func (t RollType) IsValid() bool {
	switch t {
	case RollTypeStandard, RollTypeAdvantage, RollTypeDisadvantage:
		return true
	}
	return false
}

// Critical classifies a single die result
type Critical string

const (
	// CriticalNone is any result that is neither 1 nor the maximum face
	CriticalNone Critical = "normal"

	// CriticalSuccess is a die showing its maximum face
	CriticalSuccess Critical = "critical-success"

	// CriticalFailure is a die showing 1
	CriticalFailure Critical = "critical-fail"
)

// DiceRoll is the immutable record of one dice-rolling operation
type DiceRoll struct {
	// ID is unique and increases with creation time
	ID int64 `json:"id"`

	// Timestamp is when the roll was made
	Timestamp time.Time `json:"timestamp"`

	// RollType is how Results were combined into Total
	RollType RollType `json:"type"`

	// Sides is the number of faces on each die
	Sides int `json:"sides"`

	// Count is the number of dice rolled
	Count int `json:"count"`

	// Modifier is added to the combined result and may be negative
	Modifier int `json:"modifier"`

	// Results holds each die in the order it was rolled
	Results []int `json:"results"`

	// Total is the final value of the roll
	Total int `json:"total"`

	// User is the display name of whoever rolled
	User string `json:"user"`
}
