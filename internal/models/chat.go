package models

import (
	"time"
)

// MessageType categorizes chat messages
type MessageType string

const (
	// MessageTypeText is a plain message typed by a user
	MessageTypeText MessageType = "text"

	// MessageTypeDice reports the outcome of a dice command
	MessageTypeDice MessageType = "dice"

	// MessageTypeSystem is an informational message from the table
	MessageTypeSystem MessageType = "system"

	// MessageTypeError reports a command that could not be run
	MessageTypeError MessageType = "error"
)

// ChatMessage is one line of the table chat
type ChatMessage struct {
	// ID is unique and increases with creation time
	ID int64 `json:"id"`

	// Timestamp is when the message was sent
	Timestamp time.Time `json:"timestamp"`

	// User is the display name of the author
	User string `json:"user"`

	// Message is the text, which may contain **bold** markup
	Message string `json:"message"`

	// Type categorizes the message
	Type MessageType `json:"type"`
}

// NotificationType is the severity of a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a transient toast shown to the user
type Notification struct {
	ID        int64            `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
}
