package chat

// ChatError is a custom error type for chat service errors
type ChatError string

// Error implements the error interface
func (e ChatError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    ChatError = "config cannot be nil"
	ErrNilGameStore ChatError = "game store cannot be nil"
	ErrNilInput     ChatError = "input cannot be nil"
)
