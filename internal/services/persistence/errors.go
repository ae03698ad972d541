package persistence

// PersistenceError is a custom error type for bridge configuration errors
type PersistenceError string

// Error implements the error interface
func (e PersistenceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    PersistenceError = "config cannot be nil"
	ErrNilStorage   PersistenceError = "storage cannot be nil"
	ErrNilGameStore PersistenceError = "game store cannot be nil"
	ErrNilAuthStore PersistenceError = "auth store cannot be nil"
	ErrNilClock     PersistenceError = "clock cannot be nil"
)
