package auth

import "errors"

// AuthError is a custom error type for auth store configuration errors
type AuthError string

// Error implements the error interface
func (e AuthError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig AuthError = "config cannot be nil"
	ErrNilClock  AuthError = "clock cannot be nil"
	ErrNilRoller AuthError = "dice roller cannot be nil"
)

// ErrInvalidCredentials is returned for a wrong username, password or
// user type. Its text is shown to the user as is.
var ErrInvalidCredentials = errors.New("Credenciais inválidas")
