package auth

import (
	"log/slog"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
)

// DefaultLoginDelay simulates the round trip of a credential check
const DefaultLoginDelay = time.Second

// Config holds configuration for the auth store
type Config struct {
	// LoginDelay overrides DefaultLoginDelay when non-zero. Negative
	// disables the wait.
	LoginDelay time.Duration

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Service dependencies
	Clock  clock.Clock
	Roller dice.Roller
}

// Credentials are what the login form collects
type Credentials struct {
	Username string
	Password string
}

// LoginResult reports the outcome of Login. Error is empty on success.
type LoginResult struct {
	Success bool
	Error   string
}

// Status is the coarse phase of the auth state
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusError          Status = "error"
)

// account is one entry of the fixed credential table
type account struct {
	username    string
	password    string
	id          string
	displayName string
}

// accounts is a placeholder for a real identity provider. There is one
// login per role and the passwords are public.
var accounts = map[models.UserType]account{
	models.UserTypeMaster: {
		username:    "MESTRE",
		password:    "12345677",
		id:          "master_001",
		displayName: "Mestre da Mesa",
	},
	models.UserTypePlayer: {
		username:    "JOGADOR",
		password:    "123456",
		id:          "player_001",
		displayName: "Aventureiro",
	},
}
