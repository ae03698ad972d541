package models

// UserType is the role a user logged in as
type UserType string

const (
	// UserTypeMaster runs the table
	UserTypeMaster UserType = "master"

	// UserTypePlayer controls a character
	UserTypePlayer UserType = "player"
)

// IsValid reports whether the user type is one of the known roles
func (t UserType) IsValid() bool {
	return t == UserTypeMaster || t == UserTypePlayer
}

// UserPreferences are per-user interface preferences
type UserPreferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	SoundEffects  bool   `json:"soundEffects"`
}

// UserStats are profile counters shown on the home page
type UserStats struct {
	SessionsPlayed    int `json:"sessionsPlayed"`
	DiceRolled        int `json:"diceRolled"`
	CharactersCreated int `json:"charactersCreated"`
}

// User is the logged in identity
type User struct {
	// ID is the fixed account id
	ID string `json:"id"`

	// Username is the login name
	Username string `json:"username"`

	// DisplayName is shown in chat and rolls
	DisplayName string `json:"displayName"`

	// Avatar is an optional image URL
	Avatar *string `json:"avatar"`

	Preferences UserPreferences `json:"preferences"`
	Stats       UserStats       `json:"stats"`
}

// UserPatch is a shallow update of a User. Nil fields are left as is.
type UserPatch struct {
	Username    *string
	DisplayName *string
	Avatar      *string
	Preferences *UserPreferences
	Stats       *UserStats
}

// Apply returns a copy of u with the patch merged in
func (patch UserPatch) Apply(u User) User {
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.DisplayName != nil {
		u.DisplayName = *patch.DisplayName
	}
	if patch.Avatar != nil {
		avatar := *patch.Avatar
		u.Avatar = &avatar
	}
	if patch.Preferences != nil {
		u.Preferences = *patch.Preferences
	}
	if patch.Stats != nil {
		u.Stats = *patch.Stats
	}
	return u
}
