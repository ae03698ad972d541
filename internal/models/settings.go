package models

// GameSettings are the table-wide preferences
type GameSettings struct {
	DiceSound bool   `json:"diceSound"`
	AutoSave  bool   `json:"autoSave"`
	Theme     string `json:"theme"`
	Language  string `json:"language"`
}

// SettingsPatch is a shallow update of GameSettings. Nil fields are left as is.
type SettingsPatch struct {
	DiceSound *bool
	AutoSave  *bool
	Theme     *string
	Language  *string
}

// Apply returns a copy of s with the patch merged in
func (patch SettingsPatch) Apply(s GameSettings) GameSettings {
	if patch.DiceSound != nil {
		s.DiceSound = *patch.DiceSound
	}
	if patch.AutoSave != nil {
		s.AutoSave = *patch.AutoSave
	}
	if patch.Theme != nil {
		s.Theme = *patch.Theme
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	return s
}

// UI holds interface flags. It is never persisted.
type UI struct {
	SidebarOpen bool
	ActivePanel string
	Loading     bool
}
