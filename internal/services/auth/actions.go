package auth

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// ActionType tags an auth transition
type ActionType string

const (
	ActionLoginStart   ActionType = "LOGIN_START"
	ActionLoginSuccess ActionType = "LOGIN_SUCCESS"
	ActionLoginError   ActionType = "LOGIN_ERROR"
	ActionLogout       ActionType = "LOGOUT"
	ActionUpdateUser   ActionType = "UPDATE_USER"
	ActionRestore      ActionType = "RESTORE"
)

// Action is a request to change the auth state
type Action interface {
	Type() ActionType
}

type LoginStartAction struct{}

type LoginSuccessAction struct {
	User     models.User
	UserType models.UserType
}

type LoginErrorAction struct {
	Error string
}

type LogoutAction struct{}

type UpdateUserAction struct {
	Patch models.UserPatch
}

// RestoreAction logs in from a stored snapshot without a credential check
type RestoreAction struct {
	Snapshot Snapshot
}

func (LoginStartAction) Type() ActionType   { return ActionLoginStart }
func (LoginSuccessAction) Type() ActionType { return ActionLoginSuccess }
func (LoginErrorAction) Type() ActionType   { return ActionLoginError }
func (LogoutAction) Type() ActionType       { return ActionLogout }
func (UpdateUserAction) Type() ActionType   { return ActionUpdateUser }
func (RestoreAction) Type() ActionType      { return ActionRestore }

// AffectsPersistedState reports whether an action can change the stored
// user or role
func AffectsPersistedState(action Action) bool {
	switch action.(type) {
	case LoginSuccessAction, LogoutAction, UpdateUserAction:
		return true
	}
	return false
}
