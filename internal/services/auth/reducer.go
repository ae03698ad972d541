package auth

// Reduce computes the next auth state. It never mutates its input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case LoginStartAction:
		state.Loading = true
		state.Error = ""
		return state

	case LoginSuccessAction:
		user := a.User
		state.User = &user
		state.UserType = a.UserType
		state.IsAuthenticated = true
		state.Loading = false
		state.Error = ""
		return state

	case LoginErrorAction:
		state.Loading = false
		state.Error = a.Error
		return state

	case LogoutAction:
		return InitialState()

	case UpdateUserAction:
		if state.User == nil {
			return state
		}
		user := a.Patch.Apply(*state.User)
		state.User = &user
		return state

	case RestoreAction:
		if !a.Snapshot.Valid() {
			return state
		}
		user := *a.Snapshot.User
		state.User = &user
		state.UserType = a.Snapshot.UserType
		state.IsAuthenticated = true
		state.Loading = false
		state.Error = ""
		return state
	}

	return state
}
