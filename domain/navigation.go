package domain

// View is one of the full-page destinations of the client.
type View string

const (
	ViewLogin     View = "login"
	ViewRegister  View = "register"
	ViewDashboard View = "dashboard"
)

// NavigationMode tells whether the history entry is pushed or replaced.
type NavigationMode string

const (
	NavigatePush    NavigationMode = "push"
	NavigateReplace NavigationMode = "replace"
)

// Navigation is a requested full-page redirect.
type Navigation struct {
	To   View           `json:"to"`
	Mode NavigationMode `json:"mode"`
}

// Outcome is what an auth flow hands back to the view layer: a user-visible
// message and, on success, where to go next.
type Outcome struct {
	Message  string      `json:"message"`
	Navigate *Navigation `json:"navigate,omitempty"`
}

func Push(v View) *Navigation {
	return &Navigation{To: v, Mode: NavigatePush}
}

func Replace(v View) *Navigation {
	return &Navigation{To: v, Mode: NavigateReplace}
}
