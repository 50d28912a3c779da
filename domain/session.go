package domain

// Session marks an authenticated browsing context in the local store.
type Session struct {
	IsLoggedIn  bool `json:"isLoggedIn"`
	CurrentUser User `json:"currentUser"`
}

func (s *Session) IsActive() bool {
	return s != nil && s.IsLoggedIn
}
