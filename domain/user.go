package domain

// User is a locally registered account. Password holds whatever the active
// credential verifier stored for it.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DisplayName is the label shown in the dashboard header.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
