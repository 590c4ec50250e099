// Package session defines the authenticated session model and its durable
// persistence. A session is the {token, user} pair proving authentication;
// the two are only ever stored and observed together.
package session

// User is the profile payload returned by the AutoLife backend. Role is only
// present for staff accounts; its absence means the user has no admin surface.
type User struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Role        string `json:"role,omitempty"`
}

// FullName returns the display name used across the client.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Session is the proof of identity for the current client. Token is an opaque
// bearer credential; the backend owns its validity.
type Session struct {
	Token string
	User  User
}

// Valid reports whether the session can authenticate requests. A session with
// a missing half is treated as no session at all.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.ID != ""
}
