// Package guard is the access-control checkpoint in front of protected
// views. It holds no state: every navigation re-evaluates the current
// session.
package guard

import "github.com/autolife-uz/autolife-go/session"

// LoginLocation is where unauthenticated navigation is redirected.
const LoginLocation = "/login"

// Decision is the outcome of a guard check. When not allowed, RedirectTo is
// the login entry point and From preserves the originally requested
// location. From is carried for the login view to surface; nothing navigates
// back automatically after sign-in.
type Decision struct {
	Allowed    bool
	RedirectTo string
	From       string
}

// Check gates entry to location. A missing or partial session always
// redirects to login; a valid one always allows, whatever the location.
func Check(sess *session.Session, location string) Decision {
	if !sess.Valid() {
		return Decision{
			RedirectTo: LoginLocation,
			From:       location,
		}
	}
	return Decision{Allowed: true}
}
