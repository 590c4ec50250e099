package guard_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/guard"
	"github.com/autolife-uz/autolife-go/session"
)

func TestCheckRedirectsWithoutASession(t *testing.T) {
	for _, location := range []string{"/bookings", "/profile", "/admin", "/"} {
		decision := guard.Check(nil, location)
		require.False(t, decision.Allowed)
		require.Equal(t, guard.LoginLocation, decision.RedirectTo)
		require.Equal(t, location, decision.From, "the requested location is preserved")
	}
}

func TestCheckRejectsPartialSessions(t *testing.T) {
	decision := guard.Check(&session.Session{Token: "t1"}, "/bookings")
	require.False(t, decision.Allowed)

	decision = guard.Check(&session.Session{User: session.User{ID: "1"}}, "/bookings")
	require.False(t, decision.Allowed)
}

func TestCheckAllowsValidSessions(t *testing.T) {
	sess := &session.Session{Token: "t1", User: session.User{ID: "1"}}
	for _, location := range []string{"/bookings", "/admin"} {
		decision := guard.Check(sess, location)
		require.True(t, decision.Allowed)
		require.Empty(t, decision.RedirectTo)
	}
}
