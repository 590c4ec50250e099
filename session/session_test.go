package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/session"
)

func TestValid(t *testing.T) {
	var nilSession *session.Session
	require.False(t, nilSession.Valid())
	require.False(t, (&session.Session{Token: "t1"}).Valid())
	require.False(t, (&session.Session{User: session.User{ID: "1"}}).Valid())

	full := testSession()
	require.True(t, full.Valid())
}

func TestFullName(t *testing.T) {
	require.Equal(t, "Aziz Karimov", session.User{FirstName: "Aziz", LastName: "Karimov"}.FullName())
	require.Equal(t, "Aziz", session.User{FirstName: "Aziz"}.FullName())
	require.Equal(t, "Karimov", session.User{LastName: "Karimov"}.FullName())
}
