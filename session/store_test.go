package session_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/session"
	"github.com/autolife-uz/autolife-go/storage"
)

func testSession() session.Session {
	return session.Session{
		Token: "t1",
		User: session.User{
			ID:        "1",
			FirstName: "Aziz",
			LastName:  "Karimov",
			Email:     "a@b.com",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryStore())
	require.NoError(t, err)

	want := testSession()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, want, *got)
}

func TestLoadEmptyStoreReturnsNoSession(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryStore())
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLoadNeverReturnsHalfASession(t *testing.T) {
	tests := []struct {
		name string
		seed func(kv storage.Store)
	}{
		{
			name: "token without user",
			seed: func(kv storage.Store) {
				require.NoError(t, kv.Set(storage.KeyAuthToken, "t1"))
			},
		},
		{
			name: "user without token",
			seed: func(kv storage.Store) {
				require.NoError(t, kv.Set(storage.KeyUser, `{"id":"1"}`))
			},
		},
		{
			name: "undecodable user",
			seed: func(kv storage.Store) {
				require.NoError(t, kv.Set(storage.KeyAuthToken, "t1"))
				require.NoError(t, kv.Set(storage.KeyUser, "{not json"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			kv := storage.NewMemoryStore()
			test.seed(kv)

			store, err := session.NewStore(kv)
			require.NoError(t, err)

			got, err := store.Load()
			require.NoError(t, err)
			require.Nil(t, got)

			// The broken pair is cleared so the next boot starts clean.
			_, haveToken, err := kv.Get(storage.KeyAuthToken)
			require.NoError(t, err)
			require.False(t, haveToken)
		})
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	kv := storage.NewMemoryStore()
	store, err := session.NewStore(kv)
	require.NoError(t, err)

	require.NoError(t, store.Save(testSession()))
	require.NoError(t, store.Clear())

	_, haveToken, _ := kv.Get(storage.KeyAuthToken)
	_, haveUser, _ := kv.Get(storage.KeyUser)
	require.False(t, haveToken)
	require.False(t, haveUser)
}

func TestSaveRejectsEmptyToken(t *testing.T) {
	store, err := session.NewStore(storage.NewMemoryStore())
	require.NoError(t, err)
	require.Error(t, store.Save(session.Session{User: session.User{ID: "1"}}))
}

// failingUserWrites rejects writes of the user key so the rollback path can
// be observed.
type failingUserWrites struct {
	*storage.MemoryStore
}

func (f failingUserWrites) Set(key, value string) error {
	if key == storage.KeyUser {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(key, value)
}

func TestSaveRollsBackTokenWhenUserWriteFails(t *testing.T) {
	kv := failingUserWrites{storage.NewMemoryStore()}
	store, err := session.NewStore(kv)
	require.NoError(t, err)

	require.Error(t, store.Save(testSession()))

	_, haveToken, err := kv.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	require.False(t, haveToken, "a failed save must not leave the token behind")
}
