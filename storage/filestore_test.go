package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/autolife-uz/autolife-go/storage"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := fs.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, fs.Set(storage.KeyAuthToken, "t1"))
	value, ok, err := fs.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "t1", value)

	require.NoError(t, fs.Set(storage.KeyAuthToken, "t2"))
	value, _, err = fs.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	require.Equal(t, "t2", value)

	require.NoError(t, fs.Delete(storage.KeyAuthToken))
	_, ok, err = fs.Get(storage.KeyAuthToken)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStoreDeleteMissingKeyIsNotAnError(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, fs.Delete(storage.KeyUser))
}

func TestFileStoreRejectsUnknownKeys(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.Error(t, fs.Set("../escape", "x"))
	_, _, err = fs.Get("random")
	require.Error(t, err)
}

func TestFileStoreRequiresFolder(t *testing.T) {
	_, err := storage.NewFileStore("")
	require.Error(t, err)
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, fs.Set(storage.KeyAuthToken, "t1"))
	require.NoError(t, fs.Set(storage.KeyDarkMode, "true"))
	require.NoError(t, fs.Delete(storage.KeyAuthToken))

	value, ok, err := fs.Get(storage.KeyDarkMode)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "true", value)
}
