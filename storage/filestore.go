package storage

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var knownKeys = map[string]struct{}{
	KeyAuthToken: {},
	KeyUser:      {},
	KeyDarkMode:  {},
}

// FileStore persists each key as a file under a data folder. Values are small
// (a token, a JSON-encoded user, a boolean) so a file per key keeps writes
// independent, matching the localStorage contract.
type FileStore struct {
	dir string
}

// NewFileStore creates the data folder if needed and returns a store rooted
// at it. Files are written 0600, the folder 0700: the token is a live
// credential.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("[NewFileStore] data folder is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] os.MkdirAll")
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	path, err := fs.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "[FileStore.Get] os.ReadFile")
	}
	return string(data), true, nil
}

func (fs *FileStore) Set(key, value string) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return errors.Wrap(err, "[FileStore.Set] os.WriteFile")
	}
	return nil
}

func (fs *FileStore) Delete(key string) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileStore.Delete] os.Remove")
	}
	return nil
}

func (fs *FileStore) path(key string) (string, error) {
	if _, ok := knownKeys[key]; !ok {
		return "", errors.Errorf("[FileStore] unknown storage key %q", key)
	}
	return filepath.Join(fs.dir, key), nil
}
