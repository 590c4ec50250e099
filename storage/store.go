// Package storage provides the durable key-value store backing session and
// preference persistence. It plays the role browser localStorage plays for the
// web client: independent string keys, best-effort reads, no transactions.
package storage

// Keys owned by the higher-level packages. The file store only accepts keys
// from this set so a bad caller cannot write outside the data folder.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
	KeyDarkMode  = "adminDarkMode"
)

type Store interface {
	// Get returns the value for key. The boolean reports whether the key
	// exists; a missing key is not an error.
	Get(key string) (string, bool, error)

	// Set creates or replaces the value for key.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
