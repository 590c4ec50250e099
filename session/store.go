package session

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/autolife-uz/autolife-go/storage"
)

// Store persists a session under two independent storage keys, guaranteeing
// callers never observe a token without a user or vice versa.
type Store struct {
	kv storage.Store
}

func NewStore(kv storage.Store) (*Store, error) {
	if kv == nil {
		return nil, errors.New("[session.NewStore] storage is required")
	}
	return &Store{kv: kv}, nil
}

// Load reads the persisted session. It returns nil when either key is absent
// or the user payload fails to decode; a broken half-pair is cleared so the
// next load starts clean.
func (s *Store) Load() (*Session, error) {
	token, haveToken, err := s.kv.Get(storage.KeyAuthToken)
	if err != nil {
		return nil, errors.Wrap(err, "[Store.Load] get token")
	}
	rawUser, haveUser, err := s.kv.Get(storage.KeyUser)
	if err != nil {
		return nil, errors.Wrap(err, "[Store.Load] get user")
	}

	if !haveToken || !haveUser || token == "" {
		if haveToken != haveUser {
			_ = s.Clear()
		}
		return nil, nil
	}

	var user User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		_ = s.Clear()
		return nil, nil
	}
	return &Session{Token: token, User: user}, nil
}

// Save writes both halves of the session. If the user half cannot be written
// the token is rolled back, so a partial pair is never left behind.
func (s *Store) Save(sess Session) error {
	if sess.Token == "" {
		return errors.New("[Store.Save] session token is required")
	}
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return errors.Wrap(err, "[Store.Save] marshal user")
	}
	if err := s.kv.Set(storage.KeyAuthToken, sess.Token); err != nil {
		return errors.Wrap(err, "[Store.Save] set token")
	}
	if err := s.kv.Set(storage.KeyUser, string(rawUser)); err != nil {
		_ = s.kv.Delete(storage.KeyAuthToken)
		return errors.Wrap(err, "[Store.Save] set user")
	}
	return nil
}

// Clear removes both keys.
func (s *Store) Clear() error {
	tokenErr := s.kv.Delete(storage.KeyAuthToken)
	userErr := s.kv.Delete(storage.KeyUser)
	if tokenErr != nil {
		return errors.Wrap(tokenErr, "[Store.Clear] delete token")
	}
	if userErr != nil {
		return errors.Wrap(userErr, "[Store.Clear] delete user")
	}
	return nil
}
