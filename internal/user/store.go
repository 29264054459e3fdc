package user

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// File names under the state directory. The address lives in its own file,
// keyed independently of the session, and survives sign-out only if the
// caller chooses not to clear it.
const (
	sessionFile = "session.json"
	addressFile = "address.json"
)

// Store persists the session and delivery address across runs. It is the
// durable-storage analogue of the browser's localStorage keys.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the persisted session, or nil when the client is anonymous.
// A missing file is not an error.
func (s *Store) Load() (*Session, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, sessionFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session after a successful sign-in or sign-up.
func (s *Store) Save(sess Session) error {
	return s.write(sessionFile, sess)
}

// Clear removes the persisted session. It is idempotent: clearing an absent
// session succeeds.
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, sessionFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// LoadAddress returns the saved delivery address, or nil when none was saved.
func (s *Store) LoadAddress() (*Address, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, addressFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var addr Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// SaveAddress persists the delivery address edited on the profile page.
func (s *Store) SaveAddress(addr Address) error {
	return s.write(addressFile, addr)
}

// ClearAddress removes the saved address; absent files are fine.
func (s *Store) ClearAddress() error {
	err := os.Remove(filepath.Join(s.dir, addressFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), raw, 0o600)
}
