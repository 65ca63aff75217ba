package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const stateFile = "session.json"

// persisted is the on-disk shape. Token and user live under fixed keys and
// are always written and cleared together.
type persisted struct {
	Token string `json:"authToken"`
	User  User   `json:"authUser"`
}

// Keychain persists the session in a state file under a fixed name, so a
// restart restores the authenticated session without a fresh login.
type Keychain struct {
	path string
}

func NewKeychain(dir string) *Keychain {
	return &Keychain{path: filepath.Join(dir, stateFile)}
}

// Load reads the persisted session. A missing file is not an error: it
// returns nil, meaning nobody is logged in.
func (k *Keychain) Load() (*Session, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading session state: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing session state: %w", err)
	}

	if p.Token == "" {
		return nil, nil
	}

	return &Session{Token: p.Token, User: p.User}, nil
}

// Save writes the session, creating the state directory if needed.
func (k *Keychain) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(persisted{Token: s.Token, User: s.User}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session state: %w", err)
	}

	if err := os.WriteFile(k.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}

	return nil
}

// Clear removes the persisted session. Clearing an already-empty keychain
// is fine.
func (k *Keychain) Clear() error {
	if err := os.Remove(k.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session state: %w", err)
	}

	return nil
}
