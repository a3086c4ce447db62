package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCredentials is returned by Load when no credentials file exists.
var ErrNoCredentials = errors.New("not logged in")

// Credentials mirror what the login flow stores: an opaque token plus user
// identity. Read by every request that needs a userId; cleared on logout.
type Credentials struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Valid reports whether both gating fields are present. Either one missing
// forces the caller back to the login flow.
func (c Credentials) Valid() bool {
	return c.Token != "" && c.UserID != ""
}

// UserIDOrAnonymous returns the stored user id, or the literal "anonymous"
// fallback the backend accepts when identity is unset.
func (c Credentials) UserIDOrAnonymous() string {
	if c.UserID == "" {
		return "anonymous"
	}
	return c.UserID
}

// Store persists Credentials to disk.
type Store interface {
	Save(c Credentials) error
	Load() (Credentials, error) // returns ErrNoCredentials if none exist
	Delete() error
}

// diskStore is the concrete Store that writes to the XDG data directory.
type diskStore struct {
	path string // full path to credentials.json
}

// NewStore returns a Store backed by the XDG data directory.
// Path: $XDG_DATA_HOME/scandash/credentials.json or
// ~/.local/share/scandash/credentials.json
func NewStore() (Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{path: filepath.Join(dir, "credentials.json")}, nil
}

// dataDir returns the scandash-specific XDG data directory.
func dataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "scandash"), nil
}

// Save marshals c to JSON and writes it atomically via a temp file +
// os.Rename. The file stays at 0600: it carries a token.
func (d *diskStore) Save(c Credentials) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "credentials-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}

	if err = os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	return nil
}

// Load reads and unmarshals the credentials file.
// Returns ErrNoCredentials if the file does not exist.
func (d *diskStore) Load() (Credentials, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Credentials{}, ErrNoCredentials
		}
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return c, nil
}

// Delete removes the credentials file from disk.
func (d *diskStore) Delete() error {
	if err := os.Remove(d.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
