package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Session is the advisor's persisted login state: a bearer token in a
// file under the config dir. Consumers receive a Session explicitly;
// the token never lives in a package-level variable.
type Session struct {
	path string
}

// OpenSession returns the session backed by the default token file.
func OpenSession() Session {
	return Session{path: filepath.Join(Dir(), "session")}
}

// SessionAt returns a session backed by an explicit file, for tests.
func SessionAt(path string) Session {
	return Session{path: path}
}

// Token returns the stored bearer token, preferring the ANKADASH_TOKEN
// environment variable. Empty means not logged in.
func (s Session) Token() string {
	if tok := os.Getenv("ANKADASH_TOKEN"); tok != "" {
		return tok
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save persists a token after a successful login.
func (s Session) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear removes the stored token (logout). Missing file is fine.
func (s Session) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
