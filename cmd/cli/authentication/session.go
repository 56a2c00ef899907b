package authentication

// session.go persists the CLI's auth session (token + user) between runs.

import (
	"encoding/json"
	"os"
	"path/filepath"

	"bookhub/internal/httpapi/dto"
)

const sessionFile = "session.json"

// Session is the explicit auth state passed through the client's request
// layer instead of living in ambient globals.
type Session struct {
	Token string          `json:"token"`
	User  dto.UserSummary `json:"user"`
}

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bookhub", sessionFile), nil
}

// Load reads the stored session. A missing file yields an empty session.
func Load() (*Session, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the session to the user config directory.
func (s *Session) Save() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear wipes the stored session, both in memory and on disk.
func (s *Session) Clear() error {
	s.Token = ""
	s.User = dto.UserSummary{}

	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Active reports whether the session holds a token.
func (s *Session) Active() bool {
	return s.Token != ""
}
