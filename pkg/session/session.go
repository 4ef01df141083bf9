// Package session keeps the login state between runs: a logged-in flag, the
// user's email and display name. Authorization is an allow-list of emails.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotAllowed is returned when an email is not on the allow-list.
var ErrNotAllowed = errors.New("access denied: email is not registered")

type Session struct {
	LoggedIn bool   `json:"is_logged_in"`
	Email    string `json:"user_email,omitempty"`
	Name     string `json:"user_name,omitempty"`
	Path     string `json:"-"`
}

// DefaultPath is ~/.config/sheetdash/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sheetdash", "session.json"), nil
}

// Open loads the session at path; a missing file is a logged-out session.
func Open(path string) (*Session, error) {
	s := &Session{Path: path}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}

// Authenticated reports whether both the flag and the email are present.
func (s *Session) Authenticated() bool {
	return s.LoggedIn && s.Email != ""
}

// Login checks email against allowed (case-insensitive) and persists the
// session. An empty name falls back to the local part of the email.
func (s *Session) Login(email, name string, allowed []string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !Allowed(email, allowed) {
		return ErrNotAllowed
	}
	if strings.TrimSpace(name) == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	s.LoggedIn = true
	s.Email = email
	s.Name = strings.TrimSpace(name)
	return s.Save()
}

// Logout clears all three values and removes the file.
func (s *Session) Logout() error {
	s.LoggedIn, s.Email, s.Name = false, "", ""
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(s)
}

// Greeting is the welcome line, using the name or else the email. It is
// empty when neither is known.
func (s *Session) Greeting() string {
	who := s.Name
	if who == "" {
		who = s.Email
	}
	if who == "" {
		return ""
	}
	return fmt.Sprintf("Selamat datang %s di dashboard monitoring project", who)
}

// Allowed reports whether email is on the list, ignoring case.
func Allowed(email string, allowed []string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, a := range allowed {
		if strings.ToLower(strings.TrimSpace(a)) == email {
			return true
		}
	}
	return false
}
