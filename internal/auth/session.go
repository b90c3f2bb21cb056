package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Session represents a user session
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionManager persists the current login between runs as a small
// JSON file in the user's home directory.
type SessionManager struct {
	sessionFile string
	current     *Session
}

// NewSessionManager creates a session manager and loads any session
// left by a previous run.
func NewSessionManager() *SessionManager {
	sm := &SessionManager{sessionFile: sessionFilePath()}
	if err := sm.LoadSession(); err != nil {
		// Not fatal, just means nobody is logged in yet.
		log.Printf("[DEBUG] No previous session found or failed to load: %v", err)
	}
	return sm
}

func sessionFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".blockfall_session"
	}
	return filepath.Join(home, ".blockfall_session")
}

// SaveSession saves the current session to disk
func (sm *SessionManager) SaveSession(userID int, username, email string) error {
	sm.current = &Session{
		UserID:   userID,
		Username: username,
		Email:    email,
	}

	data, err := json.Marshal(sm.current)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(sm.sessionFile, data, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// LoadSession loads a session from disk
func (sm *SessionManager) LoadSession() error {
	data, err := os.ReadFile(sm.sessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	sm.current = &session
	return nil
}

// GetCurrentSession returns the current session data
func (sm *SessionManager) GetCurrentSession() *Session {
	return sm.current
}

// IsLoggedIn returns true if a user is currently logged in
func (sm *SessionManager) IsLoggedIn() bool {
	return sm.current != nil
}

// ClearSession clears the current session
func (sm *SessionManager) ClearSession() error {
	sm.current = nil

	if _, err := os.Stat(sm.sessionFile); err == nil {
		if err := os.Remove(sm.sessionFile); err != nil {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
	}

	return nil
}

// GetUserInfo returns formatted user information
func (sm *SessionManager) GetUserInfo() string {
	if sm.current == nil {
		return "Not logged in"
	}
	return fmt.Sprintf("Logged in as: %s (%s)", sm.current.Username, sm.current.Email)
}
