// Package session is the single source of truth for "who is logged in".
//
// A session pairs a bearer token with the user record it authenticates.
// Both are persisted to the state directory as two named files and are
// always written and cleared together: the store never holds, nor leaves
// on disk, a token without a user or a user without a token.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Dooooug/QuimiDocs-Deploy/internal/domain"
	"github.com/Dooooug/QuimiDocs-Deploy/internal/errors"
)

const (
	// TokenFileName holds the raw bearer token string
	TokenFileName = "token"
	// UserFileName holds the serialized user record
	UserFileName = "user.json"
)

// Session pairs the bearer credential with the identity it authenticates
type Session struct {
	Token string
	User  domain.User
}

// Subscriber is notified after every session change. A nil session
// means logged out. Callbacks run synchronously on the mutating
// goroutine and must not call back into the store.
type Subscriber func(*Session)

// Store holds the current session in memory and mirrors it on disk.
//
// It is constructed once at startup and injected everywhere a session
// is needed; nothing else reads or writes the session files.
type Store struct {
	mu          sync.RWMutex
	stateDir    string
	current     *Session
	subscribers []Subscriber
}

// NewStore creates a session store rooted at the given state directory.
// No disk access happens until Initialize, Login, or Logout.
func NewStore(stateDir string) *Store {
	return &Store{stateDir: stateDir}
}

// Initialize rehydrates the session from disk.
//
// If either file is missing or unreadable, both are cleared and the
// store starts logged out; a half-valid session is never kept. The
// returned error is informational (the corrupt-state case): the store
// is usable either way.
func (s *Store) Initialize() error {
	tokenPath := filepath.Join(s.stateDir, TokenFileName)
	userPath := filepath.Join(s.stateDir, UserFileName)

	tokenData, tokenErr := os.ReadFile(tokenPath)
	userData, userErr := os.ReadFile(userPath)

	if os.IsNotExist(tokenErr) && os.IsNotExist(userErr) {
		return nil
	}

	// One file present without the other is a corrupt session.
	if tokenErr != nil || userErr != nil {
		s.clearFiles()
		return errors.New(errors.ErrCodeSessionIncomplete, "stored session was incomplete and was discarded").
			WithSuggestion("Run 'quimidocs login' to create a fresh session")
	}

	token := string(tokenData)
	var user domain.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.clearFiles()
		return errors.NewSessionCorruptError(err)
	}

	if token == "" || user.Validate() != nil {
		s.clearFiles()
		return errors.New(errors.ErrCodeSessionCorrupt, "stored session failed validation and was discarded").
			WithSuggestion("Run 'quimidocs login' to create a fresh session")
	}

	s.mu.Lock()
	s.current = &Session{Token: token, User: user}
	s.mu.Unlock()

	return nil
}

// Login stores the session in memory and persists both files as a pair.
// On any persistence failure the in-memory state is rolled back and the
// files are cleared so disk and memory cannot disagree.
func (s *Store) Login(token string, user domain.User) error {
	if token == "" {
		return errors.New(errors.ErrCodeSessionIncomplete, "refusing to store a session without a token")
	}
	if err := user.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeSessionIncomplete, "refusing to store a session without a valid user", err)
	}

	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeSessionStateDir, "failed to create state directory", err)
	}

	userData, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to encode user record", err)
	}

	tokenPath := filepath.Join(s.stateDir, TokenFileName)
	userPath := filepath.Join(s.stateDir, UserFileName)

	if err := os.WriteFile(tokenPath, []byte(token), 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to persist token", err)
	}
	if err := os.WriteFile(userPath, userData, 0o600); err != nil {
		// Do not leave a token without its user record.
		s.clearFiles()
		return errors.Wrap(errors.ErrCodeSessionPersist, "failed to persist user record", err)
	}

	s.mu.Lock()
	s.current = &Session{Token: token, User: user}
	subs := append([]Subscriber(nil), s.subscribers...)
	current := s.current
	s.mu.Unlock()

	for _, fn := range subs {
		fn(current)
	}
	return nil
}

// Logout clears the in-memory session and removes both files.
// Safe to call when already logged out.
func (s *Store) Logout() error {
	s.clearFiles()

	s.mu.Lock()
	s.current = nil
	subs := append([]Subscriber(nil), s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Current returns the active session, or nil when logged out
func (s *Store) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the bearer token, or "" when logged out
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// User returns the authenticated user, or nil when logged out
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := s.current.User
	return &u
}

// Authenticated reports whether both token and user are present
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.Token != ""
}

// Subscribe registers a callback invoked after every Login and Logout.
// Consumers treat session reads as reactive, not one-time snapshots.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) clearFiles() {
	// Removal failures are not actionable here; a stale file is caught
	// and discarded by the next Initialize.
	_ = os.Remove(filepath.Join(s.stateDir, TokenFileName))
	_ = os.Remove(filepath.Join(s.stateDir, UserFileName))
}
