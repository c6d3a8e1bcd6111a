// Package session keeps the signed-in user between leavectl invocations.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/auth"
	"github.com/Vijaykarthik1/tnstc-leave/internal/domain/user"
)

// FileName is the single record the store reads and writes.
const FileName = "tnstc-user.json"

// Session is the persisted login: the user as returned by the backend and
// the bearer token for later calls.
type Session struct {
	User      user.User `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expiresAt,omitempty"`
}

// FromLogin converts the backend login payload into a Session.
func FromLogin(resp auth.LoginResponse) Session {
	return Session{User: resp.User, Token: resp.Token, ExpiresAt: resp.ExpiresAt}
}

// Valid reports whether s carries enough to be treated as signed in.
func (s Session) Valid() bool {
	return s.User.ID != "" && s.User.Role.IsValid() && s.Token != ""
}

// Listener is notified after every change of the stored session.
type Listener func(s Session, ok bool)

// Store persists one Session as JSON under a state directory.
type Store struct {
	path string

	mu        sync.Mutex
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored session. Missing or malformed data reads as absent.
func (s *Store) Load() (Session, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, false
	}
	if !sess.Valid() {
		return Session{}, false
	}
	return sess, true
}

// Save replaces the stored session and notifies subscribers.
func (s *Store) Save(sess Session) error {
	if !sess.Valid() {
		return ErrInvalidSession
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write session: %w", err)
	}

	s.notify(sess, true)
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	s.notify(Session{}, false)
	return nil
}

// UpdatePhoto sets the profile photo of the stored user.
func (s *Store) UpdatePhoto(url string) error {
	sess, ok := s.Load()
	if !ok {
		return ErrNoSession
	}
	sess.User.ProfilePhoto = strings.TrimSpace(url)
	return s.Save(sess)
}

// Subscribe registers fn for change notifications. Listeners run synchronously
// on the goroutine that changed the session.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
				return sub.id == id
			})
			s.mu.Unlock()
		})
	}
}

func (s *Store) notify(sess Session, ok bool) {
	s.mu.Lock()
	subs := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(sess, ok)
	}
}
