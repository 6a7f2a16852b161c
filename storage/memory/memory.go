// Package memory provides a thread-safe in-memory implementation of
// storage.AccountStore. Data does not survive a process restart; that
// volatility is a documented property of the system, not an accident.
package memory

import (
	"crypto/subtle"
	"sort"
	"sync"

	"github.com/mterrano/lockbox/storage"
)

// Store is a mutex-guarded in-memory account store. Item values are the
// encoded envelope strings, so the stored form is exactly what a
// persistent backend would hold.
type Store struct {
	mu    sync.RWMutex
	users map[string]*user
}

type user struct {
	passwordHash string
	items        map[string]string
	failures     int
}

var _ storage.AccountStore = (*Store)(nil)

// NewStore creates an empty in-memory Store.
func NewStore() *Store {
	return &Store{users: make(map[string]*user)}
}

func (s *Store) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return storage.ErrUsernameTaken
	}
	s.users[username] = &user{
		passwordHash: storage.HashPassword(password),
		items:        make(map[string]string),
	}
	return nil
}

func (s *Store) CheckPassword(username, password string) bool {
	s.mu.RLock()
	u, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	hash := storage.HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(u.passwordHash)) == 1
}

func (s *Store) PutItem(username, key, sealed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return storage.ErrUserNotFound
	}
	u.items[key] = sealed
	return nil
}

func (s *Store) GetItem(username, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return "", storage.ErrNotFound
	}
	sealed, ok := u.items[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return sealed, nil
}

func (s *Store) ListKeys(username string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	keys := make([]string, 0, len(u.items))
	for k := range u.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) IncrementFailures(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[username]; ok {
		u.failures++
	}
}

func (s *Store) ResetFailures(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[username]; ok {
		u.failures = 0
	}
}

func (s *Store) Failures(username string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return 0
	}
	return u.failures
}
