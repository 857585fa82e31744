package services

import (
	"sync"
	"time"

	"github.com/fabianengeln/paarspiel/internal/models"
)

// SessionStore binds opaque cookie tokens to running games. Bindings expire
// after a rolling idle window; reads refresh the deadline.
type SessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*sessionEntry
	done    chan struct{}
}

type sessionEntry struct {
	game      *models.GameSession
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	s := &SessionStore{
		ttl:     ttl,
		entries: make(map[string]*sessionEntry),
		done:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Get returns the game bound to token, or nil when nothing is bound or the
// binding has expired.
func (s *SessionStore) Get(token string) *models.GameSession {
	if token == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, token)
		return nil
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	return entry.game
}

func (s *SessionStore) Put(token string, game *models.GameSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = &sessionEntry{game: game, expiresAt: time.Now().Add(s.ttl)}
}

func (s *SessionStore) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// Close stops the background sweep.
func (s *SessionStore) Close() {
	close(s.done)
}

func (s *SessionStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, token)
				}
			}
			s.mu.Unlock()
		}
	}
}
