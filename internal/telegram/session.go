package telegram

import (
	"sync"

	"go-resume-finder/internal/criteria"
)

// Session accumulates one chat's search parameters between commands.
// Pending names the field the next plain message fills.
type Session struct {
	Fields  criteria.Input
	Pending string
}

// SessionStore keys sessions by chat id. Created on /start, reset on
// /clear, required by every other command. The lock guards the map; each
// session itself is only touched from the update loop.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*Session)}
}

// Start creates a fresh session for the chat, replacing any previous one.
func (s *SessionStore) Start(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := &Session{}
	s.sessions[chatID] = session
	return session
}

func (s *SessionStore) Get(chatID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Clear resets the accumulated parameters. It reports false when the chat
// never started a session.
func (s *SessionStore) Clear(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[chatID]; !ok {
		return false
	}
	s.sessions[chatID] = &Session{}
	return true
}
