package session

import (
	"context"
	"sync"
)

// Store описывает хранилище снимков сессий с токеном в роли ключа
type Store interface {
	Get(ctx context.Context, token string) (*Session, bool)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore хранит сессии в памяти процесса
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore создает новый экземпляр MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}
	cp := *sess
	return &cp, true
}

func (s *MemoryStore) Put(_ context.Context, sess *Session) error {
	if sess == nil || sess.Token == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.Token] = &cp
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
