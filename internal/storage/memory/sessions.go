package memory

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func (s *Store) GetSession(_ context.Context, sid string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sid]
	if !ok || sess.Expired(s.now()) {
		return nil, nil
	}
	return &sess, nil
}

func (s *Store) SaveSession(_ context.Context, sess models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *Store) DestroySession(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

func (s *Store) PruneSessions(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var n int64
	for sid, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, sid)
			n++
		}
	}
	return n, nil
}
