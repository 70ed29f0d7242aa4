package memory

import (
	"context"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

func (s *Store) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByUsername(username), nil
}

func (s *Store) userByUsername(username string) *models.User {
	for _, u := range s.users {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

func (s *Store) CreateUser(_ context.Context, in models.CreateUserInput) (*models.User, error) {
	var p models.Password
	if err := p.Set(in.Password); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userByUsername(in.Username) != nil {
		return nil, duplicate("users.username", in.Username)
	}
	u := models.User{
		ID:       s.nextID("users"),
		Username: in.Username,
		Password: p.Hash,
		IsAdmin:  in.IsAdmin,
	}
	s.users[u.ID] = u
	return &u, nil
}

func (s *Store) ValidateUser(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return models.CheckPassword(u, password), nil
}
