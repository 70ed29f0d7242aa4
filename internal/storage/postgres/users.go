package postgres

import (
	"context"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const userColumns = "id, username, password, is_admin"

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	found, err := s.get(ctx, &u, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	found, err := s.get(ctx, &u, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, in models.CreateUserInput) (*models.User, error) {
	var p models.Password
	if err := p.Set(in.Password); err != nil {
		return nil, err
	}
	var u models.User
	query := "INSERT INTO users (username, password, is_admin) VALUES ($1, $2, $3) RETURNING " + userColumns
	if _, err := s.get(ctx, &u, query, in.Username, p.Hash, in.IsAdmin); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &u, nil
}

func (s *Store) ValidateUser(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return models.CheckPassword(u, password), nil
}
