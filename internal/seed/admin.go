package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

// EnsureAdmin creates an admin account unless the username is taken. It
// reports whether a user was created. The password is never defaulted.
func EnsureAdmin(ctx context.Context, users storage.UserStore, username, password string) (*models.User, bool, error) {
	if username == "" || password == "" {
		return nil, false, errors.New("admin username and password are both required")
	}
	existing, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("look up %s: %w", username, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	u, err := users.CreateUser(ctx, models.CreateUserInput{Username: username, Password: password, IsAdmin: true})
	if err != nil {
		return nil, false, fmt.Errorf("create admin %s: %w", username, err)
	}
	return u, true, nil
}
