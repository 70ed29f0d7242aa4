package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

const (
	// CookieName is the name of the login cookie.
	CookieName = "vapeshop.sid"
	// SessionLifetime is how long a login lasts.
	SessionLifetime = 30 * 24 * time.Hour
)

// Sessions issues and resolves login sessions backed by a SessionStore.
type Sessions struct {
	store  storage.SessionStore
	secret []byte
	now    func() time.Time
}

func NewSessions(store storage.SessionStore, secret string) *Sessions {
	return &Sessions{store: store, secret: []byte(secret), now: time.Now}
}

// Start persists a new session for userID and returns the signed cookie value.
func (s *Sessions) Start(ctx context.Context, userID int64) (string, *models.Session, error) {
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(SessionLifetime),
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("start session: %w", err)
	}
	token, err := GenerateToken(s.secret, sess.ID, sess.ExpiresAt)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return token, &sess, nil
}

// Resolve returns the live session named by a cookie value, or nil when the
// token is invalid or the session is gone.
func (s *Sessions) Resolve(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}
	sid, err := ValidateToken(s.secret, token)
	if err != nil {
		return nil, nil
	}
	return s.store.GetSession(ctx, sid)
}

// End destroys the session named by a cookie value. Unknown or invalid tokens
// are ignored.
func (s *Sessions) End(ctx context.Context, token string) error {
	sid, err := ValidateToken(s.secret, token)
	if err != nil {
		return nil
	}
	return s.store.DestroySession(ctx, sid)
}
