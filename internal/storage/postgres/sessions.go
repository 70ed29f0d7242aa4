package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

// The sess column holds the session payload as JSON: {"userId": 7}.
func sessionPayload(s models.Session) string {
	return fmt.Sprintf(`{"userId":%d}`, s.UserID)
}

func (s *Store) GetSession(ctx context.Context, sid string) (*models.Session, error) {
	var (
		raw    []byte
		expire time.Time
	)
	row := s.db.QueryRowContext(ctx,
		"SELECT sess, expire FROM sessions WHERE sid = $1 AND expire > $2", sid, time.Now().UTC())
	if err := row.Scan(&raw, &expire); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	userID := gjson.GetBytes(raw, "userId")
	if !userID.Exists() {
		return nil, nil
	}
	return &models.Session{ID: sid, UserID: userID.Int(), ExpiresAt: expire}, nil
}

func (s *Store) SaveSession(ctx context.Context, sess models.Session) error {
	query := `INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, $3)
		ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire`
	if _, err := s.exec(ctx, query, sess.ID, sessionPayload(sess), sess.ExpiresAt.UTC()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) DestroySession(ctx context.Context, sid string) error {
	if _, err := s.exec(ctx, "DELETE FROM sessions WHERE sid = $1", sid); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *Store) PruneSessions(ctx context.Context) (int64, error) {
	n, err := s.exec(ctx, "DELETE FROM sessions WHERE expire <= $1", time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	return n, nil
}
