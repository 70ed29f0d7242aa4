package models

import "time"

// Session is one row of the 'sessions' table. The user id is kept inside the
// JSON 'sess' column.
type Session struct {
	ID        string    `json:"sid" db:"sid"`
	UserID    int64     `json:"userId" db:"-"`
	ExpiresAt time.Time `json:"expire" db:"expire"`
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
