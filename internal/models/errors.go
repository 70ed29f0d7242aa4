package models

import "errors"

// ErrDuplicate is wrapped by both storage backends when a write would break a
// unique column (username, slug, email).
var ErrDuplicate = errors.New("duplicate value")
