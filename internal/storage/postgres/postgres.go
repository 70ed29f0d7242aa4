// Package postgres is the database-backed storage implementation.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/01moynul/vapeshop-golang/internal/models"
)

const uniqueViolation = "23505"

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// get scans one row into dest and reports whether a row was found.
func (s *Store) get(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := s.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrap(err)
	}
	return true, nil
}

// exec runs a statement and returns the number of affected rows.
func (s *Store) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, wrap(err)
	}
	return res.RowsAffected()
}

func (s *Store) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	n, err := s.exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	return n > 0, nil
}

// updateQuery builds "UPDATE table SET a = $1, b = $2[, updated_at = NOW()]
// WHERE id = $n RETURNING cols" from the sent fields only.
func updateQuery(table, returning string, id int64, set []models.Assignment, stamp bool) (string, []any) {
	parts := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+1)
	for i, a := range set {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}
	if stamp {
		parts = append(parts, "updated_at = NOW()")
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(parts, ", "), len(args), returning)
	return query, args
}

// update applies set to the row and scans the result into dest. Tables
// without an updated_at column skip the write entirely when nothing was sent.
func (s *Store) update(ctx context.Context, dest any, table, returning string, id int64, set []models.Assignment, stamp bool) (bool, error) {
	if len(set) == 0 && !stamp {
		return s.get(ctx, dest, "SELECT "+returning+" FROM "+table+" WHERE id = $1", id)
	}
	query, args := updateQuery(table, returning, id, set, stamp)
	found, err := s.get(ctx, dest, query, args...)
	if err != nil {
		return false, fmt.Errorf("update %s: %w", table, err)
	}
	return found, nil
}

// wrap marks unique violations with models.ErrDuplicate.
func wrap(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, models.ErrDuplicate)
	}
	return err
}
