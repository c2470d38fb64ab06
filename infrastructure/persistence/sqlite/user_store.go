// Package sqlite implements the relational account store on SQLite. The
// database is opened in WAL mode with a busy timeout so the HTTP handlers can
// share one pooled handle.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Zzzisey/hackson/application/ports"
	"github.com/Zzzisey/hackson/domain/user"
	apperrors "github.com/Zzzisey/hackson/pkg/errors"
)

const busyTimeoutMS = 5000

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    email            TEXT    NOT NULL UNIQUE,
    hashed_password  TEXT    NOT NULL,
    full_name        TEXT    NOT NULL DEFAULT '',
    is_active        INTEGER NOT NULL DEFAULT 1,
    linked_person_id TEXT,
    is_linked        INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT    NOT NULL,
    updated_at       TEXT
);
CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

// UserStore is the SQLite-backed account store.
type UserStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string, logger *zap.Logger) (*UserStore, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=%d", path, busyTimeoutMS)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("ping database", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("apply schema", err)
	}

	logger.Info("user store opened", zap.String("path", path))
	return &UserStore{db: db, logger: logger}, nil
}

// Close releases the database handle.
func (s *UserStore) Close() error {
	return s.db.Close()
}

var _ ports.UserStore = (*UserStore)(nil)

// Create inserts a new account. A duplicate email maps to a conflict error;
// the generated id and creation time are written back onto u.
func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, hashed_password, full_name, is_active, linked_person_id, is_linked, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Email, u.HashedPassword, u.FullName, u.IsActive, u.LinkedPersonID, u.IsLinked,
		now.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("email already registered")
		}
		return apperrors.NewDatabaseError("create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.NewDatabaseError("create user", err)
	}
	u.ID = id
	u.CreatedAt = now
	return nil
}

// GetByEmail looks an account up by its unique email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, hashed_password, full_name, is_active, linked_person_id, is_linked, created_at, updated_at
		 FROM users WHERE email = ?`, email)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user")
		}
		return nil, apperrors.NewDatabaseError("get user", err)
	}
	return u, nil
}

// SetPersonLink records the back-reference from an account to its graph node
// and flips is_linked.
func (s *UserStore) SetPersonLink(ctx context.Context, userID int64, personID string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET linked_person_id = ?, is_linked = 1, updated_at = ? WHERE id = ?`,
		personID, time.Now().UTC().Format(time.RFC3339), userID)
	if err != nil {
		return apperrors.NewDatabaseError("link person", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewDatabaseError("link person", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("user")
	}
	return nil
}

// List returns a page of accounts ordered by id.
func (s *UserStore) List(ctx context.Context, skip, limit int) ([]*user.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, hashed_password, full_name, is_active, linked_person_id, is_linked, created_at, updated_at
		 FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("list users", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("list users", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		u         user.User
		createdAt string
		updatedAt sql.NullString
		linkedID  sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.IsActive,
		&linkedID, &u.IsLinked, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	if updatedAt.Valid {
		if t, err := time.Parse(time.RFC3339, updatedAt.String); err == nil {
			u.UpdatedAt = &t
		}
	}
	if linkedID.Valid {
		u.LinkedPersonID = &linkedID.String
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
