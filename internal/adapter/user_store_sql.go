package adapter

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	m "ldform.dev/pkg/ldform/internal/model"
)

//go:embed schema/users.sql
var usersSchema string

// SQLUserStore keeps users in a SQL table. A DSN starting with postgres://
// selects PostgreSQL, anything else is a SQLite file path.
type SQLUserStore struct {
	db       *sql.DB
	postgres bool
}

// NewSQLUserStore opens the database and creates the users table if needed.
func NewSQLUserStore(dsn string) (*SQLUserStore, error) {
	driverName := detectDriver(dsn)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &SQLUserStore{db: db, postgres: driverName == "postgres"}

	if !store.postgres {
		// One connection keeps SQLite writers from tripping over each other.
		db.SetMaxOpenConns(1)

		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enabling WAL: %w", err)
		}
	}

	if _, err := db.Exec(usersSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return store, nil
}

func detectDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}

	return "sqlite"
}

var placeholderRegex = regexp.MustCompile(`\?`)

// convertPlaceholders converts ? to $1, $2, etc. for PostgreSQL.
func convertPlaceholders(query string) string {
	counter := 0

	return placeholderRegex.ReplaceAllStringFunc(query, func(_ string) string {
		counter++
		return fmt.Sprintf("$%d", counter)
	})
}

func (s *SQLUserStore) q(query string) string {
	if s.postgres {
		return convertPlaceholders(query)
	}

	return query
}

// Get implements UserStore.
func (s *SQLUserStore) Get(ctx context.Context, name string) (m.User, error) {
	var rec userRecord

	err := s.db.QueryRowContext(ctx,
		s.q(`SELECT password_hash, is_admin, created_at FROM users WHERE name = ?`), name,
	).Scan(&rec.Password, &rec.IsAdmin, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return m.User{}, fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	if err != nil {
		return m.User{}, fmt.Errorf("query user %q: %w", name, err)
	}

	return fromRecord(name, rec), nil
}

// List implements UserStore.
func (s *SQLUserStore) List(ctx context.Context) ([]m.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, password_hash, is_admin, created_at FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	users := []m.User{}

	for rows.Next() {
		var (
			name string
			rec  userRecord
		)

		if err := rows.Scan(&name, &rec.Password, &rec.IsAdmin, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		users = append(users, fromRecord(name, rec))
	}

	return users, rows.Err()
}

// Put implements UserStore.
func (s *SQLUserStore) Put(ctx context.Context, user m.User) error {
	rec := toRecord(user)

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (name, password_hash, is_admin, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET password_hash = excluded.password_hash, is_admin = excluded.is_admin`),
		user.Name, rec.Password, rec.IsAdmin, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("store user %q: %w", user.Name, err)
	}

	return nil
}

// Delete implements UserStore.
func (s *SQLUserStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM users WHERE name = ?`), name)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	return nil
}

// Close implements UserStore.
func (s *SQLUserStore) Close() error {
	return s.db.Close()
}
