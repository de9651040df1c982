package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	m "ldform.dev/pkg/ldform/internal/model"
)

// ErrNotFound is returned by user stores for unknown names.
var ErrNotFound = errors.New("not found")

// UserStore persists accounts. Writes are last-writer-wins; implementations
// only serialise access within one process.
type UserStore interface {
	Get(ctx context.Context, name string) (m.User, error)
	// List returns all users sorted by name.
	List(ctx context.Context) ([]m.User, error)
	// Put creates or replaces a user.
	Put(ctx context.Context, user m.User) error
	Delete(ctx context.Context, name string) error
	Close() error
}

// Store kinds accepted by OpenUserStore.
const (
	StoreFile = "file"
	StoreBolt = "bolt"
	StoreSQL  = "sql"
)

// OpenUserStore opens the store of the given kind. location is a file path
// for the file and bolt stores and a DSN for the SQL store.
func OpenUserStore(kind, location string) (UserStore, error) {
	if location == "" {
		return nil, fmt.Errorf("user store %q: empty location", kind)
	}

	switch strings.ToLower(kind) {
	case StoreFile, "":
		return NewFileUserStore(location), nil
	case StoreBolt:
		return NewBoltUserStore(location)
	case StoreSQL:
		return NewSQLUserStore(location)
	default:
		return nil, fmt.Errorf("unknown user store %q (want %s, %s or %s)", kind, StoreFile, StoreBolt, StoreSQL)
	}
}

// userRecord is the stored form of a user. Its JSON shape matches the
// users.json files of earlier releases: {"name": {"password": ..., "is_admin": ...}}.
type userRecord struct {
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

func toRecord(u m.User) userRecord {
	rec := userRecord{Password: u.PasswordHash, IsAdmin: u.Admin}
	if !u.CreatedAt.IsZero() {
		rec.CreatedAt = u.CreatedAt.Unix()
	}

	return rec
}

func fromRecord(name string, rec userRecord) m.User {
	u := m.User{Name: name, PasswordHash: rec.Password, Admin: rec.IsAdmin}
	if rec.CreatedAt != 0 {
		u.CreatedAt = time.Unix(rec.CreatedAt, 0).UTC()
	}

	return u
}
