package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	m "ldform.dev/pkg/ldform/internal/model"
)

var bucketUsers = []byte("users")

// BoltUserStore keeps users in a bbolt bucket, one JSON record per name.
type BoltUserStore struct {
	db *bbolt.DB
}

// NewBoltUserStore opens (or creates) the database file at path.
func NewBoltUserStore(path string) (*BoltUserStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketUsers)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltUserStore{db: db}, nil
}

// Get implements UserStore.
func (s *BoltUserStore) Get(_ context.Context, name string) (m.User, error) {
	var user m.User

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketUsers).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("user %q: %w", name, ErrNotFound)
		}

		var rec userRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("decode user %q: %w", name, err)
		}

		user = fromRecord(name, rec)

		return nil
	})

	return user, err
}

// List implements UserStore. bbolt iterates keys in byte order.
func (s *BoltUserStore) List(_ context.Context) ([]m.User, error) {
	users := []m.User{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketUsers).ForEach(func(k, v []byte) error {
			var rec userRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode user %q: %w", k, err)
			}

			users = append(users, fromRecord(string(k), rec))

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Put implements UserStore.
func (s *BoltUserStore) Put(_ context.Context, user m.User) error {
	data, err := json.Marshal(toRecord(user))
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketUsers).Put([]byte(user.Name), data)
	})
}

// Delete implements UserStore.
func (s *BoltUserStore) Delete(_ context.Context, name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketUsers)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("user %q: %w", name, ErrNotFound)
		}

		return b.Delete([]byte(name))
	})
}

// Close implements UserStore.
func (s *BoltUserStore) Close() error {
	return s.db.Close()
}
