package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/auth"
	m "ldform.dev/pkg/ldform/internal/model"
)

const generatedPasswordBytes = 12

// Accounts implements sign-in and user administration on top of a UserStore.
type Accounts interface {
	Authenticate(ctx context.Context, name, password string) (m.Session, error)
	List(ctx context.Context, session m.Session) ([]m.User, error)
	Add(ctx context.Context, session m.Session, name, password string, admin bool) (m.User, error)
	ResetPassword(ctx context.Context, session m.Session, name, password string) error
	Delete(ctx context.Context, session m.Session, name string) error
	// Bootstrap creates the first administrator when the store is empty. An
	// empty password is replaced by a random one, which is returned.
	Bootstrap(ctx context.Context, name, password string) (created bool, secret string, err error)
}

type accounts struct {
	adapter.UserStore
	now func() time.Time
}

// NewAccounts creates an Accounts service backed by store.
func NewAccounts(store adapter.UserStore) Accounts {
	return &accounts{UserStore: store, now: time.Now}
}

func (a *accounts) lookup(ctx context.Context, name string) (m.User, error) {
	user, err := a.Get(ctx, name)
	if errors.Is(err, adapter.ErrNotFound) {
		return m.User{}, fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}

	return user, err
}

func (a *accounts) Authenticate(ctx context.Context, name, password string) (m.Session, error) {
	if name == "" || password == "" {
		return m.Session{}, ErrMissingCredentials
	}

	user, err := a.lookup(ctx, name)
	if errors.Is(err, ErrUserNotFound) {
		slog.Info("login rejected", "user", name, "reason", "unknown user")
		return m.Session{}, ErrInvalidCredentials
	}

	if err != nil {
		return m.Session{}, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		slog.Info("login rejected", "user", name, "reason", "wrong password")
		return m.Session{}, ErrInvalidCredentials
	}

	if auth.IsLegacyHash(user.PasswordHash) {
		if err := a.setPassword(ctx, user, password); err != nil {
			slog.Warn("could not upgrade legacy password hash", "user", name, "error", err)
		} else {
			slog.Info("upgraded legacy password hash", "user", name)
		}
	}

	return m.Session{Username: user.Name, Admin: user.Admin}, nil
}

func (a *accounts) setPassword(ctx context.Context, user m.User, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = hash

	return a.Put(ctx, user)
}

func requireAdmin(session m.Session) error {
	if !session.Admin {
		return ErrForbidden
	}

	return nil
}

// selfTarget blocks an admin from managing their own account. Local tooling
// runs with a system session and has no account of its own.
func selfTarget(session m.Session, name string) bool {
	return !session.System && session.Username == name
}

func (a *accounts) List(ctx context.Context, session m.Session) ([]m.User, error) {
	if err := requireAdmin(session); err != nil {
		return nil, err
	}

	return a.UserStore.List(ctx)
}

func (a *accounts) Add(ctx context.Context, session m.Session, name, password string, admin bool) (m.User, error) {
	if err := requireAdmin(session); err != nil {
		return m.User{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return m.User{}, ErrMissingCredentials
	}

	if _, err := a.lookup(ctx, name); err == nil {
		return m.User{}, fmt.Errorf("%w: %q", ErrUserExists, name)
	} else if !errors.Is(err, ErrUserNotFound) {
		return m.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return m.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := m.User{Name: name, PasswordHash: hash, Admin: admin, CreatedAt: a.now().UTC().Truncate(time.Second)}
	if err := a.Put(ctx, user); err != nil {
		return m.User{}, err
	}

	slog.Info("user added", "user", name, "admin", admin, "by", session.Username)

	return user, nil
}

func (a *accounts) ResetPassword(ctx context.Context, session m.Session, name, password string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if password == "" {
		return ErrMissingCredentials
	}

	if selfTarget(session, name) {
		return ErrSelfModification
	}

	user, err := a.lookup(ctx, name)
	if err != nil {
		return err
	}

	if err := a.setPassword(ctx, user, password); err != nil {
		return err
	}

	slog.Info("password reset", "user", name, "by", session.Username)

	return nil
}

func (a *accounts) Delete(ctx context.Context, session m.Session, name string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if selfTarget(session, name) {
		return ErrSelfModification
	}

	user, err := a.lookup(ctx, name)
	if err != nil {
		return err
	}

	if user.Admin {
		users, err := a.UserStore.List(ctx)
		if err != nil {
			return err
		}

		admins := 0

		for _, u := range users {
			if u.Admin {
				admins++
			}
		}

		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	if err := a.UserStore.Delete(ctx, name); err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("%w: %q", ErrUserNotFound, name)
		}

		return err
	}

	slog.Info("user deleted", "user", name, "by", session.Username)

	return nil
}

func (a *accounts) Bootstrap(ctx context.Context, name, password string) (bool, string, error) {
	users, err := a.UserStore.List(ctx)
	if err != nil {
		return false, "", err
	}

	if len(users) > 0 {
		return false, "", nil
	}

	if name == "" {
		return false, "", ErrMissingCredentials
	}

	secret := ""

	if password == "" {
		password, err = auth.GenerateSecret(generatedPasswordBytes)
		if err != nil {
			return false, "", err
		}

		secret = password
	}

	if _, err := a.Add(ctx, m.SystemSession(), name, password, true); err != nil {
		return false, "", err
	}

	slog.Warn("created initial administrator", "user", name, "generated_password", secret != "")

	return true, secret, nil
}
