package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/auth"
	m "ldform.dev/pkg/ldform/internal/model"
)

func newTestAccounts(t *testing.T) (Accounts, adapter.UserStore) {
	t.Helper()

	store := adapter.NewFileUserStore(filepath.Join(t.TempDir(), "users.json"))

	return NewAccounts(store), store
}

func TestAccounts_BootstrapAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newTestAccounts(t)

	created, secret, err := accounts.Bootstrap(ctx, "Eric", "1314")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, secret)

	created, _, err = accounts.Bootstrap(ctx, "Other", "pw")
	require.NoError(t, err)
	assert.False(t, created, "bootstrap only runs on an empty store")

	session, err := accounts.Authenticate(ctx, "Eric", "1314")
	require.NoError(t, err)
	assert.Equal(t, m.Session{Username: "Eric", Admin: true}, session)

	_, err = accounts.Authenticate(ctx, "Eric", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = accounts.Authenticate(ctx, "Nobody", "1314")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = accounts.Authenticate(ctx, "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestAccounts_BootstrapGeneratesPassword(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newTestAccounts(t)

	created, secret, err := accounts.Bootstrap(ctx, "admin", "")
	require.NoError(t, err)
	require.True(t, created)
	require.NotEmpty(t, secret)

	_, err = accounts.Authenticate(ctx, "admin", secret)
	assert.NoError(t, err)
}

func TestAccounts_LegacyHashUpgraded(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	legacy := `{"Eric": {"password": "` + auth.LegacyHash("1314") + `", "is_admin": true}}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	store := adapter.NewFileUserStore(path)
	accounts := NewAccounts(store)

	session, err := accounts.Authenticate(ctx, "Eric", "1314")
	require.NoError(t, err)
	assert.True(t, session.Admin)

	user, err := store.Get(ctx, "Eric")
	require.NoError(t, err)
	assert.False(t, auth.IsLegacyHash(user.PasswordHash))
	assert.True(t, auth.CheckPassword("1314", user.PasswordHash))
}

func TestAccounts_Administration(t *testing.T) {
	ctx := context.Background()
	accounts, _ := newTestAccounts(t)

	_, _, err := accounts.Bootstrap(ctx, "Eric", "1314")
	require.NoError(t, err)

	admin := m.Session{Username: "Eric", Admin: true}
	member := m.Session{Username: "zoe"}

	t.Run("add", func(t *testing.T) {
		user, err := accounts.Add(ctx, admin, "zoe", "pw", false)
		require.NoError(t, err)
		assert.Equal(t, "zoe", user.Name)
		assert.False(t, user.CreatedAt.IsZero())

		_, err = accounts.Add(ctx, admin, "zoe", "pw2", false)
		assert.ErrorIs(t, err, ErrUserExists)

		_, err = accounts.Add(ctx, admin, " ", "pw", false)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = accounts.Add(ctx, admin, "max", "", false)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = accounts.Add(ctx, member, "max", "pw", false)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("list", func(t *testing.T) {
		users, err := accounts.List(ctx, admin)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Eric", users[0].Name)

		_, err = accounts.List(ctx, member)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("reset password", func(t *testing.T) {
		require.NoError(t, accounts.ResetPassword(ctx, admin, "zoe", "new"))

		_, err := accounts.Authenticate(ctx, "zoe", "new")
		assert.NoError(t, err)

		assert.ErrorIs(t, accounts.ResetPassword(ctx, admin, "Eric", "x"), ErrSelfModification)
		assert.ErrorIs(t, accounts.ResetPassword(ctx, admin, "ghost", "x"), ErrUserNotFound)
		assert.ErrorIs(t, accounts.ResetPassword(ctx, admin, "zoe", ""), ErrMissingCredentials)
		assert.ErrorIs(t, accounts.ResetPassword(ctx, member, "zoe", "x"), ErrForbidden)
	})

	t.Run("delete", func(t *testing.T) {
		assert.ErrorIs(t, accounts.Delete(ctx, admin, "Eric"), ErrSelfModification)
		assert.ErrorIs(t, accounts.Delete(ctx, m.SystemSession(), "Eric"), ErrLastAdmin)
		assert.ErrorIs(t, accounts.Delete(ctx, admin, "ghost"), ErrUserNotFound)
		assert.ErrorIs(t, accounts.Delete(ctx, member, "zoe"), ErrForbidden)

		require.NoError(t, accounts.Delete(ctx, admin, "zoe"))

		users, err := accounts.List(ctx, admin)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("second admin can be removed", func(t *testing.T) {
		_, err := accounts.Add(ctx, admin, "root", "pw", true)
		require.NoError(t, err)

		require.NoError(t, accounts.Delete(ctx, m.SystemSession(), "root"))
	})
}
