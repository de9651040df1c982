package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/adapter"
	domainmocks "ldform.dev/pkg/ldform/internal/domain/mocks"
)

// lockedBuffer lets the test read output while the server goroutine writes it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestServeCmd_BootstrapAndShutdown(t *testing.T) {
	originalWorkflow, originalAccounts := workflow, accounts
	workflow, accounts = domainmocks.NewMockWorkflow(t), nil
	defer func() { workflow, accounts = originalWorkflow, originalAccounts }()

	storePath := filepath.Join(t.TempDir(), "users.json")
	viper.Set(authStorePathKey, storePath)
	defer viper.Set(authStorePathKey, defaultUserStorePath)

	cmd, _, _ := newTestRootCmd(t, newServeCmd())

	stderr := &lockedBuffer{}
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"serve", "--listen", "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "listening on")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}

	out := stderr.String()
	assert.Contains(t, out, `created administrator "admin" with password `)
	assert.Contains(t, out, authJWTKeyKey+" is not set")

	users, err := adapter.NewFileUserStore(storePath).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Name)
	assert.True(t, users[0].Admin)
}
