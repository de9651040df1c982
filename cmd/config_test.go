package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"ldform.dev/pkg/ldform/internal/adapter"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "ldform", configBaseName)
	assert.Equal(t, "ldform.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "parallel", buildParallelFlagName)
	assert.Equal(t, "build.parallel", buildParallelConfigKey)
	assert.Equal(t, "limits.max_depth", maxDepthKey)
	assert.Equal(t, "server.listen", serverListenKey)
	assert.Equal(t, "auth.store_path", authStorePathKey)
	assert.Equal(t, ".ldform.log", defaultLogFilename)
	assert.Equal(t, "LDFORM", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, 64, viper.GetInt(maxDepthKey))
	assert.Equal(t, 1024, viper.GetInt(maxIndexKey))
	assert.Equal(t, adapter.StoreFile, viper.GetString(authStoreKey))
	assert.Equal(t, 24*time.Hour, viper.GetDuration(authSessionTTLKey))
	assert.Equal(t, 30*time.Second, viper.GetDuration(serverShutdownKey))
	assert.True(t, viper.GetBool(serverCompressKey))
	assert.Equal(t, defaultBootstrapUser, viper.GetString(authBootstrapUserKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
