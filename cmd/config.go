package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "ldform"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "LDFORM"

	maxDepthKey    = "limits.max_depth"
	maxIndexKey    = "limits.max_index"
	catalogFileKey = "catalog.file"

	buildParallelFlagName  = "parallel"
	buildParallelConfigKey = "build.parallel"
	defaultBuildParallel   = 4

	listenFlagName         = "listen"
	serverListenKey        = "server.listen"
	serverReadTimeoutKey   = "server.read_timeout"
	serverWriteTimeoutKey  = "server.write_timeout"
	serverIdleTimeoutKey   = "server.idle_timeout"
	serverShutdownKey      = "server.shutdown_timeout"
	serverCompressKey      = "server.compress"
	defaultServerListen    = ":8080"
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = time.Minute
	defaultIdleTimeout     = 2 * time.Minute
	defaultShutdownTimeout = 30 * time.Second

	authStoreKey             = "auth.store"
	authStorePathKey         = "auth.store_path"
	authJWTKeyKey            = "auth.jwt_key"
	authJWTIssuerKey         = "auth.jwt_issuer"
	authSessionTTLKey        = "auth.session_ttl"
	authBootstrapUserKey     = "auth.bootstrap_user"
	authBootstrapPasswordKey = "auth.bootstrap_password"
	authSecureCookieKey      = "auth.secure_cookie"
	defaultUserStorePath     = "users.json"
	defaultJWTIssuer         = "ldform"
	defaultSessionTTL        = 24 * time.Hour
	defaultBootstrapUser     = "admin"

	logFileFlagName  = "log-file"
	verboseFlagName  = "verbose"
	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".ldform.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		// Logging is not configured yet; a broken file must not stay silent.
		fmt.Fprintf(os.Stderr, "ldform: ignoring %s: %v\n", configFileName, err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(maxDepthKey, domain.DefaultMaxDepth)
	viper.SetDefault(maxIndexKey, domain.DefaultMaxIndex)
	viper.SetDefault(catalogFileKey, "")
	viper.SetDefault(buildParallelConfigKey, defaultBuildParallel)

	viper.SetDefault(serverListenKey, defaultServerListen)
	viper.SetDefault(serverReadTimeoutKey, defaultReadTimeout)
	viper.SetDefault(serverWriteTimeoutKey, defaultWriteTimeout)
	viper.SetDefault(serverIdleTimeoutKey, defaultIdleTimeout)
	viper.SetDefault(serverShutdownKey, defaultShutdownTimeout)
	viper.SetDefault(serverCompressKey, true)

	viper.SetDefault(authStoreKey, adapter.StoreFile)
	viper.SetDefault(authStorePathKey, defaultUserStorePath)
	viper.SetDefault(authJWTKeyKey, "")
	viper.SetDefault(authJWTIssuerKey, defaultJWTIssuer)
	viper.SetDefault(authSessionTTLKey, defaultSessionTTL)
	viper.SetDefault(authBootstrapUserKey, defaultBootstrapUser)
	viper.SetDefault(authBootstrapPasswordKey, "")
	viper.SetDefault(authSecureCookieKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func limitOptions() []domain.Option {
	return []domain.Option{
		domain.WithMaxDepth(viper.GetInt(maxDepthKey)),
		domain.WithMaxIndex(viper.GetInt(maxIndexKey)),
	}
}
