package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ldform.dev/pkg/ldform/internal/auth"
	"ldform.dev/pkg/ldform/internal/server"
)

const generatedJWTKeyBytes = 32

var serveListenFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form API over HTTP",
		Long: `Start the HTTP API: sign-in, schema types, document generation, diff,
field extraction, prompts and user administration.

When the user store is empty an administrator named by auth.bootstrap_user
is created. Without auth.bootstrap_password a random password is generated
and printed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ui := newUI(cmd)

			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			users, closeStore, err := loadAccounts()
			if err != nil {
				return err
			}
			defer closeStore()

			bootstrapUser := viper.GetString(authBootstrapUserKey)

			created, secret, err := users.Bootstrap(ctx, bootstrapUser, viper.GetString(authBootstrapPasswordKey))
			if err != nil {
				return err
			}

			if created && secret != "" {
				ui.DisplayMessage(ctx, "created administrator %q with password %s", bootstrapUser, secret)
			}

			signingKey := viper.GetString(authJWTKeyKey)
			if signingKey == "" {
				if signingKey, err = auth.GenerateSecret(generatedJWTKeyBytes); err != nil {
					return err
				}

				ui.DisplayMessage(ctx, "warning: %s is not set; sessions end when the server restarts", authJWTKeyKey)
			}

			tokens := auth.NewTokenService([]byte(signingKey), viper.GetString(authJWTIssuerKey), viper.GetDuration(authSessionTTLKey))
			handler := server.NewHandler(wf, users, tokens, loadCodec(), viper.GetBool(authSecureCookieKey))

			srv := server.New(server.Config{
				Listen:          viper.GetString(serverListenKey),
				ReadTimeout:     viper.GetDuration(serverReadTimeoutKey),
				WriteTimeout:    viper.GetDuration(serverWriteTimeoutKey),
				IdleTimeout:     viper.GetDuration(serverIdleTimeoutKey),
				ShutdownTimeout: viper.GetDuration(serverShutdownKey),
			}, server.WithDefaults(server.NewRouter(handler), viper.GetBool(serverCompressKey)))

			ui.DisplayMessage(ctx, "listening on %s", viper.GetString(serverListenKey))

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&serveListenFlag, listenFlagName, "l", viper.GetString(serverListenKey), "address to listen on")
	bindFlagToConfig(cmd.Flags().Lookup(listenFlagName), serverListenKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
