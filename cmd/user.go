package cmd

import (
	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/auth"
	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

const generatedUserPasswordBytes = 12

var userPasswordFlag string
var userAdminFlag bool

// userCmd represents the user command.
var userCmd = newUserCmd()

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the accounts of the form server",
		Long: `Manage the accounts stored in the configured user store (auth.store and
auth.store_path). Local commands act with administrator rights.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newUserListCmd(), newUserAddCmd(), newUserPasswdCmd(), newUserDeleteCmd())

	return cmd
}

// withAccounts opens the user store for the duration of fn.
func withAccounts(fn func(domain.Accounts) error) (err error) {
	users, closeStore, err := loadAccounts()
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStore(); err == nil {
			err = closeErr
		}
	}()

	return fn(users)
}

// passwordOrGenerated returns the flag value, or a random password and true.
func passwordOrGenerated() (string, bool, error) {
	if userPasswordFlag != "" {
		return userPasswordFlag, false, nil
	}

	secret, err := auth.GenerateSecret(generatedUserPasswordBytes)

	return secret, true, err
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withAccounts(func(users domain.Accounts) error {
				list, err := users.List(cmd.Context(), m.SystemSession())
				if err != nil {
					return err
				}

				return newUI(cmd).DisplayUsers(cmd.Context(), list)
			})
		},
	}
}

func newUserAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create an account",
		Long:  "Create an account. Without --password a random password is generated and printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, generated, err := passwordOrGenerated()
			if err != nil {
				return err
			}

			return withAccounts(func(users domain.Accounts) error {
				user, err := users.Add(cmd.Context(), m.SystemSession(), args[0], password, userAdminFlag)
				if err != nil {
					return err
				}

				ui := newUI(cmd)
				ui.DisplayMessage(cmd.Context(), "created user %q (admin: %t)", user.Name, user.Admin)

				if generated {
					ui.DisplayMessage(cmd.Context(), "password: %s", password)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&userPasswordFlag, "password", "", "password for the account")
	cmd.Flags().BoolVar(&userAdminFlag, "admin", false, "grant administrator rights")

	return cmd
}

func newUserPasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd NAME",
		Short: "Reset the password of an account",
		Long:  "Reset the password of an account. Without --password a random password is generated and printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, generated, err := passwordOrGenerated()
			if err != nil {
				return err
			}

			return withAccounts(func(users domain.Accounts) error {
				if err := users.ResetPassword(cmd.Context(), m.SystemSession(), args[0], password); err != nil {
					return err
				}

				ui := newUI(cmd)
				ui.DisplayMessage(cmd.Context(), "password of %q reset", args[0])

				if generated {
					ui.DisplayMessage(cmd.Context(), "password: %s", password)
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&userPasswordFlag, "password", "", "new password")

	return cmd
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME",
		Aliases: []string{"rm"},
		Short:   "Delete an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withAccounts(func(users domain.Accounts) error {
				if err := users.Delete(cmd.Context(), m.SystemSession(), args[0]); err != nil {
					return err
				}

				newUI(cmd).DisplayMessage(cmd.Context(), "deleted user %q", args[0])

				return nil
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(userCmd)
}
