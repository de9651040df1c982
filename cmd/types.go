package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
)

// typesCmd represents the types command.
var typesCmd = newTypesCmd()

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types [TYPE]",
		Short: "List the supported schema.org types",
		Long: `List the schema types of the catalog, or show the fields, input hints
and template values of one type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			catalog := wf.Catalog()
			ui := newUI(cmd)

			if len(args) == 0 {
				return ui.DisplayCatalog(cmd.Context(), catalog)
			}

			st, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownType, args[0])
			}

			return ui.DisplaySchemaType(cmd.Context(), st)
		},
	}
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
