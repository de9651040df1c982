package cmd

import (
	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
)

var extractValuesFlag string

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "List the field paths of a JSON-LD document",
		Long: `Print every field path of a document, sorted, one per line.

With --values the scalar values are also written to a field file that
'ldform build --file' reads back into the same document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			data, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := wf.Extract(cmd.Context(), domain.ExtractArgs{
				Document:   data,
				ValuesFile: extractValuesFlag,
			})
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			if extractValuesFlag != "" {
				ui.DisplayMessage(cmd.Context(), "wrote %d values to %s", len(result.Values), extractValuesFlag)
			}

			return ui.DisplayFields(cmd.Context(), result.Fields)
		},
	}

	cmd.Flags().StringVar(&extractValuesFlag, "values", "", "write the scalar values to this field file")

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
