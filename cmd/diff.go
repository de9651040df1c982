package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
)

// stdinName selects standard input as a document source.
const stdinName = "-"

var diffUnifiedFlag bool

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Compare two JSON documents structurally",
		Long: `Compare two JSON documents by structure rather than by text.

Keys may appear in any order and numbers compare by value. Every
difference is reported with its path; --unified adds a line diff of the
re-indented documents. Use - to read one of the documents from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == stdinName && args[1] == stdinName {
				return errors.New("only one document can be read from stdin")
			}

			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			a, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			b, err := readDocument(cmd, args[1])
			if err != nil {
				return err
			}

			result, err := wf.Compare(cmd.Context(), domain.CompareArgs{
				A:       a,
				B:       b,
				NameA:   args[0],
				NameB:   args[1],
				Unified: diffUnifiedFlag,
			})
			if err != nil {
				var parseErr *domain.ParseError
				if errors.As(err, &parseErr) {
					return fmt.Errorf("%s is not valid JSON: %w", sideName(parseErr.Side, args), parseErr.Err)
				}

				return err
			}

			return newUI(cmd).DisplayDiff(cmd.Context(), result)
		},
	}

	cmd.Flags().BoolVarP(&diffUnifiedFlag, "unified", "u", false, "also print a unified line diff")

	return cmd
}

func sideName(side domain.DocumentSide, args []string) string {
	if side == domain.SideB {
		return args[1]
	}

	return args[0]
}

func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := loadFileAdapter().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
