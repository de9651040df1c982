// Package controller renders ldform command results on the terminal.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

// UI defines how command results reach the user. Implementations write
// documents and prompts verbatim so they can be piped; everything else is
// free-form.
type UI interface {
	DisplayDocument(ctx context.Context, data []byte, warnings []domain.Warning) error
	DisplayBatch(ctx context.Context, items []domain.BatchItem) error
	DisplayDiff(ctx context.Context, result domain.CompareResult) error
	DisplayFields(ctx context.Context, fields []string) error
	DisplayCatalog(ctx context.Context, catalog *m.Catalog) error
	DisplaySchemaType(ctx context.Context, st m.SchemaType) error
	DisplayUsers(ctx context.Context, users []m.User) error
	DisplayPrompt(ctx context.Context, prompt string) error
	DisplayMessage(ctx context.Context, format string, args ...any)
}

// NewUI picks the interactive UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
