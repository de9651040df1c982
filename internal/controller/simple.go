package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDocument writes the document to stdout and the warnings to stderr.
func (s *SimpleUI) DisplayDocument(ctx context.Context, data []byte, warnings []domain.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.warn(warnings)

	return s.write(string(data) + "\n")
}

// DisplayBatch prints one row per field file.
func (s *SimpleUI) DisplayBatch(ctx context.Context, items []domain.BatchItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, item := range items {
		for _, w := range item.Warnings {
			s.errorf("warning: %s: %s\n", item.Source, w)
		}
	}

	return s.write(renderBatchTable(items))
}

// DisplayDiff prints the differences, followed by the unified diff when present.
func (s *SimpleUI) DisplayDiff(ctx context.Context, result domain.CompareResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.write(renderDiffTable(result)); err != nil {
		return err
	}

	if result.Unified == "" {
		return nil
	}

	return s.write("\n" + result.Unified)
}

// DisplayFields prints one path per line.
func (s *SimpleUI) DisplayFields(ctx context.Context, fields []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(renderFields(fields))
}

// DisplayCatalog prints the schema type table.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, catalog *m.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(renderCatalogTable(catalog))
}

// DisplaySchemaType prints the fields and template of one type.
func (s *SimpleUI) DisplaySchemaType(ctx context.Context, st m.SchemaType) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(renderSchemaType(st))
}

// DisplayUsers prints the account table.
func (s *SimpleUI) DisplayUsers(ctx context.Context, users []m.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(renderUsersTable(users))
}

// DisplayPrompt prints the prompt text.
func (s *SimpleUI) DisplayPrompt(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(prompt + "\n")
}

// DisplayMessage prints a status line to stderr.
func (s *SimpleUI) DisplayMessage(ctx context.Context, format string, args ...any) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.errorf(format+"\n", args...)
}

func (s *SimpleUI) warn(warnings []domain.Warning) {
	for _, w := range warnings {
		s.errorf("warning: %s\n", w)
	}
}

func (s *SimpleUI) write(text string) error {
	_, err := io.WriteString(s.cmd.OutOrStdout(), text)
	return err
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
