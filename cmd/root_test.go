package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ldform.dev/pkg/ldform/internal/controller"
	m "ldform.dev/pkg/ldform/internal/model"
)

// newTestRootCmd returns a root command with the given subcommands, plain
// output captured in buffers and logs sent to a temporary file.
func newTestRootCmd(t *testing.T, subcommands ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	viper.Set(logFilenameKey, filepath.Join(t.TempDir(), "ldform.log"))

	originalUI := newUI
	newUI = func(cmd *cobra.Command) controller.UI { return controller.NewSimpleUI(cmd) }
	t.Cleanup(func() { newUI = originalUI })

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd, stdout, stderr
}

func TestParseFieldFlags(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    m.FieldMap
		wantErr bool
	}{
		{"empty", nil, m.FieldMap{}, false},
		{
			"ordered",
			[]string{"name=Mug", "offers.price=9.50"},
			m.FieldMap{{Path: "name", Value: "Mug"}, {Path: "offers.price", Value: "9.50"}},
			false,
		},
		{"value keeps equals signs", []string{"url=https://x.test/?a=b"}, m.FieldMap{{Path: "url", Value: "https://x.test/?a=b"}}, false},
		{"empty value", []string{"name="}, m.FieldMap{{Path: "name", Value: ""}}, false},
		{"trims path", []string{" name =Mug"}, m.FieldMap{{Path: "name", Value: "Mug"}}, false},
		{"missing equals", []string{"name"}, nil, true},
		{"empty path", []string{"=Mug"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldFlags(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "ldform", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup(verboseFlagName))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(logFileFlagName))
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, stdout, _ := newTestRootCmd(t)

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage:")
	assert.Contains(t, stdout.String(), "Field paths use dots")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	for _, name := range []string{"build", "diff", "extract", "types", "prompt", "serve", "user", "init", "version"} {
		t.Run(name, func(t *testing.T) {
			found, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, found.Name())
		})
	}
}

func TestLoadWorkflow_BuiltinCatalog(t *testing.T) {
	originalWorkflow, originalFS, originalCodec := workflow, fsAdapter, codec
	workflow, fsAdapter, codec = nil, nil, nil
	defer func() { workflow, fsAdapter, codec = originalWorkflow, originalFS, originalCodec }()

	wf, err := loadWorkflow()
	require.NoError(t, err)

	_, ok := wf.Catalog().Lookup("Product")
	assert.True(t, ok)

	again, err := loadWorkflow()
	require.NoError(t, err)
	assert.Same(t, wf, again)
}

func TestLoadWorkflow_MissingCatalogFile(t *testing.T) {
	originalWorkflow := workflow
	workflow = nil
	defer func() { workflow = originalWorkflow }()

	viper.Set(catalogFileKey, filepath.Join(t.TempDir(), "missing.yaml"))
	defer viper.Set(catalogFileKey, "")

	_, err := loadWorkflow()
	require.Error(t, err)
	assert.Nil(t, workflow)
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	// Create a mock command that succeeds
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not panic or exit
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute would call os.Exit(1), so only the command itself is run.
	err := rootCmd.Execute()
	require.Error(t, err)
}
