// Package cmd provides the root command and CLI setup for ldform.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ldform.dev/pkg/ldform/internal/adapter"
	"ldform.dev/pkg/ldform/internal/controller"
	"ldform.dev/pkg/ldform/internal/domain"
	m "ldform.dev/pkg/ldform/internal/model"
)

// Shared dependencies. They are built on first use so tests can swap in mocks.
var fsAdapter adapter.FileAdapter
var codec adapter.DocumentCodec
var workflow domain.Workflow
var accounts domain.Accounts

// newUI picks the renderer for a command's output.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout))
}

var verboseFlag bool
var logFileFlag string

const fieldPathsHelp = `Field paths use dots for nested objects and brackets for list items:
  name                   top-level property
  offers.price           nested object property
  image[0]               first list element
  mainEntity[1].question property of the second list element`

const rootLongDescription = `ldform turns flat form fields into schema.org JSON-LD documents. It
compares documents structurally, lists the field paths of existing
documents and writes language model prompts from the same form data.

` + fieldPathsHelp

const buildLongDescription = `Generate a JSON-LD document from form fields.

Fields come from --file field files (YAML, or JSON when the name ends in
.json) followed by --field path=value flags, so flags win. With --glob one
document is written per matching field file into --out-dir.

` + fieldPathsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ldform",
		Short:        "Schema.org JSON-LD form tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadFileAdapter() adapter.FileAdapter {
	if fsAdapter == nil {
		fsAdapter = adapter.NewLocalFileAdapter()
	}

	return fsAdapter
}

func loadCodec() adapter.DocumentCodec {
	if codec == nil {
		codec = adapter.NewJSONCodec(viper.GetInt(maxDepthKey))
	}

	return codec
}

// loadWorkflow builds the workflow from configuration unless one is already set.
func loadWorkflow() (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	files := loadFileAdapter()
	jsonCodec := loadCodec()

	catalog, err := adapter.NewYAMLCatalogLoader(files, viper.GetString(catalogFileKey)).Load()
	if err != nil {
		return nil, err
	}

	workflow = domain.NewWorkflow(
		files,
		adapter.NewLocalFieldFileAdapter(files, jsonCodec),
		jsonCodec,
		catalog,
		limitOptions()...,
	)

	return workflow, nil
}

// loadAccounts opens the configured user store. The returned func closes it
// and is a no-op when accounts were injected.
func loadAccounts() (domain.Accounts, func() error, error) {
	if accounts != nil {
		return accounts, func() error { return nil }, nil
	}

	store, err := adapter.OpenUserStore(viper.GetString(authStoreKey), viper.GetString(authStorePathKey))
	if err != nil {
		return nil, nil, err
	}

	return domain.NewAccounts(store), store.Close, nil
}

// parseFieldFlags turns repeated path=value flags into fields. Values stay
// text; the composer converts prices and ratings.
func parseFieldFlags(values []string) (m.FieldMap, error) {
	fields := make(m.FieldMap, 0, len(values))

	for _, raw := range values {
		path, value, ok := strings.Cut(raw, "=")
		path = strings.TrimSpace(path)

		if !ok || path == "" {
			return nil, fmt.Errorf("invalid field %q: want path=value", raw)
		}

		fields = append(fields, m.Field{Path: path, Value: value})
	}

	return fields, nil
}
