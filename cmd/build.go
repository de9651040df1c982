package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ldform.dev/pkg/ldform/internal/domain"
)

var buildTypeFlag string
var buildFieldFlags []string
var buildFileFlags []string
var buildSameAsFlags []string
var buildTemplateFlag bool
var buildCompactFlag bool
var buildOutFlag string
var buildGlobFlag string
var buildOutDirFlag string
var buildParallelFlag uint

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"generate"},
		Short:   "Generate a JSON-LD document from form fields",
		Long:    buildLongDescription,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			if buildGlobFlag != "" {
				return runBatch(cmd, wf)
			}

			if buildOutDirFlag != "" {
				return errors.New("--out-dir requires --glob")
			}

			fields, err := parseFieldFlags(buildFieldFlags)
			if err != nil {
				return err
			}

			result, err := wf.Generate(cmd.Context(), domain.BuildArgs{
				Type:       buildTypeFlag,
				FieldFiles: buildFileFlags,
				Fields:     fields,
				SameAs:     buildSameAsFlags,
				Template:   buildTemplateFlag,
				Pretty:     !buildCompactFlag,
			})
			if err != nil {
				return err
			}

			ui := newUI(cmd)

			if buildOutFlag == "" {
				return ui.DisplayDocument(cmd.Context(), result.JSON, result.Warnings)
			}

			if err := loadFileAdapter().WriteFile(buildOutFlag, append(result.JSON, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", buildOutFlag, err)
			}

			for _, w := range result.Warnings {
				ui.DisplayMessage(cmd.Context(), "warning: %s", w)
			}

			ui.DisplayMessage(cmd.Context(), "wrote %s (etag %s)", buildOutFlag, result.ETag)

			return nil
		},
	}

	configureBuildFlags(cmd)

	return cmd
}

func runBatch(cmd *cobra.Command, wf domain.Workflow) error {
	if buildOutDirFlag == "" {
		return errors.New("--glob requires --out-dir")
	}

	if len(buildFieldFlags) > 0 || len(buildFileFlags) > 0 || buildOutFlag != "" {
		return errors.New("--glob cannot be combined with --field, --file or --out")
	}

	items, err := wf.GenerateBatch(cmd.Context(), domain.BatchArgs{
		Type:     buildTypeFlag,
		Pattern:  buildGlobFlag,
		OutDir:   buildOutDirFlag,
		SameAs:   buildSameAsFlags,
		Template: buildTemplateFlag,
		Pretty:   !buildCompactFlag,
		Threads:  viper.GetUint(buildParallelConfigKey),
	})
	if len(items) > 0 {
		if displayErr := newUI(cmd).DisplayBatch(cmd.Context(), items); displayErr != nil {
			return displayErr
		}
	}

	return err
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func configureBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildTypeFlag, "type", "t", "", "schema.org type to generate (see 'ldform types')")
	cobra.CheckErr(cmd.MarkFlagRequired("type"))
	cmd.Flags().StringArrayVarP(&buildFieldFlags, "field", "f", nil, "field as path=value (can be repeated)")
	cmd.Flags().StringArrayVar(&buildFileFlags, "file", nil, "field file to read (can be repeated)")
	cmd.Flags().StringArrayVar(&buildSameAsFlags, "same-as", nil, "social profile URL for sameAs (can be repeated)")
	cmd.Flags().BoolVar(&buildTemplateFlag, "template", false, "prefill fields with the type's example values")
	cmd.Flags().BoolVar(&buildCompactFlag, "compact", false, "write compact JSON instead of indented")
	cmd.Flags().StringVarP(&buildOutFlag, "out", "o", "", "write the document to this file instead of stdout")
	cmd.Flags().StringVar(&buildGlobFlag, "glob", "", "generate one document per field file matching this pattern (supports **)")
	cmd.Flags().StringVar(&buildOutDirFlag, "out-dir", "", "output directory for --glob")
	cmd.Flags().UintVarP(&buildParallelFlag, buildParallelFlagName, "p", viper.GetUint(buildParallelConfigKey), "number of parallel workers for --glob")
	bindFlagToConfig(cmd.Flags().Lookup(buildParallelFlagName), buildParallelConfigKey)
}
