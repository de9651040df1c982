package cmd

import (
	"github.com/spf13/cobra"

	"ldform.dev/pkg/ldform/internal/domain"
)

var promptTypeFlag string
var promptKindFlag string
var promptFieldFlags []string
var promptFileFlags []string
var promptTemplateFlag bool

// promptCmd represents the prompt command.
var promptCmd = newPromptCmd()

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Write a language model prompt from form fields",
		Long: `Write a text prompt for a language model from the same fields 'build'
takes. Article, product and faq prompts apply to the Article, Product and
FAQPage types; any other combination produces the generic prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := domain.ParsePromptKind(promptKindFlag)
			if err != nil {
				return err
			}

			fields, err := parseFieldFlags(promptFieldFlags)
			if err != nil {
				return err
			}

			wf, err := loadWorkflow()
			if err != nil {
				return err
			}

			prompt, err := wf.Prompt(cmd.Context(), domain.PromptArgs{
				Type:       promptTypeFlag,
				Kind:       kind,
				FieldFiles: promptFileFlags,
				Fields:     fields,
				Template:   promptTemplateFlag,
			})
			if err != nil {
				return err
			}

			return newUI(cmd).DisplayPrompt(cmd.Context(), prompt)
		},
	}

	cmd.Flags().StringVarP(&promptTypeFlag, "type", "t", "", "schema.org type the fields belong to")
	cobra.CheckErr(cmd.MarkFlagRequired("type"))
	cmd.Flags().StringVarP(&promptKindFlag, "kind", "k", string(domain.PromptGeneric), "prompt kind: article, product, faq or generic")
	cmd.Flags().StringArrayVarP(&promptFieldFlags, "field", "f", nil, "field as path=value (can be repeated)")
	cmd.Flags().StringArrayVar(&promptFileFlags, "file", nil, "field file to read (can be repeated)")
	cmd.Flags().BoolVar(&promptTemplateFlag, "template", false, "prefill fields with the type's example values")

	return cmd
}

func init() {
	rootCmd.AddCommand(promptCmd)
}
