package cmd

import (
	"github.com/spf13/cobra"

	"crdgen/internal/generator"
	"crdgen/pkg/logging"
)

var (
	generateInput           string
	generateOutput          string
	generateContinueOnError bool
	generateFormat          string
	generateQuiet           bool
	generateStrictNames     bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate CRD manifests from JSON Schema files",
	Long: `Generate one CustomResourceDefinition manifest per JSON Schema file found
below the input directory.

Schema files must be named <group>_<plural>_<Kind>.json and live in a directory
named after the API version, for example:

  schemas/v1/example.com_widgets_Widget.json

References into the file's $defs are inlined, titles and null defaults are
removed and the result is written to <output>/<group>_<plural>.yaml.

Examples:
  crdgen generate --input schemas --output crds
  crdgen generate -i schemas -o crds --continue-on-error -f json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "", "Directory holding the JSON Schema files (searched recursively)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "crds", "Directory the CRD manifests are written to")
	generateCmd.Flags().BoolVar(&generateContinueOnError, "continue-on-error", false, "Process every file and report all failures at the end")
	generateCmd.Flags().BoolVar(&generateStrictNames, "strict-names", false, "Reject groups and plurals that are not valid Kubernetes names")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "table", "Result format (table, json, yaml)")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress non-essential output")
	_ = generateCmd.MarkFlagRequired("input")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(cmd, generateFormat, generateQuiet)
	if err != nil {
		return err
	}

	logging.Debug("CLI", "Generating manifests from %s into %s", generateInput, generateOutput)
	results, runErr := generator.Run(generator.Options{
		InputDir:        generateInput,
		OutputDir:       generateOutput,
		ContinueOnError: generateContinueOnError,
		StrictNames:     generateStrictNames,
	})

	// Partial results are still reported when continuing on error.
	if runErr == nil || len(results) > 0 {
		if err := formatter.FormatGenerated(results); err != nil {
			return err
		}
	}
	return runErr
}
