package cmd

import (
	"github.com/spf13/cobra"

	"crdgen/internal/exporter"
	"crdgen/internal/model"
	"crdgen/pkg/logging"
)

var (
	exportModels string
	exportOutput string
	exportGroup  string
	exportFormat string
	exportQuiet  bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export JSON Schema files from model descriptors",
	Long: `Export one JSON Schema file per model declared in the descriptor files of
the models directory.

Descriptor files are YAML documents of kind Model; documents of any other
kind are skipped. Each schema is written to
<output>/<group>_<plural>_<Model>.json.

Unless --group is given, the API group is read from a group.yaml file
in the descriptor's directory or its parent:

  group: example.com

Examples:
  crdgen export --models models --output schemas/v1
  crdgen export -m models --group example.com`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportModels, "models", "m", "", "Directory holding the model descriptor files")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Directory the schemas are written to (default: the models directory)")
	exportCmd.Flags().StringVarP(&exportGroup, "group", "g", "", "API group (default: read from group.yaml)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "table", "Result format (table, json, yaml)")
	exportCmd.Flags().BoolVarP(&exportQuiet, "quiet", "q", false, "Suppress non-essential output")
	_ = exportCmd.MarkFlagRequired("models")
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter(cmd, exportFormat, exportQuiet)
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = exportModels
	}

	items, err := model.LoadDir(exportModels)
	if err != nil {
		return err
	}
	logging.Debug("CLI", "Exporting %d document(s) from %s into %s", len(items), exportModels, output)

	exported, err := exporter.Export(items, output, exportGroup)
	if err != nil {
		return err
	}
	return formatter.FormatExported(exported)
}
