package formatting

import (
	"gopkg.in/yaml.v3"

	"crdgen/internal/exporter"
	"crdgen/internal/generator"
)

type yamlFormatter struct {
	options Options
}

func (f *yamlFormatter) FormatGenerated(results []generator.Result) error {
	return f.encode(generatedRecords(results))
}

func (f *yamlFormatter) FormatExported(results []exporter.Exported) error {
	return f.encode(exportedRecords(results))
}

func (f *yamlFormatter) encode(v any) error {
	enc := yaml.NewEncoder(f.options.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
