package formatting

import (
	"fmt"

	"crdgen/internal/exporter"
	"crdgen/internal/generator"
)

type jsonFormatter struct {
	options Options
}

// generatedRecord is the serialized form of a generator.Result.
type generatedRecord struct {
	Group   string `json:"group" yaml:"group"`
	Kind    string `json:"kind" yaml:"kind"`
	Plural  string `json:"plural" yaml:"plural"`
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source" yaml:"source"`
	Output  string `json:"output" yaml:"output"`
}

// exportedRecord is the serialized form of an exporter.Exported.
type exportedRecord struct {
	Model       string `json:"model" yaml:"model"`
	Group       string `json:"group" yaml:"group"`
	Plural      string `json:"plural" yaml:"plural"`
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func generatedRecords(results []generator.Result) []generatedRecord {
	records := make([]generatedRecord, 0, len(results))
	for _, r := range results {
		records = append(records, generatedRecord{
			Group:   r.Naming.Group,
			Kind:    r.Naming.Kind,
			Plural:  r.Naming.Plural,
			Version: r.Naming.Version,
			Source:  r.Source,
			Output:  r.Output,
		})
	}
	return records
}

func exportedRecords(results []exporter.Exported) []exportedRecord {
	records := make([]exportedRecord, 0, len(results))
	for _, e := range results {
		records = append(records, exportedRecord{
			Model:       e.Model,
			Group:       e.Group,
			Plural:      e.Plural,
			Path:        e.Path,
			Description: e.Description,
		})
	}
	return records
}

func (f *jsonFormatter) FormatGenerated(results []generator.Result) error {
	_, err := fmt.Fprintln(f.options.Writer, PrettyJSON(generatedRecords(results)))
	return err
}

func (f *jsonFormatter) FormatExported(results []exporter.Exported) error {
	_, err := fmt.Fprintln(f.options.Writer, PrettyJSON(exportedRecords(results)))
	return err
}
