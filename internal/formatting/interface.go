// Package formatting renders the results of the generate and export commands
// for the terminal, as a table, or as JSON or YAML for scripting.
package formatting

import (
	"fmt"
	"io"
	"os"

	"crdgen/internal/exporter"
	"crdgen/internal/generator"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatJSON  OutputFormat = "json"  // JSON output
	FormatYAML  OutputFormat = "yaml"  // YAML output
)

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Writer io.Writer
	Quiet  bool // Suppress decorative elements
	Color  bool // Enable colored output
}

// Formatter renders command results
type Formatter interface {
	FormatGenerated(results []generator.Result) error
	FormatExported(results []exporter.Exported) error
}

// ParseFormat validates a format name given on the command line.
func ParseFormat(name string) (OutputFormat, error) {
	switch f := OutputFormat(name); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (expected table, json or yaml)", name)
}

// New creates the formatter for options.Format. Output goes to stdout unless
// options.Writer is set.
func New(options Options) Formatter {
	if options.Writer == nil {
		options.Writer = os.Stdout
	}
	switch options.Format {
	case FormatJSON:
		return &jsonFormatter{options: options}
	case FormatYAML:
		return &yamlFormatter{options: options}
	default:
		return &tableFormatter{options: options}
	}
}
