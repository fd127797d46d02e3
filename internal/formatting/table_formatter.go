package formatting

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"crdgen/internal/exporter"
	"crdgen/internal/generator"
	pkgstrings "crdgen/pkg/strings"
)

type tableFormatter struct {
	options Options
}

func (f *tableFormatter) FormatGenerated(results []generator.Result) error {
	if len(results) == 0 {
		f.emptyMessage("No schema files found")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(f.header("GROUP", "KIND", "PLURAL", "VERSION", "SOURCE", "OUTPUT"))
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Naming.Group,
			r.Naming.Kind,
			r.Naming.Plural,
			r.Naming.Version,
			r.Source,
			filepath.Base(r.Output),
		})
	}
	t.Render()
	f.total(len(results), "manifests")
	return nil
}

func (f *tableFormatter) FormatExported(results []exporter.Exported) error {
	if len(results) == 0 {
		f.emptyMessage("No models exported")
		return nil
	}

	t := f.createTable()
	t.AppendHeader(f.header("MODEL", "PLURAL", "FILE", "DESCRIPTION"))
	for _, e := range results {
		t.AppendRow(table.Row{
			e.Model,
			e.Plural,
			filepath.Base(e.Path),
			pkgstrings.TruncateDescription(e.Description, pkgstrings.DefaultDescriptionMaxLen),
		})
	}
	t.Render()
	f.total(len(results), "schemas")
	return nil
}

// createTable creates a new table with standard styling
func (f *tableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.options.Writer)
	if f.options.Quiet {
		t.SetStyle(table.StyleLight)
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateColumns = false
	} else {
		t.SetStyle(table.StyleRounded)
	}
	return t
}

func (f *tableFormatter) header(names ...string) table.Row {
	row := make(table.Row, 0, len(names))
	for _, n := range names {
		row = append(row, f.colorize(text.FgHiCyan, n))
	}
	return row
}

func (f *tableFormatter) emptyMessage(message string) {
	fmt.Fprintln(f.options.Writer, f.colorize(text.FgYellow, message))
}

func (f *tableFormatter) total(n int, noun string) {
	if f.options.Quiet {
		return
	}
	fmt.Fprintf(f.options.Writer, "\n%s %s %s\n",
		f.colorize(text.FgHiBlue, "Total:"),
		f.colorize(text.FgHiWhite, fmt.Sprint(n)),
		f.colorize(text.FgHiBlue, noun))
}

func (f *tableFormatter) colorize(c text.Color, s string) string {
	if !f.options.Color {
		return s
	}
	return c.Sprint(s)
}
