package formatting

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"crdgen/internal/crd"
	"crdgen/internal/exporter"
	"crdgen/internal/generator"
)

var (
	sampleResults = []generator.Result{
		{
			Source: "schemas/v1/apps_widgets_Widget.json",
			Output: "crds/apps_widgets.yaml",
			Naming: crd.Naming{Group: "apps", Plural: "widgets", Kind: "Widget", Version: "v1"},
		},
	}
	sampleExported = []exporter.Exported{
		{
			Model:       "Widget",
			Group:       "apps",
			Plural:      "widgets",
			Path:        "schemas/apps_widgets_Widget.json",
			Description: "Widget is a long description that certainly does not fit into the table column.",
		},
	}
)

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "json", "yaml"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(name), f)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Format: FormatTable, Writer: &buf})

	require.NoError(t, f.FormatGenerated(sampleResults))
	out := buf.String()
	for _, want := range []string{"GROUP", "KIND", "PLURAL", "VERSION", "apps", "Widget", "widgets", "v1", "apps_widgets.yaml", "Total: 1 manifests"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "no color codes unless enabled")

	buf.Reset()
	require.NoError(t, f.FormatExported(sampleExported))
	out = buf.String()
	assert.Contains(t, out, "apps_widgets_Widget.json")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "table column.")
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Format: FormatTable, Writer: &buf})

	require.NoError(t, f.FormatGenerated(nil))
	assert.Equal(t, "No schema files found\n", buf.String())
}

func TestTableFormatterColor(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Format: FormatTable, Writer: &buf, Color: true})

	require.NoError(t, f.FormatGenerated(sampleResults))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Format: FormatJSON, Writer: &buf})

	require.NoError(t, f.FormatGenerated(sampleResults))
	var records []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "apps", records[0]["group"])
	assert.Equal(t, "crds/apps_widgets.yaml", records[0]["output"])

	buf.Reset()
	require.NoError(t, f.FormatExported(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := New(Options{Format: FormatYAML, Writer: &buf})

	require.NoError(t, f.FormatExported(sampleExported))
	var records []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0]["model"])
	assert.Equal(t, sampleExported[0].Description, records[0]["description"])
}
