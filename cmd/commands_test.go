package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crdgen/internal/config"
)

// execute runs the root command with args after resetting every flag to
// its default, returning stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	generateInput, generateOutput, generateContinueOnError = "", "crds", false
	generateFormat, generateQuiet = "table", false
	exportModels, exportOutput, exportGroup = "", "", ""
	exportFormat, exportQuiet = "table", false
	rootDebug, rootLogLevel, rootNoColor = false, "info", false
	generateStrictNames = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

const widgetDescriptor = `kind: Model
name: Widget
description: |
  Widget is an example resource.
resource: true
fields:
  - name: spec
    ref: WidgetSpec
  - name: conditions
    type: array
    items:
      ref: Condition
    optional: true
---
kind: Model
name: WidgetSpec
description: Desired state of a widget.
fields:
  - name: size
    type: integer
    minimum: 1
  - name: color
    type: string
    enum: [red, blue]
    default: red
---
kind: Service
name: ignored
`

func TestExportThenGenerate(t *testing.T) {
	root := t.TempDir()
	models := filepath.Join(root, "models")
	schemas := filepath.Join(root, "schemas", "v1")
	crds := filepath.Join(root, "crds")
	require.NoError(t, os.MkdirAll(models, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(models, "widget.yaml"), []byte(widgetDescriptor), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(models, config.GroupFileName), []byte("group: example.com\n"), 0644))

	stdout, _, err := execute(t, "export", "--models", models, "--output", schemas, "--format", "json")
	require.NoError(t, err)

	var exported []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &exported))
	require.Len(t, exported, 2)
	assert.Equal(t, "Widget", exported[0]["model"])
	assert.Equal(t, "Widget is an example resource.", exported[0]["description"])
	assert.FileExists(t, filepath.Join(schemas, "example.com_widgets_Widget.json"))
	assert.FileExists(t, filepath.Join(schemas, "example.com_widgetspecs_WidgetSpec.json"))

	// WidgetSpec is only embedded, it gets no CRD of its own
	require.NoError(t, os.Remove(filepath.Join(schemas, "example.com_widgetspecs_WidgetSpec.json")))

	stdout, stderr, err := execute(t, "generate", "--input", filepath.Dir(schemas), "--output", crds)
	require.NoError(t, err)
	assert.Contains(t, stdout, "example.com")
	assert.Contains(t, stdout, "Total: 1 manifests")
	assert.Contains(t, stderr, "YAML file generated at")

	data, err := os.ReadFile(filepath.Join(crds, "example.com_widgets.yaml"))
	require.NoError(t, err)
	manifest := string(data)
	assert.Contains(t, manifest, "name: widgets.example.com")
	assert.Contains(t, manifest, "description: Widget is an example resource.")
	assert.Contains(t, manifest, "lastTransitionTime:")
	assert.Contains(t, manifest, "format: date-time")
	assert.Contains(t, manifest, "default: red")
	assert.NotContains(t, manifest, "$ref")
	assert.NotContains(t, manifest, "title:")
	assert.NotContains(t, manifest, "default: null")
}

func TestExportMissingGroup(t *testing.T) {
	root := t.TempDir()
	models := filepath.Join(root, "models")
	require.NoError(t, os.MkdirAll(models, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(models, "widget.yaml"), []byte(widgetDescriptor), 0644))

	_, _, err := execute(t, "export", "--models", models)
	require.Error(t, err)

	var notFound *config.ConfigNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, ExitCodeConfigError, getExitCode(err))
}

func TestGenerateNamingError(t *testing.T) {
	in := filepath.Join(t.TempDir(), "v1")
	require.NoError(t, os.MkdirAll(in, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "widgets.json"), []byte(`{}`), 0644))

	_, _, err := execute(t, "generate", "--input", in, "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widgets.json")
	assert.Equal(t, ExitCodeSchemaError, getExitCode(err))
}

func TestGenerateInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "generate", "--input", t.TempDir(), "--format", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestGenerateStrictNames(t *testing.T) {
	in := filepath.Join(t.TempDir(), "v1")
	require.NoError(t, os.MkdirAll(in, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "apps_Widgets_Widget.json"), []byte(`{"properties": {}}`), 0644))

	_, _, err := execute(t, "generate", "--input", in, "--output", t.TempDir(), "--quiet")
	require.NoError(t, err)

	_, _, err = execute(t, "generate", "--input", in, "--output", t.TempDir(), "--strict-names")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `plural "Widgets" is invalid`)
	assert.Equal(t, ExitCodeSchemaError, getExitCode(err))
}

func TestLogLevel(t *testing.T) {
	in := filepath.Join(t.TempDir(), "v1")
	require.NoError(t, os.MkdirAll(in, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "apps_widgets_Widget.json"), []byte(`{"properties": {}}`), 0644))

	tests := []struct {
		name       string
		args       []string
		wantLogged bool
	}{
		{"default level logs progress", nil, true},
		{"warn hides progress", []string{"--log-level", "warn"}, false},
		{"debug flag overrides level", []string{"--log-level", "error", "--debug"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--input", in, "--output", t.TempDir(), "--quiet"}, tt.args...)
			_, stderr, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLogged, strings.Contains(stderr, "YAML file generated"))
		})
	}

	_, _, err := execute(t, "generate", "--input", in, "--log-level", "verbose")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)
}
