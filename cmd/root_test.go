package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"crdgen/internal/config"
	"crdgen/internal/crd"
	"crdgen/internal/generator"
	"crdgen/internal/schema"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if GetVersion() != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "crdgen" {
		t.Errorf("Expected Use to be 'crdgen', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	if rootCmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("Expected persistent --debug flag")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "crdgen version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	if err := testCmd.Execute(); err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	expected := "crdgen version 1.0.0\n"
	if buf.String() != expected {
		t.Errorf("Expected version output %q, got %q", expected, buf.String())
	}
}

func TestSubcommands(t *testing.T) {
	expectedCommands := []string{"version", "generate", "export"}
	foundCommands := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s not found", expected)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "general error",
			err:      errors.New("boom"),
			expected: ExitCodeError,
		},
		{
			name:     "config not found",
			err:      fmt.Errorf("model Widget: %w", &config.ConfigNotFoundError{Searched: []string{"a", "b"}}),
			expected: ExitCodeConfigError,
		},
		{
			name:     "naming convention",
			err:      &generator.FileError{Path: "x.json", Err: &crd.NamingConventionError{File: "x.json", Reason: "bad"}},
			expected: ExitCodeSchemaError,
		},
		{
			name:     "unknown reference",
			err:      &generator.FileError{Path: "x.json", Err: &schema.UnknownReferenceError{Ref: "#/$defs/A", Name: "A"}},
			expected: ExitCodeSchemaError,
		},
		{
			name:     "cyclic reference",
			err:      &schema.CyclicReferenceError{Chain: []string{"A", "A"}},
			expected: ExitCodeSchemaError,
		},
		{
			name: "aggregated errors",
			err: multierror.Append(nil,
				&generator.FileError{Path: "x.json", Err: errors.New("read failed")},
				&generator.FileError{Path: "y.json", Err: &crd.NamingConventionError{File: "y.json", Reason: "bad"}},
			),
			expected: ExitCodeSchemaError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getExitCode(tt.err); got != tt.expected {
				t.Errorf("Expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	msg := errorMessage(errors.New("boom"))
	if msg != "Error: boom" {
		t.Errorf("Expected plain error message, got %q", msg)
	}

	msg = errorMessage(fmt.Errorf("wrapped: %w", &config.ConfigNotFoundError{Searched: []string{"/a/group.yaml"}}))
	if !strings.Contains(msg, "Configuration Error") || !strings.Contains(msg, "--group") {
		t.Errorf("Expected detailed configuration error, got %q", msg)
	}
}
