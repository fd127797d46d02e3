package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"crdgen/internal/config"
	"crdgen/internal/crd"
	"crdgen/internal/schema"
	"crdgen/pkg/logging"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeConfigError indicates that no usable group.yaml was found.
	ExitCodeConfigError = 2
	// ExitCodeSchemaError indicates a malformed input schema: a file name
	// that breaks the naming convention or an unresolvable reference.
	ExitCodeSchemaError = 3
)

var (
	rootDebug    bool
	rootLogLevel string
	rootNoColor  bool
)

// rootCmd represents the base command for the crdgen application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crdgen",
	Short: "Generate Kubernetes CustomResourceDefinitions from JSON Schema",
	Long: `crdgen turns data model descriptions into Kubernetes CustomResourceDefinition
manifests in two steps:

  crdgen export    writes one JSON Schema file per model
  crdgen generate  converts a tree of JSON Schema files into CRD manifests`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so configuration errors can carry suggestions.
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd.ErrOrStderr())
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "crdgen version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(getExitCode(err))
	}
}

// initLogging sets up the CLI logger. --debug wins over --log-level.
func initLogging(w io.Writer) error {
	level, err := logging.ParseLevel(rootLogLevel)
	if err != nil {
		return err
	}
	if rootDebug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, w)
	return nil
}

// errorMessage renders err for the terminal.
func errorMessage(err error) string {
	var notFound *config.ConfigNotFoundError
	if errors.As(err, &notFound) {
		return notFound.DetailedError()
	}
	return "Error: " + err.Error()
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var notFound *config.ConfigNotFoundError
	if errors.As(err, &notFound) {
		return ExitCodeConfigError
	}

	var naming *crd.NamingConventionError
	if errors.As(err, &naming) {
		return ExitCodeSchemaError
	}

	var unknownRef *schema.UnknownReferenceError
	if errors.As(err, &unknownRef) {
		return ExitCodeSchemaError
	}

	var cyclic *schema.CyclicReferenceError
	if errors.As(err, &cyclic) {
		return ExitCodeSchemaError
	}

	// Default to general error
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "info", "Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
}
