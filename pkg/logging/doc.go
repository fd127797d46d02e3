// Package logging provides the structured logging facade used by crdgen.
//
// The package is built on Go's standard slog package. Every entry carries the
// subsystem that produced it so output can be filtered by component:
//
//   - **CLI**: command setup and flag handling
//   - **Config**: group.yaml discovery and parsing
//   - **Generator**: schema file discovery and CRD generation
//   - **Exporter**: model schema export
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Generator", "YAML file generated at %s", path)
//	logging.Debug("Exporter", "Skipping %s: not a model descriptor", file)
//	logging.Error("Generator", err, "Failed to process %s", file)
//
// Messages below the configured level are dropped before formatting.
// Logs are meant for stderr; command results are written to stdout by the
// commands themselves.
package logging
