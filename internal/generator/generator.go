package generator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"

	"crdgen/internal/crd"
	"crdgen/internal/schema"
	"crdgen/pkg/logging"
)

// Options configures a generator run.
type Options struct {
	InputDir  string
	OutputDir string
	// ContinueOnError keeps processing after a failed file and returns all
	// failures together instead of stopping at the first one.
	ContinueOnError bool
	// StrictNames rejects files whose group or plural is not a valid
	// Kubernetes name.
	StrictNames bool
}

// Result describes one generated manifest.
type Result struct {
	Source string
	Output string
	Naming crd.Naming
}

// Run generates a manifest for every schema file below opts.InputDir. It
// returns the results of the files processed successfully, in processing
// order, along with any error.
func Run(opts Options) ([]Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutputDir, err)
	}

	files, err := Discover(opts.InputDir)
	if err != nil {
		return nil, err
	}
	logging.Debug("Generator", "Found %d schema file(s) in %s", len(files), opts.InputDir)

	var (
		results []Result
		errs    *multierror.Error
	)
	for _, path := range files {
		res, err := GenerateFile(path, opts)
		if err != nil {
			ferr := &FileError{Path: path, Err: err}
			if !opts.ContinueOnError {
				return results, ferr
			}
			logging.Error("Generator", err, "Failed to generate manifest for %s", path)
			errs = multierror.Append(errs, ferr)
			continue
		}
		results = append(results, res)
	}
	return results, errs.ErrorOrNil()
}

// Discover returns every file with a ".json" extension below dir, sorted.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".json" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// GenerateFile converts a single schema file into a manifest written to
// opts.OutputDir.
func GenerateFile(path string, opts Options) (Result, error) {
	naming, err := crd.NamingFromPath(path)
	if err != nil {
		return Result{}, err
	}
	if opts.StrictNames {
		if err := crd.ValidateNaming(path, naming); err != nil {
			return Result{}, err
		}
	}

	s, err := LoadSchema(path)
	if err != nil {
		return Result{}, err
	}

	data, err := crd.Marshal(crd.Assemble(naming, s))
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode manifest: %w", err)
	}

	out := filepath.Join(opts.OutputDir, naming.OutputFileName())
	if err := os.WriteFile(out, data, 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write manifest: %w", err)
	}
	logging.Info("Generator", "YAML file generated at %s", out)

	return Result{Source: path, Output: out, Naming: naming}, nil
}

// LoadSchema reads a schema file and returns it with its definitions inlined
// and generator metadata removed.
func LoadSchema(path string) (schema.Schema, error) {
	s, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	defs, err := schema.PopDefinitions(s)
	if err != nil {
		return nil, err
	}
	if err := schema.Expand(s, defs); err != nil {
		return nil, err
	}
	schema.Normalize(s)
	return s, nil
}
