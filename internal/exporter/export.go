package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobuffalo/flect"

	"crdgen/internal/config"
	"crdgen/internal/dependency"
	"crdgen/internal/model"
	"crdgen/pkg/logging"
	pkgstrings "crdgen/pkg/strings"
)

// Exported describes one schema file written by Export.
type Exported struct {
	Model       string
	Group       string
	Plural      string
	Description string
	Path        string
}

// FileName returns the schema file name for a model, e.g.
// "apps.example.com_widgets_Widget.json".
func FileName(group, plural, name string) string {
	return fmt.Sprintf("%s_%s_%s.json", group, plural, name)
}

// Plural returns the lowercase English plural of a model name.
func Plural(name string) string {
	return flect.Pluralize(strings.ToLower(name))
}

// Export writes the schema document of every schema-bearing item to
// outputDir. Items that do not implement model.Schematic are skipped. An
// empty group is resolved through config.LoadGroup.
func Export(items []any, outputDir, group string) ([]Exported, error) {
	var models []*model.Model
	for _, item := range items {
		s, ok := item.(model.Schematic)
		if !ok {
			logging.Debug("Exporter", "Skipping %T: not a model", item)
			continue
		}
		models = append(models, s.Descriptor())
	}
	if len(models) == 0 {
		logging.Info("Exporter", "No models to export")
		return nil, nil
	}

	catalog, err := model.NewCatalog(models...)
	if err != nil {
		return nil, err
	}
	warnCycles(catalog, models)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	groups := groupResolver{group: group, fallback: outputDir, cache: map[string]string{}}
	exported := make([]Exported, 0, len(models))
	for _, m := range models {
		g, err := groups.resolve(m)
		if err != nil {
			return exported, err
		}

		e, err := exportModel(catalog, m, g, outputDir)
		if err != nil {
			return exported, err
		}
		logging.Info("Exporter", "Schema saved to %s", e.Path)
		exported = append(exported, e)
	}
	return exported, nil
}

func exportModel(catalog *model.Catalog, m *model.Model, group, outputDir string) (Exported, error) {
	doc, err := catalog.Document(m)
	if err != nil {
		return Exported{}, err
	}
	description := pkgstrings.CleanDescription(m.Description)
	doc.Description = description

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return Exported{}, fmt.Errorf("failed to encode schema of %s: %w", m.Name, err)
	}

	plural := Plural(m.Name)
	path := filepath.Join(outputDir, FileName(group, plural, m.Name))
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return Exported{}, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return Exported{
		Model:       m.Name,
		Group:       group,
		Plural:      plural,
		Description: description,
		Path:        path,
	}, nil
}

// warnCycles logs every exported model that can reach itself through
// references, and the models that reference it directly. Such schemas are
// written, but cannot be turned into a CRD.
func warnCycles(catalog *model.Catalog, models []*model.Model) {
	graph := catalog.Graph()
	for _, m := range models {
		id := dependency.NodeID(m.Name)
		cycle := graph.Cycle(id)
		if cycle == nil {
			continue
		}
		names := make([]string, 0, len(cycle))
		for _, n := range cycle {
			names = append(names, string(n))
		}
		logging.Warn("Exporter", "Model %s has a reference cycle (%s); generate will reject its schema", m.Name, strings.Join(names, " -> "))

		for _, dep := range graph.Dependents(id) {
			if slices.Contains(cycle, dep) {
				continue
			}
			logging.Warn("Exporter", "Model %s references %s, which has a reference cycle; generate will reject its schema", dep, m.Name)
		}
	}
}

// groupResolver resolves the API group of each model, reading every
// directory's sidecar at most once.
type groupResolver struct {
	group    string
	fallback string
	cache    map[string]string
}

func (r *groupResolver) resolve(m *model.Model) (string, error) {
	if r.group != "" {
		return r.group, nil
	}

	dir := r.fallback
	if m.Source != "" {
		dir = filepath.Dir(m.Source)
	}
	if g, ok := r.cache[dir]; ok {
		return g, nil
	}

	g, err := config.LoadGroup(dir)
	if err != nil {
		return "", fmt.Errorf("model %s: %w", m.Name, err)
	}
	r.cache[dir] = g
	return g, nil
}
