package model

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"crdgen/internal/config"
	"crdgen/pkg/logging"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every YAML file directly inside dir, in lexical order, and
// returns one item per document. Documents of kind Model are decoded and
// validated into *Model values; any other document is returned as its raw
// map so the exporter can skip it. The group.yaml sidecar is ignored.
func LoadDir(dir string) ([]any, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read model directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == config.GroupFileName {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)

	var items []any
	for _, path := range files {
		docs, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		items = append(items, docs...)
	}
	logging.Debug("Exporter", "Loaded %d document(s) from %d file(s) in %s", len(items), len(files), dir)
	return items, nil
}

// LoadFile decodes all YAML documents of a single file.
func LoadFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []any
	dec := yaml.NewDecoder(f)
	for i := 0; ; i++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: document %d: %w", path, i, err)
		}
		item, err := decodeDocument(&node, path)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", path, i, err)
		}
		if item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

func decodeDocument(node *yaml.Node, path string) (any, error) {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, err
	}

	if head.Kind != KindModel {
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		// empty document
		if raw == nil {
			return nil, nil
		}
		return raw, nil
	}

	m := &Model{Source: path}
	if err := node.Decode(m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
