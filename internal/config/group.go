package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"crdgen/pkg/logging"

	"gopkg.in/yaml.v3"
)

// GroupFileName is the name of the sidecar file holding the API group.
const GroupFileName = "group.yaml"

// GroupConfig is the content of a group.yaml file.
type GroupConfig struct {
	Group string `yaml:"group"`
}

// GroupSearchPaths returns the locations LoadGroup tries for dir, in order:
// dir itself, then its parent.
func GroupSearchPaths(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("could not resolve %s: %w", dir, err)
	}
	return []string{
		filepath.Join(abs, GroupFileName),
		filepath.Join(filepath.Dir(abs), GroupFileName),
	}, nil
}

// LoadGroup returns the API group declared in the first usable group.yaml
// found in dir or its parent. When neither location yields a non-empty group
// a *ConfigNotFoundError naming both paths is returned.
func LoadGroup(dir string) (string, error) {
	paths, err := GroupSearchPaths(dir)
	if err != nil {
		return "", err
	}

	notFound := &ConfigNotFoundError{Searched: paths}
	for _, path := range paths {
		group, err := readGroupFile(path)
		if err != nil {
			logging.Debug("Config", "Skipping %s: %s", path, err)
			notFound.Reasons = append(notFound.Reasons, err.Error())
			continue
		}
		logging.Info("Config", "Loaded group %q from %s", group, path)
		return group, nil
	}
	return "", notFound
}

func readGroupFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.New("file does not exist")
		}
		return "", err
	}

	var cfg GroupConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// config malformed
		return "", fmt.Errorf("invalid YAML: %w", err)
	}

	group := strings.TrimSpace(cfg.Group)
	if group == "" {
		return "", errors.New("no 'group' key")
	}
	return group, nil
}
