package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"k8s.io/apimachinery/pkg/runtime"
)

const (
	keyRef         = "$ref"
	keyDefs        = "$defs"
	keyDefinitions = "definitions"
	keyProperties  = "properties"
	keyRequired    = "required"
	keyItems       = "items"
	keyTitle       = "title"
	keyDefault     = "default"
	keyDescription = "description"
)

// Schema is a JSON Schema node. Values are the shapes produced by
// encoding/json with UseNumber: map[string]any, []any, string, json.Number,
// bool and nil. Nested objects may be either Schema or map[string]any.
type Schema map[string]any

// Definitions maps a definition name to its schema.
type Definitions map[string]Schema

// Decode reads a single JSON Schema document from r.
func Decode(r io.Reader) (Schema, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	node, ok := asNode(doc)
	if !ok {
		return nil, errors.New("schema document must be a JSON object")
	}
	return node, nil
}

// LoadFile reads and decodes the JSON Schema document at path.
func LoadFile(path string) (Schema, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// PopDefinitions removes the top-level definitions table ("$defs", or the
// older "definitions") from s and returns it. A document without one yields an
// empty table.
func PopDefinitions(s Schema) (Definitions, error) {
	defs := Definitions{}
	for _, key := range []string{keyDefs, keyDefinitions} {
		raw, ok := s[key]
		if !ok {
			continue
		}
		delete(s, key)

		table, ok := asNode(raw)
		if !ok {
			return nil, fmt.Errorf("%q must be an object, got %T", key, raw)
		}
		for name, v := range table {
			def, ok := asNode(v)
			if !ok {
				return nil, fmt.Errorf("definition %q must be an object, got %T", name, v)
			}
			defs[name] = def
		}
	}
	return defs, nil
}

// Description returns the node's description, or "" when absent.
func (s Schema) Description() string {
	d, _ := s[keyDescription].(string)
	return d
}

// Properties returns the node's properties block, or nil when absent.
func (s Schema) Properties() Schema {
	p, _ := asNode(s[keyProperties])
	return p
}

// Required returns the node's required field names.
func (s Schema) Required() []string {
	return stringsOf(s[keyRequired])
}

// DeepCopy returns a copy of s sharing no maps or slices with it. s must hold
// only decoder values, which is true of every definitions table.
func (s Schema) DeepCopy() Schema {
	if s == nil {
		return nil
	}
	return Schema(runtime.DeepCopyJSON(s))
}

func asNode(v any) (Schema, bool) {
	switch t := v.(type) {
	case Schema:
		return t, t != nil
	case map[string]any:
		return Schema(t), t != nil
	default:
		return nil, false
	}
}

func stringsOf(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// isEmptyList reports whether v is a list with no elements.
func isEmptyList(v any) bool {
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
