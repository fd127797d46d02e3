package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, doc string) Schema {
	t.Helper()
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return s
}

func defsOf(t *testing.T, doc string) Definitions {
	t.Helper()
	defs, err := PopDefinitions(parse(t, `{"$defs": `+doc+`}`))
	require.NoError(t, err)
	return defs
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func containsRef(v any) bool {
	switch t := v.(type) {
	case Schema:
		return containsRef(map[string]any(t))
	case map[string]any:
		if _, ok := t["$ref"]; ok {
			return true
		}
		for _, child := range t {
			if containsRef(child) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if containsRef(child) {
				return true
			}
		}
	}
	return false
}
