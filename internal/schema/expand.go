package schema

import (
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// dataKeywords hold literal values, not sub-schemas, and are never traversed.
var dataKeywords = map[string]bool{
	"default":  true,
	"enum":     true,
	"const":    true,
	"example":  true,
	"examples": true,
	"required": true,
}

type expander struct {
	defs Definitions
	// path holds the definitions currently being inlined, outermost first.
	path []string
}

// Expand replaces every reference marker in root with a deep copy of the
// definition it names, recursively, so that the result is self-contained.
//
// Required field names declared by an inlined definition are merged into the
// required list of the object whose properties block holds the reference.
// Required lists that are written are deduplicated and sorted; empty ones are
// removed. Expanding an already expanded tree is a no-op.
func Expand(root Schema, defs Definitions) error {
	e := &expander{defs: defs}

	acc := sets.New[string]()
	if err := e.expand(root, acc); err != nil {
		return err
	}

	if acc.Len() > 0 && root.Properties() != nil {
		acc.Insert(root.Required()...)
		root[keyRequired] = sets.List(acc)
	}
	return nil
}

// expand resolves references in node. acc collects the required names of the
// object level node belongs to; a properties block opens a new level.
func (e *expander) expand(node Schema, acc sets.Set[string]) error {
	depth := len(e.path)
	defer func() { e.path = e.path[:depth] }()

	// A definition may itself be a reference, so resolve until none is left.
	for {
		ref, ok := node[keyRef].(string)
		if !ok {
			break
		}
		name := refName(ref)
		if slices.Contains(e.path, name) {
			chain := append(slices.Clone(e.path), name)
			return &CyclicReferenceError{Chain: chain}
		}
		def, ok := e.defs[name]
		if !ok {
			return &UnknownReferenceError{Ref: ref, Name: name}
		}

		inlined := def.DeepCopy()
		detached := stringsOf(inlined[keyRequired])
		delete(inlined, keyRequired)
		delete(node, keyRef)
		for k, v := range inlined {
			node[k] = v
		}
		acc.Insert(detached...)
		e.path = append(e.path, name)
	}

	var scope sets.Set[string]
	for _, key := range sortedKeys(node) {
		if dataKeywords[key] {
			continue
		}
		value := node[key]

		if key == keyProperties {
			props, ok := asNode(value)
			if !ok {
				continue
			}
			scope = sets.New[string](node.Required()...)
			for _, name := range sortedKeys(props) {
				child, ok := asNode(props[name])
				if !ok {
					continue
				}
				if err := e.expand(child, scope); err != nil {
					return err
				}
			}
			continue
		}

		switch v := value.(type) {
		case Schema, map[string]any:
			child, _ := asNode(v)
			if err := e.expand(child, acc); err != nil {
				return err
			}
		case []any:
			for _, item := range v {
				child, ok := asNode(item)
				if !ok {
					continue
				}
				if err := e.expand(child, acc); err != nil {
					return err
				}
			}
		}
	}

	if scope.Len() > 0 {
		node[keyRequired] = sets.List(scope)
	}
	if isEmptyList(node[keyRequired]) {
		delete(node, keyRequired)
	}
	return nil
}

// refName returns the definition name a reference points at: the last
// "/"-separated segment, so "#/$defs/Foo" and "#/definitions/Foo" both
// resolve to "Foo".
func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
