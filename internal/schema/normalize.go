package schema

// Normalize strips generator-only metadata from node and, recursively, from
// every property schema and array item schema below it: "title" keys,
// "default" keys whose value is null, and empty "required" lists.
func Normalize(node Schema) {
	if props := node.Properties(); props != nil {
		for _, v := range props {
			if child, ok := asNode(v); ok {
				Normalize(child)
			}
		}
	}

	switch items := node[keyItems].(type) {
	case Schema, map[string]any:
		child, _ := asNode(items)
		Normalize(child)
	case []any:
		for _, item := range items {
			if child, ok := asNode(item); ok {
				Normalize(child)
			}
		}
	}

	delete(node, keyTitle)
	if v, ok := node[keyDefault]; ok && v == nil {
		delete(node, keyDefault)
	}
	if isEmptyList(node[keyRequired]) {
		delete(node, keyRequired)
	}
}
