// Package schema holds the JSON Schema tree handled by crdgen and the two
// transformations applied to it before it is wrapped in a CRD manifest.
//
// Expand inlines every "$ref" reference marker using the document's
// definitions table. Field names a referenced definition declares as required
// are not lost when the definition is flattened: they are merged into the
// required list of the object whose "properties" block the reference was found
// in. A new required scope is opened exactly when entering a "properties"
// block; any other nested schema (items, allOf members, additionalProperties)
// contributes to the scope of its enclosing object.
//
// Normalize strips generator-only metadata: titles, null defaults and empty
// required lists.
//
// Both functions mutate the tree in place. Definitions are deep-copied on every
// inlining and never modified.
package schema
