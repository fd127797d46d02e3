// Package model describes data models as statically declared record
// descriptors and turns them into JSON Schema documents.
//
// A Model lists its fields explicitly (name, type, constraints, description)
// instead of being discovered by reflection. Descriptors can be written in Go
// or loaded from YAML files:
//
//	kind: Model
//	name: Widget
//	resource: true
//	description: |
//	  Widget is a demo resource.
//	fields:
//	  - name: spec
//	    ref: WidgetSpec
//	  - name: status
//	    ref: WidgetStatus
//	    optional: true
//
// Documents generated from descriptors carry the metadata a model-derived
// schema usually has (titles, null defaults, "$defs" with "$ref" markers), so
// they feed the same expansion and normalization path as any other schema.
package model
