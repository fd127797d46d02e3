package model

import (
	"errors"
	"fmt"
)

// KindModel is the kind of YAML documents holding a model descriptor.
const KindModel = "Model"

// FieldType is the type tag of a field.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeNumber   FieldType = "number"
	TypeBoolean  FieldType = "boolean"
	TypeObject   FieldType = "object"
	TypeArray    FieldType = "array"
	TypeDateTime FieldType = "datetime"
)

var validTypes = map[FieldType]bool{
	TypeString:   true,
	TypeInteger:  true,
	TypeNumber:   true,
	TypeBoolean:  true,
	TypeObject:   true,
	TypeArray:    true,
	TypeDateTime: true,
}

// Schematic is implemented by values that carry a model descriptor.
// Anything else handed to the exporter is skipped.
type Schematic interface {
	Descriptor() *Model
}

// Model is the record descriptor of a data model.
type Model struct {
	Kind        string `yaml:"kind"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Resource prepends the Kubernetes apiVersion, kind and metadata fields.
	Resource bool    `yaml:"resource,omitempty"`
	Fields   []Field `yaml:"fields"`
	// Source is the descriptor file the model was loaded from, if any.
	Source string `yaml:"-"`
}

// Field describes one field of a model. Exactly one of Type and Ref is set.
type Field struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type,omitempty"`
	// Ref names another model; the field's schema is a reference to it.
	Ref string `yaml:"ref,omitempty"`
	// Items describes the elements of an array field.
	Items       *Field `yaml:"items,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Optional fields are left out of the required list. Without an explicit
	// Default their default is null.
	Optional  bool     `yaml:"optional,omitempty"`
	Default   any      `yaml:"default,omitempty"`
	Enum      []string `yaml:"enum,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	Format    string   `yaml:"format,omitempty"`
	MinLength *uint64  `yaml:"minLength,omitempty"`
	MaxLength *uint64  `yaml:"maxLength,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty"`
	Maximum   *float64 `yaml:"maximum,omitempty"`
}

// Descriptor returns m itself.
func (m *Model) Descriptor() *Model {
	return m
}

// AllFields returns the model's fields, preceded by the Kubernetes resource
// fields when m is a resource.
func (m *Model) AllFields() []Field {
	if !m.Resource {
		return m.Fields
	}
	return append(ResourceFields(), m.Fields...)
}

// References returns the names of the models referenced by m's fields,
// directly or as array items, in declaration order and without repetition.
func (m *Model) References() []string {
	var refs []string
	seen := map[string]bool{}
	for _, f := range m.Fields {
		for item := &f; item != nil; item = item.Items {
			if item.Ref != "" && !seen[item.Ref] {
				seen[item.Ref] = true
				refs = append(refs, item.Ref)
			}
		}
	}
	return refs
}

// IsRequired reports whether the field belongs in the required list.
func (f Field) IsRequired() bool {
	return !f.Optional && f.Default == nil
}

// Validate checks the descriptor for structural mistakes.
func (m *Model) Validate() error {
	if m.Name == "" {
		return errors.New("model has no name")
	}

	var errs []error
	seen := map[string]bool{}
	for _, f := range m.AllFields() {
		if seen[f.Name] {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
			continue
		}
		seen[f.Name] = true
		if err := f.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("model %s: %w", m.Name, errors.Join(errs...))
	}
	return nil
}

func (f Field) validate() error {
	name := f.Name
	if name == "" {
		name = "<items>"
	}
	switch {
	case f.Type != "" && f.Ref != "":
		return fmt.Errorf("field %s: type and ref are mutually exclusive", name)
	case f.Type == "" && f.Ref == "":
		return fmt.Errorf("field %s: one of type or ref is required", name)
	case f.Ref != "":
		return nil
	case !validTypes[f.Type]:
		return fmt.Errorf("field %s: unknown type %q", name, f.Type)
	case f.Type == TypeArray && f.Items == nil:
		return fmt.Errorf("field %s: array fields need items", name)
	case f.Type == TypeArray:
		return f.Items.validate()
	}
	return nil
}
