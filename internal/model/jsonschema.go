package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	pkgstrings "crdgen/pkg/strings"
)

const defsPrefix = "#/$defs/"

var titleCaser = cases.Title(language.English)

// Document generates the JSON Schema document of m. Referenced models are
// collected, transitively, into the document's "$defs" and pointed at with
// "$ref" markers. The root description is left for the caller to attach.
func (c *Catalog) Document(m *Model) (*jsonschema.Schema, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := &documentBuilder{
		catalog: c,
		defs:    jsonschema.Definitions{},
		pending: map[string]bool{},
	}
	doc, err := g.object(m)
	if err != nil {
		return nil, err
	}
	if len(g.defs) > 0 {
		doc.Definitions = g.defs
	}
	return doc, nil
}

type documentBuilder struct {
	catalog *Catalog
	defs    jsonschema.Definitions
	// pending holds models whose definition is being built, so that
	// self-referencing models terminate.
	pending map[string]bool
}

func (g *documentBuilder) object(m *Model) (*jsonschema.Schema, error) {
	s := &jsonschema.Schema{
		Title:      m.Name,
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	for _, f := range m.AllFields() {
		prop, err := g.field(f)
		if err != nil {
			return nil, fmt.Errorf("model %s: field %s: %w", m.Name, f.Name, err)
		}
		prop.Title = fieldTitle(f.Name)
		s.Properties.Set(f.Name, prop)
		if f.IsRequired() {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s, nil
}

func (g *documentBuilder) define(name string) error {
	if _, done := g.defs[name]; done || g.pending[name] {
		return nil
	}
	m, ok := g.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown model %q", name)
	}

	g.pending[name] = true
	defer delete(g.pending, name)

	s, err := g.object(m)
	if err != nil {
		return err
	}
	s.Description = pkgstrings.CleanDescription(m.Description)
	g.defs[name] = s
	return nil
}

func (g *documentBuilder) field(f Field) (*jsonschema.Schema, error) {
	var s *jsonschema.Schema

	switch {
	case f.Ref != "":
		if err := g.define(f.Ref); err != nil {
			return nil, err
		}
		s = &jsonschema.Schema{Ref: defsPrefix + f.Ref}
	case f.Type == TypeArray:
		items, err := g.field(*f.Items)
		if err != nil {
			return nil, err
		}
		s = &jsonschema.Schema{Type: string(TypeArray), Items: items}
	case f.Type == TypeDateTime:
		s = &jsonschema.Schema{Type: string(TypeString), Format: "date-time"}
	default:
		s = &jsonschema.Schema{Type: string(f.Type)}
	}

	s.Description = pkgstrings.CleanDescription(f.Description)
	if f.Format != "" {
		s.Format = f.Format
	}
	s.Pattern = f.Pattern
	s.MinLength = f.MinLength
	s.MaxLength = f.MaxLength
	if f.Minimum != nil {
		s.Minimum = number(*f.Minimum)
	}
	if f.Maximum != nil {
		s.Maximum = number(*f.Maximum)
	}
	for _, v := range f.Enum {
		s.Enum = append(s.Enum, v)
	}

	switch {
	case f.Default != nil:
		s.Default = f.Default
	case f.Optional:
		// An explicit null default, as model-derived schemas carry for
		// optional fields.
		s.Extras = map[string]any{"default": nil}
	}
	return s, nil
}

// fieldTitle turns a field name into a display title: "api_version" becomes
// "Api Version" and "apiVersion" becomes "Apiversion".
func fieldTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

func number(v float64) json.Number {
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}
