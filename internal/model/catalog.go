package model

import (
	"fmt"

	"crdgen/internal/dependency"
)

// Catalog resolves model names used as field references. The built-in
// Condition model is always present; a user model with the same name
// replaces it.
type Catalog struct {
	models map[string]*Model
}

// NewCatalog builds a catalog holding the built-in models and models.
func NewCatalog(models ...*Model) (*Catalog, error) {
	c := &Catalog{models: map[string]*Model{}}
	builtin := Condition()
	c.models[builtin.Name] = builtin

	seen := map[string]bool{}
	for _, m := range models {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("model %s is declared more than once", m.Name)
		}
		seen[m.Name] = true
		c.models[m.Name] = m
	}
	return c, nil
}

// Lookup returns the model registered under name.
func (c *Catalog) Lookup(name string) (*Model, bool) {
	m, ok := c.models[name]
	return m, ok
}

// Graph returns the reference graph of the catalog: one node per model with
// an edge to every model its fields reference.
func (c *Catalog) Graph() *dependency.Graph {
	g := dependency.New()
	for _, m := range c.models {
		var deps []dependency.NodeID
		for _, ref := range m.References() {
			deps = append(deps, dependency.NodeID(ref))
		}
		g.AddNode(dependency.Node{ID: dependency.NodeID(m.Name), DependsOn: deps})
	}
	return g
}
