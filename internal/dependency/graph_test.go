package dependency

import (
	"testing"
)

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}
	if g.nodes == nil {
		t.Fatal("nodes map not initialized")
	}
	if len(g.nodes) != 0 {
		t.Fatalf("expected empty nodes map, got %d nodes", len(g.nodes))
	}
}

func TestAddNodeCopies(t *testing.T) {
	var g Graph
	deps := []NodeID{"B"}
	g.AddNode(Node{ID: "A", DependsOn: deps})
	deps[0] = "C"

	got := g.Dependencies("A")
	if len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected dependencies [B], got %v", got)
	}

	got[0] = "D"
	if g.Dependencies("A")[0] != "B" {
		t.Fatal("Dependencies must return a copy")
	}

	if g.Dependencies("missing") != nil {
		t.Fatal("expected nil dependencies for unknown node")
	}
}

func TestDependents(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: "Widget", DependsOn: []NodeID{"Spec", "Condition"}})
	g.AddNode(Node{ID: "Gadget", DependsOn: []NodeID{"Condition"}})
	g.AddNode(Node{ID: "Spec"})

	got := g.Dependents("Condition")
	if len(got) != 2 || got[0] != "Gadget" || got[1] != "Widget" {
		t.Fatalf("expected [Gadget Widget], got %v", got)
	}
	if len(g.Dependents("Widget")) != 0 {
		t.Fatal("expected no dependents for Widget")
	}
}

func TestCycle(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []Node
		start    NodeID
		expected []NodeID
	}{
		{
			name: "acyclic chain",
			nodes: []Node{
				{ID: "A", DependsOn: []NodeID{"B"}},
				{ID: "B", DependsOn: []NodeID{"C"}},
			},
			start: "A",
		},
		{
			name:     "self reference",
			nodes:    []Node{{ID: "A", DependsOn: []NodeID{"A"}}},
			start:    "A",
			expected: []NodeID{"A", "A"},
		},
		{
			name: "indirect cycle",
			nodes: []Node{
				{ID: "A", DependsOn: []NodeID{"X", "B"}},
				{ID: "B", DependsOn: []NodeID{"C"}},
				{ID: "C", DependsOn: []NodeID{"A"}},
			},
			start:    "A",
			expected: []NodeID{"A", "B", "C", "A"},
		},
		{
			name: "cycle elsewhere does not include start",
			nodes: []Node{
				{ID: "A", DependsOn: []NodeID{"B"}},
				{ID: "B", DependsOn: []NodeID{"C"}},
				{ID: "C", DependsOn: []NodeID{"B"}},
			},
			start: "A",
		},
		{
			name: "diamond",
			nodes: []Node{
				{ID: "A", DependsOn: []NodeID{"B", "C"}},
				{ID: "B", DependsOn: []NodeID{"D"}},
				{ID: "C", DependsOn: []NodeID{"D"}},
			},
			start: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, n := range tt.nodes {
				g.AddNode(n)
			}
			got := g.Cycle(tt.start)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
