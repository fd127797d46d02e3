package dependency

import "sort"

// NodeID uniquely identifies a node in the graph.
type NodeID string

// Node is a vertex in the dependency graph.
type Node struct {
	ID        NodeID
	DependsOn []NodeID
}

// Graph is a directed graph of nodes and their dependencies. Edges may point
// at IDs that were never added; such targets are treated as leaves.
type Graph struct {
	nodes map[NodeID]*Node
}

// New creates an empty graph instance.
func New() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

// AddNode inserts or replaces a node in the graph.
func (g *Graph) AddNode(n Node) {
	if g.nodes == nil {
		g.nodes = make(map[NodeID]*Node)
	}
	// Copy to avoid external mutations
	copied := n
	copied.DependsOn = append([]NodeID(nil), n.DependsOn...)
	g.nodes[n.ID] = &copied
}

// Dependencies returns a slice of immediate dependency IDs for the given node.
func (g *Graph) Dependencies(id NodeID) []NodeID {
	if n, ok := g.nodes[id]; ok {
		depsCopy := make([]NodeID, len(n.DependsOn))
		copy(depsCopy, n.DependsOn)
		return depsCopy
	}
	return nil
}

// Dependents returns, sorted, all node IDs that have a direct dependency on
// the given node.
func (g *Graph) Dependents(id NodeID) []NodeID {
	var res []NodeID
	for _, n := range g.nodes {
		for _, dep := range n.DependsOn {
			if dep == id {
				res = append(res, n.ID)
				break
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Cycle returns a path that leaves id and comes back to it, starting and
// ending with id, or nil when id is not part of a cycle. Dependencies are
// explored in declaration order so the result is deterministic.
func (g *Graph) Cycle(id NodeID) []NodeID {
	visited := map[NodeID]bool{}
	var path []NodeID

	var walk func(cur NodeID) bool
	walk = func(cur NodeID) bool {
		for _, dep := range g.Dependencies(cur) {
			if dep == id {
				path = append(path, dep)
				return true
			}
			if visited[dep] {
				continue
			}
			visited[dep] = true
			path = append(path, dep)
			if walk(dep) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	path = append(path, id)
	if walk(id) {
		return path
	}
	return nil
}
