// Package dependency provides a small directed graph used to track which
// models reference which.
//
// Each node is a model name and its DependsOn edges point at the models its
// fields reference. The graph is used to spot reference cycles before schema
// files are written: a cyclic schema cannot be inlined into a CRD.
//
// # Basic Usage
//
//	g := dependency.New()
//	g.AddNode(dependency.Node{ID: "Widget", DependsOn: []dependency.NodeID{"WidgetSpec"}})
//	g.AddNode(dependency.Node{ID: "WidgetSpec"})
//
//	if cycle := g.Cycle("Widget"); cycle != nil {
//	    // Widget reaches itself
//	}
package dependency
