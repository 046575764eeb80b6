// Package gated: the public graph façade.
//
// The façade pairs every operation: a Try* variant surfacing rejections as
// errors (*constraint.Violation for domain rejections, sentinels for
// caller-contract faults), and a non-failing variant that absorbs any
// rejection and returns the unchanged graph.
package gated

import (
	"github.com/katalvlaran/vachta/constraint"
	"github.com/katalvlaran/vachta/core"
)

// Graph is an immutable constraint-gated graph value.
//
// It wraps a core.Graph, the constraint bound to exactly that value, the
// factory used to bind constraints to derived values, and the suspension
// flag. Mutations never change the receiver; they return a new Graph (or
// the receiver itself on rejection and no-ops).
type Graph struct {
	base      *core.Graph
	factory   constraint.Factory
	check     constraint.Constraint
	suspended bool
}

// New wraps base in a gated façade guarded by the constraint f produces.
// A nil factory means unconstrained. The base graph itself is accepted
// as-is: factory-built graphs carry no checks.
//
// Returns ErrNilGraph when base is nil.
func New(base *core.Graph, f constraint.Factory) (*Graph, error) {
	if base == nil {
		return nil, ErrNilGraph
	}
	if f == nil {
		f = constraint.Unconstrained
	}

	return &Graph{base: base, factory: f, check: f(base)}, nil
}

// TryAdd adds a single node or edge.
//
// Present elements are an idempotent no-op with zero constraint
// evaluations. For an edge, endpoints that are missing from the graph are
// inserted atomically as part of the same operation, and the constraint
// sees nodes and edge together. On rejection the unchanged graph is
// returned along with the violation.
func (g *Graph) TryAdd(p Param) (*Graph, error) {
	return g.tryAdd([]Param{p})
}

// Add is the non-failing variant of TryAdd: on rejection it returns the
// unchanged graph.
func (g *Graph) Add(p Param) *Graph {
	ng, _ := g.tryAdd([]Param{p})

	return ng
}

// TryAddAll adds an ordered heterogeneous batch of nodes and edges as one
// atomic unit: one pre-check over the whole delta, one rebuild, one
// post-check. Either every genuinely new element lands or none does.
func (g *Graph) TryAddAll(ps ...Param) (*Graph, error) {
	return g.tryAdd(ps)
}

// AddAll is the non-failing variant of TryAddAll.
func (g *Graph) AddAll(ps ...Param) *Graph {
	ng, _ := g.tryAdd(ps)

	return ng
}

// TryRemove removes a single node or edge under the given mode:
//
//   - Forced (node): ripple delete of incident edges; pre-check only, the
//     constraint must accept or abort up front.
//   - Isolated (node): same structural effect, but consulted with
//     forced=false and vetoable at post-check.
//   - Simple (edge): the edge only; endpoints remain even if isolated.
//   - Private (edge): the edge plus endpoints privately owned by it.
//
// Removing an absent element is a no-op, not a rejection. A mode that does
// not fit the parameter kind yields ErrModeMismatch.
func (g *Graph) TryRemove(p Param, mode RemovalMode) (*Graph, error) {
	if !mode.appliesTo(p) {
		return g, ErrModeMismatch
	}

	switch {
	case p.IsNode():
		n, ok := g.base.FindNode(p.Node())
		if !ok {
			return g, nil // absent: no-op
		}
		ripple := g.base.IncidentEdges(n)
		// Forced removal has no post-check variant; Isolated does.
		return g.trySubtract([]core.Node{n}, ripple, mode == Forced, mode != Forced)
	default:
		e, ok := g.base.FindEdge(p.Edge())
		if !ok {
			return g, nil
		}
		var nodes []core.Node
		if mode == Private {
			nodes = privateEndpoints(g.base, e)
		}
		// Private cascades beyond the named element, hence forced=true.
		return g.trySubtract(nodes, []core.Edge{e}, mode == Private, true)
	}
}

// Remove is the non-failing variant of TryRemove.
func (g *Graph) Remove(p Param, mode RemovalMode) *Graph {
	ng, _ := g.TryRemove(p, mode)

	return ng
}

// TryRemoveAll removes a batch of nodes and edges as one atomic unit.
// Parameters are resolved against the graph first: absent elements are
// silently dropped, resolved nodes ripple to their incident edges, and a
// single pre-check (forced=true) plus optional post-check governs the
// whole resolved delta.
func (g *Graph) TryRemoveAll(ps ...Param) (*Graph, error) {
	nodes, edges := partitionRemovals(g.base, ps)

	return g.trySubtract(nodes, edges, true, true)
}

// RemoveAll is the non-failing variant of TryRemoveAll.
func (g *Graph) RemoveAll(ps ...Param) *Graph {
	ng, _ := g.TryRemoveAll(ps...)

	return ng
}

// Core returns the underlying storage value. Read-only by construction.
func (g *Graph) Core() *core.Graph { return g.base }

// Constraint returns the constraint bound to this graph value.
func (g *Graph) Constraint() constraint.Constraint { return g.check }

// ContainsNode reports node membership. Complexity: O(1).
func (g *Graph) ContainsNode(n core.Node) bool { return g.base.ContainsNode(n) }

// ContainsEdge reports edge membership by identity. Complexity: O(1).
func (g *Graph) ContainsEdge(e core.Edge) bool { return g.base.ContainsEdge(e) }

// Nodes returns all nodes in lexicographic order.
func (g *Graph) Nodes() []core.Node { return g.base.Nodes() }

// Edges returns all resident edges in deterministic order.
func (g *Graph) Edges() []core.Edge { return g.base.Edges() }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.base.NodeCount() }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.base.EdgeCount() }

// Equal reports structural equality of the underlying storage values.
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return false
	}

	return g.base.Equal(o.base)
}
