// Package gated: parameter types, removal modes, and sentinel errors.
package gated

import (
	"errors"

	"github.com/katalvlaran/vachta/core"
)

// Sentinel errors for gate operations.
var (
	// ErrNilGraph indicates a façade was constructed without a base graph.
	ErrNilGraph = errors.New("gated: base graph is nil")

	// ErrMissingViolation indicates a constraint returned Abort without a
	// violation payload — a contract violation of the Constraint interface.
	ErrMissingViolation = errors.New("gated: constraint aborted without a violation")

	// ErrModeMismatch indicates a removal mode that does not apply to the
	// element kind (e.g. Simple on a node parameter).
	ErrModeMismatch = errors.New("gated: removal mode does not apply to element kind")
)

// paramKind tags the variant carried by a Param.
type paramKind uint8

const (
	nodeKind paramKind = iota + 1
	edgeKind
)

// Param is a tagged-union mutation parameter: exactly one of a node or an
// edge. Batch operations accept ordered heterogeneous collections of
// Params; the partitioner splits them by variant tag, never by reflection.
type Param struct {
	kind paramKind
	node core.Node
	edge core.Edge
}

// N wraps a node value as a mutation parameter.
func N(n core.Node) Param { return Param{kind: nodeKind, node: n} }

// E wraps an edge value as a mutation parameter.
func E(e core.Edge) Param { return Param{kind: edgeKind, edge: e} }

// IsNode reports whether p carries a node.
func (p Param) IsNode() bool { return p.kind == nodeKind }

// IsEdge reports whether p carries an edge.
func (p Param) IsEdge() bool { return p.kind == edgeKind }

// Node returns the node variant (zero value when p is not a node).
func (p Param) Node() core.Node { return p.node }

// Edge returns the edge variant (zero value when p is not an edge).
func (p Param) Edge() core.Edge { return p.edge }

// RemovalMode selects removal semantics for TryRemove/Remove.
type RemovalMode uint8

const (
	// Forced removes a node unconditionally up front, rippling to every
	// incident edge; the constraint is consulted with forced=true and has
	// no post-check — it must accept or abort before the rebuild.
	Forced RemovalMode = iota

	// Isolated removes a node only if structurally safe to treat as
	// optional; incident edges still go as a consequence, but the
	// constraint sees forced=false and may veto at post-check.
	Isolated

	// Simple removes only the edge; endpoints remain even if isolated.
	Simple

	// Private removes the edge plus any endpoint whose entire incident-edge
	// set is exactly this edge (a "private node").
	Private
)

// String returns the mode name for diagnostics.
func (m RemovalMode) String() string {
	switch m {
	case Forced:
		return "Forced"
	case Isolated:
		return "Isolated"
	case Simple:
		return "Simple"
	case Private:
		return "Private"
	default:
		return "RemovalMode(?)"
	}
}

// appliesTo reports whether the mode fits the parameter's variant.
func (m RemovalMode) appliesTo(p Param) bool {
	switch m {
	case Forced, Isolated:
		return p.IsNode()
	case Simple, Private:
		return p.IsEdge()
	default:
		return false
	}
}
