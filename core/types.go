// Package core: value types, sentinel errors, and construction options.
//
// This file declares Node, Edge, Graph, Option, and the sentinel errors
// shared by every construction path.
package core

import "errors"

// Sentinel errors for core graph construction.
var (
	// ErrEmptyNodeID indicates a node or edge endpoint with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDanglingEndpoint indicates an edge whose endpoint is not a member
	// of the node set. This is a caller-contract violation, distinct from
	// any constraint rejection.
	ErrDanglingEndpoint = errors.New("core: edge endpoint not in node set")

	// ErrBadWeight indicates a non-zero weight supplied to an unweighted graph.
	ErrBadWeight = errors.New("core: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Node identifies a graph node by value. Two nodes are equal iff their
// string values are equal.
type Node string

// Edge connects two nodes by value: both endpoints must be members of the
// owning graph's node set.
//
// Identity is the endpoint pair (order-insensitive when the graph is
// undirected); Weight is an attribute carried by the resident edge and
// resolved through Graph.FindEdge.
type Edge struct {
	// From is the source endpoint (first endpoint when undirected).
	From Node

	// To is the destination endpoint (second endpoint when undirected).
	To Node

	// Weight is the cost or capacity attribute of the edge.
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected sets edge orientation semantics
// (true = directed, false = undirected; undirected is the default).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an immutable in-memory graph value.
//
// A Graph is populated exactly once, by New or Copy, and never mutated
// afterwards: every structural change derives a new value. Edges are keyed
// by their canonical form (see Canonical); incidence maps each node to the
// canonical keys of its incident edges.
type Graph struct {
	// Configuration flags, frozen at construction.
	directed   bool // edge orientation matters
	weighted   bool // non-zero weights allowed
	allowLoops bool // self-loops allowed

	// Storage, frozen once populate returns.
	nodes     map[Node]struct{}      // node membership
	edges     map[Edge]Edge          // canonical form → resident edge
	incidence map[Node]map[Edge]struct{} // node → canonical forms of incident edges
}
