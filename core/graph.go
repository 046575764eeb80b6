// Package core: construction paths.
//
// New and Copy are the only ways a Graph comes to exist. Both are pure:
// they validate structural well-formedness (IDs, weights, loops, endpoint
// membership) and nothing else — constraint evaluation is the gate's job.
package core

import "fmt"

// New builds a Graph from a node collection and an edge collection.
// Duplicate nodes and duplicate edges (by canonical form) are collapsed;
// the first occurrence of an edge wins.
//
// Returns ErrEmptyNodeID, ErrBadWeight, ErrLoopNotAllowed, or
// ErrDanglingEndpoint on malformed input.
// Complexity: O(V+E).
func New(nodes []Node, edges []Edge, opts ...Option) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[Node]struct{}, len(nodes)),
		edges:     make(map[Edge]Edge, len(edges)),
		incidence: make(map[Node]map[Edge]struct{}, len(nodes)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.populate(nodes, edges); err != nil {
		return nil, err
	}

	return g, nil
}

// Copy builds a new Graph with the receiver's configuration flags and the
// given node/edge collections. Pure construction: no constraint checks.
// This is the rebuild primitive the mutation gate relies on.
// Complexity: O(V+E).
func (g *Graph) Copy(nodes []Node, edges []Edge) (*Graph, error) {
	ng := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		nodes:      make(map[Node]struct{}, len(nodes)),
		edges:      make(map[Edge]Edge, len(edges)),
		incidence:  make(map[Node]map[Edge]struct{}, len(nodes)),
	}
	if err := ng.populate(nodes, edges); err != nil {
		return nil, err
	}

	return ng, nil
}

// Canonical returns the identity form of e under the graph's orientation
// policy: weight stripped, endpoints ordered lexicographically when the
// graph is undirected. Two edges denote the same connection iff their
// canonical forms are equal.
// Complexity: O(1).
func (g *Graph) Canonical(e Edge) Edge {
	e.Weight = 0
	if !g.directed && e.To < e.From {
		e.From, e.To = e.To, e.From
	}

	return e
}

// populate fills the (still-empty) storage maps, validating as it goes.
// Called exactly once per Graph; after it returns the value is frozen.
func (g *Graph) populate(nodes []Node, edges []Edge) error {
	// 1) Node set: reject empty IDs, collapse duplicates.
	for _, n := range nodes {
		if n == "" {
			return ErrEmptyNodeID
		}
		g.nodes[n] = struct{}{}
	}

	// 2) Edge set: validate weight/loop policy and endpoint membership,
	//    then index by canonical form.
	for _, e := range edges {
		if e.From == "" || e.To == "" {
			return ErrEmptyNodeID
		}
		if !g.weighted && e.Weight != 0 {
			return fmt.Errorf("%w: edge %s-%s carries weight %d", ErrBadWeight, e.From, e.To, e.Weight)
		}
		if e.From == e.To && !g.allowLoops {
			return fmt.Errorf("%w: %s", ErrLoopNotAllowed, e.From)
		}
		if _, ok := g.nodes[e.From]; !ok {
			return fmt.Errorf("%w: %s", ErrDanglingEndpoint, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok {
			return fmt.Errorf("%w: %s", ErrDanglingEndpoint, e.To)
		}

		k := g.Canonical(e)
		if _, dup := g.edges[k]; dup {
			continue // first occurrence wins
		}
		g.edges[k] = e
		g.addIncidence(e.From, k)
		if e.To != e.From {
			g.addIncidence(e.To, k)
		}
	}

	return nil
}

// addIncidence records canonical key k as incident to n.
func (g *Graph) addIncidence(n Node, k Edge) {
	bucket, ok := g.incidence[n]
	if !ok {
		bucket = make(map[Edge]struct{})
		g.incidence[n] = bucket
	}
	bucket[k] = struct{}{}
}
