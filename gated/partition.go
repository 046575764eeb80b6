// Package gated: the partitioner.
//
// A mutation request arrives as an ordered heterogeneous collection of
// node-or-edge parameters. Before any constraint evaluation the partitioner
// classifies it: no-ops are dropped, the remainder is split by variant tag
// into deduplicated node and edge sets, and (for additions) missing edge
// endpoints join the node set so the whole insertion is one combined
// operation — the constraint never sees a half-applied state.
package gated

import "github.com/katalvlaran/vachta/core"

// partitionAdditions splits ps into genuinely new nodes and edges against g.
//
// Already-present elements and duplicates are dropped; first-seen input
// order is preserved within each set. Endpoints of new edges that are
// neither present in g nor requested explicitly are appended to the node
// set (atomic auto-insertion).
// Complexity: O(len(ps)).
func partitionAdditions(g *core.Graph, ps []Param) (nodes []core.Node, edges []core.Edge) {
	seenNodes := make(map[core.Node]struct{}, len(ps))
	seenEdges := make(map[core.Edge]struct{}, len(ps))

	// 1) Split by variant tag, dropping contained elements and duplicates.
	for _, p := range ps {
		switch {
		case p.IsNode():
			n := p.Node()
			if g.ContainsNode(n) {
				continue // already present: no-op
			}
			if _, dup := seenNodes[n]; dup {
				continue
			}
			seenNodes[n] = struct{}{}
			nodes = append(nodes, n)
		case p.IsEdge():
			e := p.Edge()
			if g.ContainsEdge(e) {
				continue // already present: no-op
			}
			k := g.Canonical(e)
			if _, dup := seenEdges[k]; dup {
				continue
			}
			seenEdges[k] = struct{}{}
			edges = append(edges, e)
		}
	}

	// 2) Endpoint closure: endpoints of new edges join the node set unless
	//    already present or already requested.
	for _, e := range edges {
		for _, n := range []core.Node{e.From, e.To} {
			if g.ContainsNode(n) {
				continue
			}
			if _, dup := seenNodes[n]; dup {
				continue
			}
			seenNodes[n] = struct{}{}
			nodes = append(nodes, n)
		}
	}

	return nodes, edges
}

// partitionRemovals resolves ps against g: parameters not found in the
// graph are silently absent from the result (never an error), found nodes
// and edges come back as their resident representations, deduplicated, in
// first-seen order. Incident edges of resolved nodes join the edge set
// (ripple delete).
// Complexity: O(len(ps) + ripple).
func partitionRemovals(g *core.Graph, ps []Param) (nodes []core.Node, edges []core.Edge) {
	seenNodes := make(map[core.Node]struct{}, len(ps))
	seenEdges := make(map[core.Edge]struct{}, len(ps))

	appendEdge := func(e core.Edge) {
		k := g.Canonical(e)
		if _, dup := seenEdges[k]; dup {
			return
		}
		seenEdges[k] = struct{}{}
		edges = append(edges, e)
	}

	for _, p := range ps {
		switch {
		case p.IsNode():
			n, ok := g.FindNode(p.Node())
			if !ok {
				continue // absent: drop silently
			}
			if _, dup := seenNodes[n]; dup {
				continue
			}
			seenNodes[n] = struct{}{}
			nodes = append(nodes, n)
			// Ripple: every incident edge goes with its node.
			for _, ie := range g.IncidentEdges(n) {
				appendEdge(ie)
			}
		case p.IsEdge():
			e, ok := g.FindEdge(p.Edge())
			if !ok {
				continue
			}
			appendEdge(e)
		}
	}

	return nodes, edges
}

// privateEndpoints returns the endpoints of e whose entire incident-edge
// set is exactly e — the nodes that would become disconnected orphans if e
// alone were removed.
func privateEndpoints(g *core.Graph, e core.Edge) []core.Node {
	var out []core.Node
	from, to, ok := g.Endpoints(e)
	if !ok {
		return nil
	}
	candidates := []core.Node{from, to}
	if to == from {
		candidates = candidates[:1] // self-loop: one endpoint
	}
	for _, n := range candidates {
		incident := g.IncidentEdges(n)
		if len(incident) == 1 && g.Canonical(incident[0]) == g.Canonical(e) {
			out = append(out, n)
		}
	}

	return out
}
