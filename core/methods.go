// Package core: structural queries on a frozen Graph.
//
// Every method here is read-only; because a Graph is never mutated after
// construction, none of them require synchronization and all are safe to
// call from concurrent readers.
package core

import "sort"

// ContainsNode reports whether n is a member of the node set.
// Complexity: O(1).
func (g *Graph) ContainsNode(n Node) bool {
	if n == "" {
		return false // empty ID considered absent
	}
	_, ok := g.nodes[n]

	return ok
}

// ContainsEdge reports whether an edge with e's identity (canonical
// endpoint pair) is present. The supplied Weight is ignored.
// Complexity: O(1).
func (g *Graph) ContainsEdge(e Edge) bool {
	if e.From == "" || e.To == "" {
		return false
	}
	_, ok := g.edges[g.Canonical(e)]

	return ok
}

// FindNode resolves n to its graph-resident value.
// Complexity: O(1).
func (g *Graph) FindNode(n Node) (Node, bool) {
	if !g.ContainsNode(n) {
		return "", false
	}

	return n, true
}

// FindEdge resolves e to its graph-resident representation: the edge as it
// was stored, carrying the resident orientation and Weight. Use this to
// recover attributes when only the endpoint pair is known.
// Complexity: O(1).
func (g *Graph) FindEdge(e Edge) (Edge, bool) {
	if e.From == "" || e.To == "" {
		return Edge{}, false
	}
	resident, ok := g.edges[g.Canonical(e)]

	return resident, ok
}

// IncidentEdges returns the resident edges incident to n, sorted by
// (From, To, Weight) for determinism. An absent node yields nil.
// Complexity: O(d log d), d = incident edge count.
func (g *Graph) IncidentEdges(n Node) []Edge {
	bucket, ok := g.incidence[n]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(bucket))
	for k := range bucket {
		out = append(out, g.edges[k])
	}
	sortEdges(out)

	return out
}

// Endpoints resolves e to the endpoints of its resident representation.
// The third return is false when the edge is absent.
// Complexity: O(1).
func (g *Graph) Endpoints(e Edge) (Node, Node, bool) {
	resident, ok := g.FindEdge(e)
	if !ok {
		return "", "", false
	}

	return resident.From, resident.To, true
}

// Degree returns the number of distinct edges incident to n.
// A self-loop counts once. Absent nodes have degree 0.
// Complexity: O(1).
func (g *Graph) Degree(n Node) int {
	return len(g.incidence[n])
}

// Nodes returns all nodes in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all resident edges sorted by (From, To, Weight).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether edge orientation is significant.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Equal reports structural equality: same configuration flags, same node
// set, and the same edge identities with equal resident weights. Resident
// orientation of undirected edges does not affect equality.
// Complexity: O(V+E).
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return false
	}
	if g.directed != o.directed || g.weighted != o.weighted || g.allowLoops != o.allowLoops {
		return false
	}
	if len(g.nodes) != len(o.nodes) || len(g.edges) != len(o.edges) {
		return false
	}
	for n := range g.nodes {
		if _, ok := o.nodes[n]; !ok {
			return false
		}
	}
	for k, e := range g.edges {
		other, ok := o.edges[k]
		if !ok || other.Weight != e.Weight {
			return false
		}
	}

	return true
}

// sortEdges orders edges by (From, To, Weight) in place.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}

		return a.Weight < b.Weight
	})
}
