// Package core defines the immutable storage value consumed by the mutation
// gate: Node and Edge value types, the frozen Graph, pure construction, and
// the structural queries (containment, resolution, incidence) that
// constraint checks are written against.
//
// What:
//
//   - Node: string-valued identifier; two nodes are equal iff their IDs are.
//   - Edge: value type referencing its endpoints by Node value. Edge
//     identity is the endpoint pair, canonicalized when the graph is
//     undirected; Weight is an attribute of the resident edge, resolved
//     via FindEdge, not part of identity.
//   - Graph: a frozen node set, edge set, and incidence index. Built once by
//     New or Copy and never mutated; derived graphs are new values.
//
// Why:
//   - The gate's copy-based rebuild needs a construction path with no
//     constraint checks (New/Copy are pure) and cheap structural queries
//     (ContainsNode/Edge, FindNode/Edge, IncidentEdges, Endpoints, Degree).
//   - Immutability makes every returned Graph safe for concurrent reads;
//     there is no in-place mutation API at all.
//
// Key Types & Options:
//
//   - Option: functional configuration applied at construction
//     (WithDirected, WithWeighted, WithLoops).
//   - Enumeration surfaces (Nodes, Edges, IncidentEdges) are sorted for
//     deterministic output.
//
// Errors:
//
//   - ErrEmptyNodeID       node or endpoint ID is the empty string
//   - ErrDanglingEndpoint  edge endpoint is not a member of the node set
//   - ErrBadWeight         non-zero weight on an unweighted graph
//   - ErrLoopNotAllowed    self-loop when loops are disabled
//
// Complexity:
//
//   - New/Copy:        Time O(V+E), Space O(V+E)
//   - Contains/Find:   Time O(1)
//   - IncidentEdges:   Time O(d log d), d = incident edge count
//   - Nodes/Edges:     Time O(V log V) / O(E log E)
package core
