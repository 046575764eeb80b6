// Package gated implements the mutation gate: the immutable graph façade
// whose add and remove operations are screened by a pluggable constraint
// through a two-phase pre-check / post-check protocol.
//
// What:
//
//   - Graph: wraps a core.Graph, the constraint bound to it, and the
//     suspension flag. Every accepted mutation yields a new Graph value
//     with a freshly bound constraint; the original stays valid.
//   - Param: tagged-union mutation parameter (node or edge) for the
//     heterogeneous batch operations. Build with N and E.
//   - RemovalMode: Forced / Isolated for nodes, Simple / Private for edges.
//   - TryAdd / TryAddAll / TryRemove / TryRemoveAll: explicit-result
//     operations returning (new graph, nil) on acceptance or
//     (unchanged graph, error) on rejection.
//   - Add / AddAll / Remove / RemoveAll: non-failing variants that absorb
//     rejections and return the unchanged graph.
//
// Protocol (per mutation):
//
//  1. The partitioner classifies the request: already-present additions
//     (or absent removals) are dropped as no-ops, the remainder is split
//     into deduplicated node and edge sets, and missing edge endpoints
//     join the node set atomically.
//  2. The constraint's pre-check issues one verdict for the whole delta:
//     Abort rejects without rebuilding, Complete accepts after the rebuild,
//     PostCheck defers authority to a check on the rebuilt candidate.
//  3. The rebuild derives a candidate via core.Copy under the suspension
//     guard, so internal reconstruction never re-enters the gate.
//  4. On rejection the refusal hook fires — with the unchanged graph on
//     Abort, with the failed candidate on post-check rejection — and the
//     caller gets the pre-mutation graph back. No partial state is ever
//     observable; batches are all-or-nothing.
//
// Errors:
//
//   - *constraint.Violation     the only domain-level failure (errors.As)
//   - core.ErrDanglingEndpoint  malformed request, caller contract
//   - ErrNilGraph               façade constructed without a base graph
//   - ErrMissingViolation       constraint aborted without explanation
//   - ErrModeMismatch           removal mode does not fit the element kind
//
// Concurrency:
//
//   - Returned Graph values are safe for concurrent reads. The suspension
//     flag is deliberately unsynchronized: issuing two mutations against
//     the same Graph value concurrently is unsupported.
//
// Complexity:
//
//   - Each mutation is one partition pass plus one O(V+E) rebuild; the
//     constraint's own checks come on top.
package gated
