// Package gated: the mutation gate algorithms.
//
// tryAdd and trySubtract are the two code paths every public operation
// funnels into. Both follow the same shape: partition → pre-check →
// copy-based rebuild under the suspension guard → optional post-check →
// accept the candidate or return the unchanged original plus a violation.
package gated

import (
	"github.com/katalvlaran/vachta/constraint"
	"github.com/katalvlaran/vachta/core"
)

// preAdd consults the bound constraint unless checking is suspended.
func (g *Graph) preAdd(nodes []core.Node, edges []core.Edge) constraint.Result {
	if g.suspended {
		return constraint.Completed()
	}

	return g.check.PreAdd(nodes, edges)
}

// preSubtract consults the bound constraint unless checking is suspended.
func (g *Graph) preSubtract(nodes []core.Node, edges []core.Edge, forced bool) constraint.Result {
	if g.suspended {
		return constraint.Completed()
	}

	return g.check.PreSubtract(nodes, edges, forced)
}

// tryAdd implements single and batch addition: a single element is a
// one-parameter batch. Returns the receiver unchanged when every parameter
// is already present (idempotent no-op, zero constraint evaluations).
func (g *Graph) tryAdd(ps []Param) (*Graph, error) {
	// 1) Partition: drop no-ops, split by kind, close over edge endpoints.
	nodes, edges := partitionAdditions(g.base, ps)
	if len(nodes) == 0 && len(edges) == 0 {
		return g, nil // nothing genuinely new
	}

	// 2) Pre-check: one verdict governs the entire delta.
	pre := g.preAdd(nodes, edges)
	if pre.FollowUp == constraint.Abort {
		if pre.Violation == nil {
			return g, ErrMissingViolation // Abort requires an explanation
		}
		g.check.OnAdditionRefused(nodes, edges, g.base)

		return g, pre.Violation
	}

	// 3) Rebuild: union the delta in, suspended so the reconstruction
	//    cannot re-enter the gate.
	candidate, err := g.buildAdditive(nodes, edges)
	if err != nil {
		return g, err
	}

	// 4) Post-check: authoritative when the pre-check deferred.
	if pre.FollowUp == constraint.PostCheck {
		if v := g.check.PostAdd(candidate, nodes, edges, pre); v != nil {
			// The hook sees the failed candidate so it can explain why.
			g.check.OnAdditionRefused(nodes, edges, candidate)

			return g, v
		}
	}

	return g.wrap(candidate), nil
}

// trySubtract implements single and batch removal over already-resolved
// node/edge sets. postEligible is false only for forced node removal,
// which by contract must succeed or be aborted up front.
func (g *Graph) trySubtract(nodes []core.Node, edges []core.Edge, forced, postEligible bool) (*Graph, error) {
	if len(nodes) == 0 && len(edges) == 0 {
		return g, nil // removal of absent elements is a no-op
	}

	pre := g.preSubtract(nodes, edges, forced)
	if pre.FollowUp == constraint.Abort {
		if pre.Violation == nil {
			return g, ErrMissingViolation
		}
		g.check.OnSubtractionRefused(nodes, edges, g.base)

		return g, pre.Violation
	}

	candidate, err := g.buildSubtractive(nodes, edges)
	if err != nil {
		return g, err
	}

	if postEligible && pre.FollowUp == constraint.PostCheck {
		if v := g.check.PostSubtract(candidate, nodes, edges, pre); v != nil {
			g.check.OnSubtractionRefused(nodes, edges, candidate)

			return g, v
		}
	}

	return g.wrap(candidate), nil
}

// buildAdditive derives the candidate graph holding the current structure
// plus the delta. Runs under the suspension guard.
func (g *Graph) buildAdditive(addNodes []core.Node, addEdges []core.Edge) (*core.Graph, error) {
	keepNodes := append(g.base.Nodes(), addNodes...)
	keepEdges := append(g.base.Edges(), addEdges...)

	var out *core.Graph
	err := g.withoutChecks(func() error {
		var derr error
		out, derr = g.derive(keepNodes, keepEdges)

		return derr
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// buildSubtractive derives the candidate graph without the removed
// elements. Edges incident to a removed node are filtered out as well, so
// the candidate never violates endpoint membership. Runs under the
// suspension guard.
func (g *Graph) buildSubtractive(dropNodes []core.Node, dropEdges []core.Edge) (*core.Graph, error) {
	goneNodes := make(map[core.Node]struct{}, len(dropNodes))
	for _, n := range dropNodes {
		goneNodes[n] = struct{}{}
	}
	goneEdges := make(map[core.Edge]struct{}, len(dropEdges))
	for _, e := range dropEdges {
		goneEdges[g.base.Canonical(e)] = struct{}{}
	}

	keepNodes := make([]core.Node, 0, g.base.NodeCount())
	for _, n := range g.base.Nodes() {
		if _, gone := goneNodes[n]; gone {
			continue
		}
		keepNodes = append(keepNodes, n)
	}
	keepEdges := make([]core.Edge, 0, g.base.EdgeCount())
	for _, e := range g.base.Edges() {
		if _, gone := goneEdges[g.base.Canonical(e)]; gone {
			continue
		}
		if _, gone := goneNodes[e.From]; gone {
			continue // ripple: edge loses an endpoint
		}
		if _, gone := goneNodes[e.To]; gone {
			continue
		}
		keepEdges = append(keepEdges, e)
	}

	var out *core.Graph
	err := g.withoutChecks(func() error {
		var derr error
		out, derr = g.derive(keepNodes, keepEdges)

		return derr
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// derive rebuilds via the storage collaborator's copy constructor. Outside
// a suspended scope the constraint is consulted first, so stray internal
// reconstruction cannot slip past the gate; the gate's own rebuilds always
// arrive here suspended and go straight to Copy.
func (g *Graph) derive(nodes []core.Node, edges []core.Edge) (*core.Graph, error) {
	if !g.suspended {
		if pre := g.check.PreAdd(nodes, edges); pre.FollowUp == constraint.Abort {
			if pre.Violation == nil {
				return nil, ErrMissingViolation
			}

			return nil, pre.Violation
		}
	}

	return g.base.Copy(nodes, edges)
}

// wrap promotes an accepted candidate to a full façade value with a fresh
// constraint bound to it.
func (g *Graph) wrap(candidate *core.Graph) *Graph {
	return &Graph{
		base:    candidate,
		factory: g.factory,
		check:   g.factory(candidate),
	}
}
