// Package constraint: the Constraint capability interface, per-graph
// attachment, and chain composition.
package constraint

import "github.com/katalvlaran/vachta/core"

// Constraint is the fixed capability set a gated graph delegates to.
//
// A constraint instance is attached 1:1 to one graph value (see Factory)
// and is stateless across calls apart from that back-reference. Single
// elements arrive as singleton sets; batches arrive whole, so non-local
// invariants can judge the entire delta at once.
//
// The forced flag of PreSubtract distinguishes removals that cascade
// beyond the named element (node ripple delete, private-edge cascade) from
// removals treated as optional (node isolation, simple edge removal).
type Constraint interface {
	// PreAdd judges an addition before any rebuild.
	PreAdd(nodes []core.Node, edges []core.Edge) Result

	// PostAdd judges the rebuilt candidate after a PostCheck verdict.
	// A nil return accepts; a Violation reverts to the original graph.
	PostAdd(candidate *core.Graph, nodes []core.Node, edges []core.Edge, pre Result) *Violation

	// PreSubtract judges a removal before any rebuild.
	PreSubtract(nodes []core.Node, edges []core.Edge, forced bool) Result

	// PostSubtract judges the rebuilt candidate after a PostCheck verdict.
	PostSubtract(candidate *core.Graph, nodes []core.Node, edges []core.Edge, pre Result) *Violation

	// OnAdditionRefused observes a refused addition. On Abort, g is the
	// unchanged graph; on post-check rejection, g is the failed candidate.
	// Pure observer: must not mutate state visible to later checks.
	OnAdditionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph)

	// OnSubtractionRefused observes a refused removal, mirroring
	// OnAdditionRefused.
	OnSubtractionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph)
}

// Factory binds a fresh Constraint to a graph value. The gate calls it for
// the original graph and for every accepted candidate, so each graph value
// owns a constraint holding a back-reference to exactly that value.
type Factory func(g *core.Graph) Constraint

// Base provides no-op defaults for the optional Constraint callbacks.
// Embed it and implement PreAdd/PreSubtract (and the post-checks you need).
type Base struct{}

// PostAdd accepts every candidate.
func (Base) PostAdd(*core.Graph, []core.Node, []core.Edge, Result) *Violation { return nil }

// PostSubtract accepts every candidate.
func (Base) PostSubtract(*core.Graph, []core.Node, []core.Edge, Result) *Violation { return nil }

// OnAdditionRefused ignores the notification.
func (Base) OnAdditionRefused([]core.Node, []core.Edge, *core.Graph) {}

// OnSubtractionRefused ignores the notification.
func (Base) OnSubtractionRefused([]core.Node, []core.Edge, *core.Graph) {}

// admitAll is the constraint behind Unconstrained.
type admitAll struct{ Base }

func (admitAll) PreAdd([]core.Node, []core.Edge) Result            { return Completed() }
func (admitAll) PreSubtract([]core.Node, []core.Edge, bool) Result { return Completed() }

// Unconstrained is a Factory whose constraint admits every mutation.
func Unconstrained(*core.Graph) Constraint { return admitAll{} }

// And composes factories into a single chained constraint.
//
// Verdict merge: any Abort dominates (the first aborting member's Result is
// returned as-is); otherwise any PostCheck escalates the whole chain to
// PostCheck; otherwise the chain completes. During the post-check each
// member that asked for one is consulted with its own pre-check Result, and
// the first violation wins. Refusal notifications fan out to every member.
func And(factories ...Factory) Factory {
	return func(g *core.Graph) Constraint {
		members := make([]Constraint, len(factories))
		for i, f := range factories {
			members[i] = f(g)
		}

		return &chain{members: members}
	}
}

// chain is the composed constraint produced by And.
type chain struct {
	members []Constraint
}

// chainPayload carries each member's pre-check Result to the post-check.
type chainPayload struct {
	results []Result
}

func (c *chain) PreAdd(nodes []core.Node, edges []core.Edge) Result {
	return c.merge(func(m Constraint) Result { return m.PreAdd(nodes, edges) })
}

func (c *chain) PreSubtract(nodes []core.Node, edges []core.Edge, forced bool) Result {
	return c.merge(func(m Constraint) Result { return m.PreSubtract(nodes, edges, forced) })
}

// merge runs the pre-check across members and folds the verdicts.
func (c *chain) merge(pre func(Constraint) Result) Result {
	payload := chainPayload{results: make([]Result, len(c.members))}
	verdict := Complete
	for i, m := range c.members {
		r := pre(m)
		if r.FollowUp == Abort {
			return r // Abort dominates; no rebuild will happen
		}
		payload.results[i] = r
		if r.FollowUp == PostCheck {
			verdict = PostCheck
		}
	}
	if verdict == Complete {
		return Completed()
	}

	return PostCheckedWith(payload)
}

func (c *chain) PostAdd(candidate *core.Graph, nodes []core.Node, edges []core.Edge, pre Result) *Violation {
	return c.dispatch(pre, func(m Constraint, mp Result) *Violation {
		return m.PostAdd(candidate, nodes, edges, mp)
	})
}

func (c *chain) PostSubtract(candidate *core.Graph, nodes []core.Node, edges []core.Edge, pre Result) *Violation {
	return c.dispatch(pre, func(m Constraint, mp Result) *Violation {
		return m.PostSubtract(candidate, nodes, edges, mp)
	})
}

// dispatch post-checks each member that requested one, threading that
// member's own pre-check Result. First violation wins.
func (c *chain) dispatch(pre Result, post func(Constraint, Result) *Violation) *Violation {
	payload, ok := pre.Payload.(chainPayload)
	for i, m := range c.members {
		mp := pre
		if ok && i < len(payload.results) {
			mp = payload.results[i]
		}
		if mp.FollowUp != PostCheck {
			continue // member was already authoritative at pre-check
		}
		if v := post(m, mp); v != nil {
			return v
		}
	}

	return nil
}

func (c *chain) OnAdditionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph) {
	for _, m := range c.members {
		m.OnAdditionRefused(nodes, edges, g)
	}
}

func (c *chain) OnSubtractionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph) {
	for _, m := range c.members {
		m.OnSubtractionRefused(nodes, edges, g)
	}
}
