// Package gated_test: shared fixtures — instrumented constraints and graph
// builders used across the façade and gate suites.
package gated_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vachta/constraint"
	"github.com/katalvlaran/vachta/core"
	"github.com/katalvlaran/vachta/gated"
)

// callLog accumulates constraint activity across every graph value derived
// from one factory (the factory binds fresh constraints, the log is shared).
type callLog struct {
	preAdd, postAdd   int
	preSub, postSub   int
	refusals          int
	lastForced        bool
	lastPreNodes      []core.Node
	lastPreEdges      []core.Edge
	lastRefusedNodes  []core.Node
	lastRefusedEdges  []core.Edge
	lastRefusedGraph  *core.Graph
}

func (l *callLog) total() int {
	return l.preAdd + l.postAdd + l.preSub + l.postSub + l.refusals
}

// recorder returns scripted verdicts and writes every invocation to its log.
type recorder struct {
	g    *core.Graph
	log  *callLog
	pre  constraint.Result
	veto *constraint.Violation
}

func (r *recorder) PreAdd(nodes []core.Node, edges []core.Edge) constraint.Result {
	r.log.preAdd++
	r.log.lastPreNodes = nodes
	r.log.lastPreEdges = edges

	return r.pre
}

func (r *recorder) PostAdd(*core.Graph, []core.Node, []core.Edge, constraint.Result) *constraint.Violation {
	r.log.postAdd++

	return r.veto
}

func (r *recorder) PreSubtract(nodes []core.Node, edges []core.Edge, forced bool) constraint.Result {
	r.log.preSub++
	r.log.lastForced = forced
	r.log.lastPreNodes = nodes
	r.log.lastPreEdges = edges

	return r.pre
}

func (r *recorder) PostSubtract(*core.Graph, []core.Node, []core.Edge, constraint.Result) *constraint.Violation {
	r.log.postSub++

	return r.veto
}

func (r *recorder) OnAdditionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph) {
	r.log.refusals++
	r.log.lastRefusedNodes = nodes
	r.log.lastRefusedEdges = edges
	r.log.lastRefusedGraph = g
}

func (r *recorder) OnSubtractionRefused(nodes []core.Node, edges []core.Edge, g *core.Graph) {
	r.log.refusals++
	r.log.lastRefusedNodes = nodes
	r.log.lastRefusedEdges = edges
	r.log.lastRefusedGraph = g
}

// recording builds a Factory of recorders sharing one log.
func recording(log *callLog, pre constraint.Result, veto *constraint.Violation) constraint.Factory {
	return func(g *core.Graph) constraint.Constraint {
		return &recorder{g: g, log: log, pre: pre, veto: veto}
	}
}

// degreeCap rejects, at post-check, any added edge whose endpoint would
// exceed the degree limit in the candidate graph.
type degreeCap struct {
	constraint.Base

	g     *core.Graph
	limit int
}

func (c *degreeCap) PreAdd(_ []core.Node, edges []core.Edge) constraint.Result {
	if len(edges) == 0 {
		return constraint.Completed() // nodes alone cannot raise a degree
	}

	return constraint.PostChecked()
}

func (c *degreeCap) PreSubtract([]core.Node, []core.Edge, bool) constraint.Result {
	return constraint.Completed() // removal never raises a degree
}

func (c *degreeCap) PostAdd(candidate *core.Graph, _ []core.Node, edges []core.Edge, _ constraint.Result) *constraint.Violation {
	for _, e := range edges {
		for _, n := range []core.Node{e.From, e.To} {
			if candidate.Degree(n) > c.limit {
				return constraint.NewViolation("max degree exceeded", []core.Node{n}, []core.Edge{e})
			}
		}
	}

	return nil
}

// maxDegree builds the degreeCap factory.
func maxDegree(limit int) constraint.Factory {
	return func(g *core.Graph) constraint.Constraint {
		return &degreeCap{g: g, limit: limit}
	}
}

// lineCore builds the storage graph {1,2,3} with edges {1-2, 2-3}.
func lineCore(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.New(
		[]core.Node{"1", "2", "3"},
		[]core.Edge{
			{From: "1", To: "2"},
			{From: "2", To: "3"},
		},
	)
	require.NoError(t, err)

	return g
}

// lineGraph wraps lineCore in a façade guarded by f.
func lineGraph(t *testing.T, f constraint.Factory) *gated.Graph {
	t.Helper()
	g, err := gated.New(lineCore(t), f)
	require.NoError(t, err)

	return g
}

func edge(from, to core.Node) core.Edge { return core.Edge{From: from, To: to} }
