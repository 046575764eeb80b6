// Package gated: the suspension guard.
//
// The gate's own rebuilds must call the storage collaborator without
// re-entering constraint checks recursively. withoutChecks scopes the
// per-instance suspension flag across a function call, restoring the prior
// value on every exit path — including error returns — and nests safely.
package gated

// withoutChecks runs fn with constraint checking suspended on g.
// The previous flag value is restored even when fn returns an error.
func (g *Graph) withoutChecks(fn func() error) error {
	prev := g.suspended
	g.suspended = true
	defer func() { g.suspended = prev }()

	return fn()
}

// Suspended reports whether constraint checking is currently bypassed on g.
// Checking code consults this first and short-circuits to an always-Complete
// verdict while it is set.
func (g *Graph) Suspended() bool { return g.suspended }
