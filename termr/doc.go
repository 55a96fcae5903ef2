/*
Package termr implements the rewriting core of noq: structural pattern
matching, variable bindings and substitution, and single-step rule
application.

A rewrite rule pairs a head pattern with a body template. Matching a head
against a subject term yields a set of variable bindings; substituting the
bindings into the body yields the rewritten term. Rule.ApplyAll combines
the two into one deterministic, outermost-first rewrite step over a term
tree. Iterating steps to a normal form is deliberately left to the caller,
which keeps termination under the caller's control.

All operations are pure functions over immutable trees (see the root
package noq), so they are safe to use concurrently on independent inputs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noq.termr'.
func tracer() tracing.Trace {
	return tracing.Select("noq.termr")
}
