package termr

import (
	"github.com/th3l1ghtd3m0n/noq"
)

// Bindings maps pattern-variable names to the subterms they matched. A
// bindings map is created fresh by every match attempt, is owned by that
// attempt, and has no meaningful iteration order.
type Bindings map[string]noq.Expr

// Match matches a pattern against a subject term, depth-first and without
// backtracking. On success it returns the bindings accumulated during the
// match; on failure it returns (nil, false), and no partially accumulated
// bindings leak to the caller.
//
// Every symbol in the pattern is a bindable variable — the rule language
// has no syntax that marks a symbol as a literal constant. A symbol that is
// already bound matches only a subject structurally equal to its current
// binding, so repeated occurrences of one variable enforce equality across
// all positions it matched. An application pattern matches an application
// subject with the same functor name and the same arity, argument by
// argument from left to right; the first failing argument fails the whole
// match. Match failure is an expected outcome, not an error.
func Match(pattern, subject noq.Expr) (Bindings, bool) {
	bindings := make(Bindings)
	if !matchTerm(pattern, subject, bindings) {
		tracer().Debugf("no match: %v ~ %v", pattern, subject)
		return nil, false
	}
	tracer().Debugf("match %v ~ %v with %d binding(s)", pattern, subject, len(bindings))
	return bindings, true
}

func matchTerm(pattern, subject noq.Expr, bindings Bindings) bool {
	switch p := pattern.(type) {
	case noq.Symbol:
		if bound, ok := bindings[string(p)]; ok {
			return noq.Equal(bound, subject)
		}
		bindings[string(p)] = noq.Clone(subject)
		return true
	case noq.Application:
		s, ok := subject.(noq.Application)
		if !ok || p.Functor != s.Functor || len(p.Args) != len(s.Args) {
			return false
		}
		for i := range p.Args {
			if !matchTerm(p.Args[i], s.Args[i], bindings) {
				return false
			}
		}
		return true
	}
	return false
}
