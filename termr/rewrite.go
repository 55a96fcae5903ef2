package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

import (
	"errors"
	"fmt"

	"github.com/th3l1ghtd3m0n/noq"
)

// ErrFunctorBinding flags a substitution in which a functor name is bound
// to a compound term. A functor position can only receive a plain symbol.
var ErrFunctorBinding = errors.New("expected a symbol in the place of the functor name")

// Substitute replaces every bound variable of a template by the term it is
// bound to and returns the resulting tree. Unbound symbols stay unchanged,
// so an empty bindings map reproduces the template.
//
// Functor names are substitutable too: a rule head may bind f and its body
// rewrite f(x), turning a matched functor into another one. The term bound
// to a functor name must itself be a symbol — a binding to an application
// would have to graft a compound term into a name position, so it is
// reported as ErrFunctorBinding (wrapped with the functor name) instead of
// producing an inconsistent tree.
//
// Substitute never mutates the bindings or the template; the result is a
// fresh tree.
func Substitute(bindings Bindings, template noq.Expr) (noq.Expr, error) {
	switch t := template.(type) {
	case noq.Symbol:
		if bound, ok := bindings[string(t)]; ok {
			return noq.Clone(bound), nil
		}
		return t, nil
	case noq.Application:
		functor := t.Functor
		if bound, ok := bindings[t.Functor]; ok {
			sym, isSymbol := bound.(noq.Symbol)
			if !isSymbol {
				return nil, fmt.Errorf("substituting functor %q by %v: %w", t.Functor, bound, ErrFunctorBinding)
			}
			functor = string(sym)
		}
		args := make([]noq.Expr, len(t.Args))
		for i, arg := range t.Args {
			sub, err := Substitute(bindings, arg)
			if err != nil {
				return nil, err
			}
			args[i] = sub
		}
		return noq.Fun(functor, args...), nil
	}
	return template, nil
}

// --- Rules -----------------------------------------------------------------

// Rule is a rewrite rule: a head pattern and a body template. The symbols
// occurring in the head are the rule's variables; the same symbols in the
// body refer to whatever a match bound them to. Rules are immutable pairs.
type Rule struct {
	Head noq.Expr
	Body noq.Expr
}

// String renders a rule as "head => body".
func (r Rule) String() string {
	return fmt.Sprintf("%v => %v", r.Head, r.Body)
}

// ApplyAll performs a single rewrite step on a term, scanning outermost
// first: if the rule's head matches the whole term, the term is replaced by
// the substituted body, and no deeper subterm is rewritten in the same
// call. Only when the top-level match fails does ApplyAll descend into the
// arguments, each of which is rewritten independently by the same
// algorithm; a symbol without substructure comes back unchanged.
//
// One call is one step, not a normalization: callers wanting a normal form
// repeat the call, and own the termination question this raises. There is
// no "nothing matched anywhere" signal — a step without a match returns a
// tree structurally equal to its input, so callers detect progress by
// comparing trees.
//
// The only error condition is a functor-binding violation during
// substitution, which is passed through unchanged.
func (r Rule) ApplyAll(expr noq.Expr) (noq.Expr, error) {
	if bindings, ok := Match(r.Head, expr); ok {
		rewritten, err := Substitute(bindings, r.Body)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("rewrite %v -> %v", expr, rewritten)
		return rewritten, nil
	}
	switch x := expr.(type) {
	case noq.Application:
		args := make([]noq.Expr, len(x.Args))
		for i, arg := range x.Args {
			sub, err := r.ApplyAll(arg)
			if err != nil {
				return nil, err
			}
			args[i] = sub
		}
		return noq.Fun(x.Functor, args...), nil
	default:
		return expr, nil
	}
}
