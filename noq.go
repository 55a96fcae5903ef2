package noq

import (
	"fmt"
	"strings"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

// --- Expressions -----------------------------------------------------------

// Expr is a symbolic term: either an atomic Symbol or an Application of a
// functor name to an ordered sequence of argument terms.
//
// Expr values are immutable once constructed. Every transformation in this
// module (substitution, rewriting) produces a new tree and leaves its input
// untouched, so expressions may be shared freely between goroutines.
type Expr interface {
	fmt.Stringer
	isExpr() // Symbol and Application are the only variants
}

// Symbol is an atomic name, e.g. 'a' or 'pair'. Symbols do double duty:
// within a subject term a symbol is just a constant, within a rule head it
// acts as a pattern variable (see package termr).
type Symbol string

// Application is a function application: a functor name applied to an
// ordered sequence of zero or more argument terms. The arity of an
// application is len(Args). An application owns its arguments outright;
// argument trees are never shared between expressions.
type Application struct {
	Functor string
	Args    []Expr
}

var _ Expr = Symbol("")
var _ Expr = Application{}

// Sym creates a symbol expression.
func Sym(name string) Symbol {
	return Symbol(name)
}

// Fun creates a function application of a functor to the given arguments.
func Fun(functor string, args ...Expr) Application {
	return Application{Functor: functor, Args: args}
}

func (s Symbol) isExpr()      {}
func (a Application) isExpr() {}

// String returns the symbol's name.
func (s Symbol) String() string {
	return string(s)
}

// Arity returns the number of arguments of an application.
func (a Application) Arity() int {
	return len(a.Args)
}

// String renders an application in the canonical display form
//
//	functor(arg1, arg2, …)
//
// with ", " separating the arguments. This is the form all diagnostics and
// the command line tool print.
func (a Application) String() string {
	var b strings.Builder
	b.WriteString(a.Functor)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

// --- Structural operations -------------------------------------------------

// Equal compares two expressions structurally: same variant, same name, and
// for applications the same arity with pairwise equal arguments in order.
// There is no normalization of any kind; pair(a, b) and pair(b, a) are not
// equal.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case Application:
		y, ok := b.(Application)
		if !ok || x.Functor != y.Functor || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of an expression. The copy shares no argument
// slices with the original, so either tree may be handed off independently.
func Clone(e Expr) Expr {
	switch x := e.(type) {
	case Application:
		args := make([]Expr, len(x.Args))
		for i, arg := range x.Args {
			args[i] = Clone(arg)
		}
		return Application{Functor: x.Functor, Args: args}
	default:
		return e
	}
}
