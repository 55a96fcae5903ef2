package session

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

import (
	"errors"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/th3l1ghtd3m0n/noq"
	"github.com/th3l1ghtd3m0n/noq/termr"
)

var (
	// ErrAlreadyShaping means StartShaping was called while a term was
	// still on the workbench.
	ErrAlreadyShaping = errors.New("a shaping is already in progress")
	// ErrNotShaping means a workbench operation was called with no term
	// on the workbench.
	ErrNotShaping = errors.New("no shaping in progress")
	// ErrNoHistory means Undo was called with no effective step to rewind.
	ErrNoHistory = errors.New("no step to undo")
)

// Session is the state of a noq run: named rules plus the shaping
// workbench. The zero value is not usable; create sessions with New.
type Session struct {
	rules   *treemap.Map      // rule name ⇒ termr.Rule, ordered by name
	shape   noq.Expr          // term on the workbench, nil outside a shaping
	history *arraystack.Stack // of snapshot, youngest on top
	seen    map[string]bool   // fingerprints of shapes visited in this shaping
}

// snapshot is one undo-stack entry: the workbench term before a step, plus
// the fingerprint that step added to the visited set (empty if none).
type snapshot struct {
	shape noq.Expr
	added string
}

// New creates an empty session with no rules and nothing on the workbench.
func New() *Session {
	return &Session{
		rules:   treemap.NewWithStringComparator(),
		history: arraystack.New(),
	}
}

// --- Rule registry ---------------------------------------------------------

// Define registers a rule under a name. Defining a name again silently
// replaces the earlier rule; the return value reports whether that
// happened, so callers can warn.
func (s *Session) Define(name string, rule termr.Rule) (replaced bool) {
	_, replaced = s.rules.Get(name)
	s.rules.Put(name, rule)
	tracer().Debugf("rule %s defined as %v", name, rule)
	return replaced
}

// Resolve looks up a rule by name.
func (s *Session) Resolve(name string) (termr.Rule, bool) {
	v, ok := s.rules.Get(name)
	if !ok {
		return termr.Rule{}, false
	}
	return v.(termr.Rule), true
}

// Each calls f for every defined rule, in lexicographic name order.
func (s *Session) Each(f func(name string, rule termr.Rule)) {
	s.rules.Each(func(key, value interface{}) {
		f(key.(string), value.(termr.Rule))
	})
}

// RuleCount returns the number of defined rules.
func (s *Session) RuleCount() int {
	return s.rules.Size()
}

// --- Shaping workbench -----------------------------------------------------

// Shaping reports whether a term is currently on the workbench.
func (s *Session) Shaping() bool {
	return s.shape != nil
}

// StartShaping places a term on the workbench and resets the step history
// and the visited set. The term is copied, so later mutations of the
// argument do not reach the session.
func (s *Session) StartShaping(e noq.Expr) error {
	if s.Shaping() {
		return ErrAlreadyShaping
	}
	s.shape = noq.Clone(e)
	s.history = arraystack.New()
	s.seen = map[string]bool{fingerprint(s.shape): true}
	tracer().Debugf("shaping %v", s.shape)
	return nil
}

// Current returns the term on the workbench.
func (s *Session) Current() (noq.Expr, bool) {
	if !s.Shaping() {
		return nil, false
	}
	return s.shape, true
}

// Step describes the outcome of a single rule application.
type Step struct {
	Shape   noq.Expr // the workbench term after the step
	Changed bool     // whether the step rewrote anything
	Cycle   bool     // whether the new shape was already visited in this shaping
}

// Apply performs one rewrite step on the workbench term. A step that
// matches nothing leaves the term as is and reports Changed false. A step
// that fails, i.e. a rule body placing a non-symbol term in functor
// position, leaves the session untouched and returns the error.
func (s *Session) Apply(rule termr.Rule) (Step, error) {
	if !s.Shaping() {
		return Step{}, ErrNotShaping
	}
	next, err := rule.ApplyAll(s.shape)
	if err != nil {
		return Step{}, err
	}
	if noq.Equal(next, s.shape) {
		return Step{Shape: s.shape}, nil
	}
	snap := snapshot{shape: s.shape}
	fp := fingerprint(next)
	cycle := s.seen[fp]
	if !cycle {
		s.seen[fp] = true
		snap.added = fp
	}
	s.history.Push(snap)
	s.shape = next
	tracer().Debugf("step to %v, cycle=%v", next, cycle)
	return Step{Shape: next, Changed: true, Cycle: cycle}, nil
}

// Undo rewinds the most recent effective step, restoring the workbench
// term and the visited set to their state before that step. Steps that
// changed nothing leave no history.
func (s *Session) Undo() (noq.Expr, error) {
	if !s.Shaping() {
		return nil, ErrNotShaping
	}
	v, ok := s.history.Pop()
	if !ok {
		return nil, ErrNoHistory
	}
	snap := v.(snapshot)
	if snap.added != "" {
		delete(s.seen, snap.added)
	}
	s.shape = snap.shape
	tracer().Debugf("undo to %v", s.shape)
	return s.shape, nil
}

// Done takes the term off the workbench and returns its final form. Rules
// defined so far survive; history and visited set do not.
func (s *Session) Done() (noq.Expr, error) {
	if !s.Shaping() {
		return nil, ErrNotShaping
	}
	final := s.shape
	s.shape = nil
	s.history = arraystack.New()
	s.seen = nil
	tracer().Debugf("done, final shape %v", final)
	return final, nil
}

// --- Shape fingerprints ----------------------------------------------------

// shapeDigest is what gets hashed to fingerprint a workbench shape. Hashing
// the canonical rendering rather than the tree keeps structurally equal
// terms on a single fingerprint.
type shapeDigest struct {
	Term string
}

// fingerprint returns a stable content hash for a term.
func fingerprint(e noq.Expr) string {
	return fmt.Sprintf("%x", structhash.Sha1(shapeDigest{Term: e.String()}, 1))
}
