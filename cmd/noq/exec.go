package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

import (
	"errors"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/th3l1ghtd3m0n/noq/lexer"
	"github.com/th3l1ghtd3m0n/noq/noqlang"
	"github.com/th3l1ghtd3m0n/noq/session"
	"github.com/th3l1ghtd3m0n/noq/termr"
)

// Intp executes parsed noq statements against a session.
type Intp struct {
	session *session.Session
	quiet   bool
}

func newIntp(s *session.Session, quiet bool) *Intp {
	return &Intp{session: s, quiet: quiet}
}

// say prints an informational line, unless quiet mode is on.
func (intp *Intp) say(format string, args ...interface{}) {
	if intp.quiet {
		return
	}
	pterm.Info.Println(fmt.Sprintf(format, args...))
}

// ExecLine parses one line of input and executes its statements. Statements
// preceding a parse error have already been executed when the error is
// returned, matching how users expect a REPL line to behave.
func (intp *Intp) ExecLine(line string) error {
	p := noqlang.NewParser(lexer.New(line))
	for {
		stmt, err := p.ParseStmt()
		if errors.Is(err, noqlang.ErrEndOfInput) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := intp.Execute(stmt); err != nil {
			return err
		}
	}
}

// ExecFile reads, parses and executes a noq source file. The file is parsed
// completely before any statement runs, so a file with a syntax error has
// no effect on the session.
func (intp *Intp) ExecFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	lx := lexer.New(string(data))
	lx.SetFilePath(path)
	stmts, err := noqlang.NewParser(lx).ParseProgram()
	if err != nil {
		return err
	}
	tracer().Infof("loaded %s, %d statements", path, len(stmts))
	for _, stmt := range stmts {
		if err := intp.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs a single statement against the session.
func (intp *Intp) Execute(stmt noqlang.Stmt) error {
	switch s := stmt.(type) {
	case noqlang.RuleStmt:
		if replaced := intp.session.Define(s.Name, s.Rule); replaced {
			pterm.Warning.Println(fmt.Sprintf("rule %s redefined", s.Name))
		}
		intp.say("rule %s: %v", s.Name, s.Rule)
		return nil
	case noqlang.ShapeStmt:
		if err := intp.session.StartShaping(s.Shape); err != nil {
			return err
		}
		intp.say("shaping %v", s.Shape)
		return nil
	case noqlang.ApplyStmt:
		var rule termr.Rule
		if s.Rule != nil {
			rule = *s.Rule
		} else {
			var ok bool
			if rule, ok = intp.session.Resolve(s.RuleName); !ok {
				return fmt.Errorf("unknown rule %s", s.RuleName)
			}
		}
		step, err := intp.session.Apply(rule)
		if err != nil {
			return err
		}
		intp.say("%v", step.Shape)
		if !step.Changed {
			intp.say("no change")
		}
		if step.Cycle {
			pterm.Warning.Println("shape was visited before")
		}
		return nil
	case noqlang.DoneStmt:
		final, err := intp.session.Done()
		if err != nil {
			return err
		}
		intp.say("done: %v", final)
		return nil
	}
	return fmt.Errorf("cannot execute statement %T", stmt)
}
