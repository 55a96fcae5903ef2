package noqlang

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
	"github.com/th3l1ghtd3m0n/noq/lexer"
	"github.com/th3l1ghtd3m0n/noq/termr"
)

// --- Grammar ---------------------------------------------------------------
//
// Expr      ::=  sym                            // a
// Expr      ::=  sym '(' Args ')'               // pair(a, b)
// Args      ::=  [ Expr { ',' Expr } ]
// RuleStm   ::=  'rule' sym [':'] Expr '=' Expr
// ShapeStm  ::=  'shape' Expr
// ApplyStm  ::=  'apply' sym
// ApplyStm  ::=  'apply' 'rule' Expr '=' Expr   // anonymous rule
// DoneStm   ::=  'done'
// Program   ::=  { Stm } End
//
// The colon after a rule name is an optional separator; both
// "rule swap : l = r" and "rule swap l = r" are accepted.

// TokenSource is a pull-based supplier of tokens. *lexer.Lexer satisfies
// it; tests may substitute their own source.
type TokenSource interface {
	Next() (lexer.Token, bool)
}

var _ TokenSource = (*lexer.Lexer)(nil)

// ErrEndOfInput is the sentinel returned by ParseStmt when the token
// stream has reached its end marker cleanly.
var ErrEndOfInput = errors.New("end of input")

// SyntaxError reports a parse failure, carrying the location of the
// offending token.
type SyntaxError struct {
	Loc lexer.Loc
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Loc, e.Msg)
}

// unexpected builds the syntax error for an unexpected lookahead token.
// An Invalid token gets a lexical diagnostic instead of an expectation
// message.
func unexpected(tok lexer.Token, expected string) error {
	if tok.Kind == lexer.Invalid {
		return &SyntaxError{Loc: tok.Loc, Msg: fmt.Sprintf("invalid input %q", tok.Text)}
	}
	return &SyntaxError{Loc: tok.Loc, Msg: fmt.Sprintf("expected %s, got %s (%q)", expected, tok.Kind, tok.Text)}
}

// --- Statements ------------------------------------------------------------

// Stmt is a statement of the rule language: one of RuleStmt, ShapeStmt,
// ApplyStmt and DoneStmt.
type Stmt interface {
	stmtNode()
}

// RuleStmt defines a named rewrite rule.
type RuleStmt struct {
	Name string
	Rule termr.Rule
}

// ShapeStmt starts shaping an expression.
type ShapeStmt struct {
	Shape noq.Expr
}

// ApplyStmt applies one rewrite step to the shape currently being shaped.
// The rule is either referenced by name or given inline as an anonymous
// rule.
type ApplyStmt struct {
	RuleName string      // named form:     apply swap
	Rule     *termr.Rule // anonymous form: apply rule head = body
}

// DoneStmt finishes shaping.
type DoneStmt struct{}

func (RuleStmt) stmtNode()  {}
func (ShapeStmt) stmtNode() {}
func (ApplyStmt) stmtNode() {}
func (DoneStmt) stmtNode()  {}

// --- Parser ----------------------------------------------------------------

// Parser is a recursive-descent parser over a token source, with one token
// of lookahead.
type Parser struct {
	src TokenSource
	tok lexer.Token // lookahead
}

// NewParser creates a parser reading from a token source.
func NewParser(src TokenSource) *Parser {
	p := &Parser{src: src}
	tok, ok := src.Next()
	if !ok {
		tok = lexer.Token{Kind: lexer.End}
	}
	p.tok = tok
	return p
}

// peek returns the current lookahead token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.tok
}

// next consumes and returns the current lookahead token.
func (p *Parser) next() lexer.Token {
	tok := p.tok
	p.advance()
	return tok
}

// advance pulls the next token into the lookahead. The terminator tokens
// are sticky: once the lookahead is End or Invalid it stays there, since
// the source produces nothing after them.
func (p *Parser) advance() {
	if p.tok.Kind == lexer.End || p.tok.Kind == lexer.Invalid {
		return
	}
	tok, ok := p.src.Next()
	if !ok {
		tok = lexer.Token{Kind: lexer.End, Loc: p.tok.Loc}
	}
	p.tok = tok
}

// expect consumes the lookahead if it has the wanted kind and reports a
// syntax error otherwise.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, unexpected(tok, kind.String())
	}
	p.advance()
	return tok, nil
}

// ParseExpr parses a term: a symbol, optionally applied to a
// parenthesized, comma-separated argument list.
func (p *Parser) ParseExpr() (noq.Expr, error) {
	name, err := p.expect(lexer.Sym)
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != lexer.OpenParen {
		return noq.Sym(name.Text), nil
	}
	p.next() // consume '('
	var args []noq.Expr
	if p.peek().Kind != lexer.CloseParen {
		for {
			arg, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().Kind != lexer.Comma {
				break
			}
			p.next()
		}
	}
	if _, err := p.expect(lexer.CloseParen); err != nil {
		return nil, err
	}
	return noq.Fun(name.Text, args...), nil
}

// ParseRule parses "head = body".
func (p *Parser) ParseRule() (termr.Rule, error) {
	head, err := p.ParseExpr()
	if err != nil {
		return termr.Rule{}, err
	}
	if _, err := p.expect(lexer.Equals); err != nil {
		return termr.Rule{}, err
	}
	body, err := p.ParseExpr()
	if err != nil {
		return termr.Rule{}, err
	}
	return termr.Rule{Head: head, Body: body}, nil
}

// ParseStmt parses a single statement. At the end of the token stream it
// returns ErrEndOfInput.
func (p *Parser) ParseStmt() (Stmt, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.Rule:
		p.next()
		name, err := p.expect(lexer.Sym)
		if err != nil {
			return nil, err
		}
		if p.peek().Kind == lexer.Colon { // optional separator after the rule name
			p.next()
		}
		rule, err := p.ParseRule()
		if err != nil {
			return nil, err
		}
		tracer().Debugf("parsed rule %s: %v", name.Text, rule)
		return RuleStmt{Name: name.Text, Rule: rule}, nil
	case lexer.Shape:
		p.next()
		shape, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		tracer().Debugf("parsed shape %v", shape)
		return ShapeStmt{Shape: shape}, nil
	case lexer.Apply:
		p.next()
		if p.peek().Kind == lexer.Rule {
			p.next()
			rule, err := p.ParseRule()
			if err != nil {
				return nil, err
			}
			return ApplyStmt{Rule: &rule}, nil
		}
		name, err := p.expect(lexer.Sym)
		if err != nil {
			return nil, err
		}
		return ApplyStmt{RuleName: name.Text}, nil
	case lexer.Done:
		p.next()
		return DoneStmt{}, nil
	case lexer.End:
		return nil, ErrEndOfInput
	}
	return nil, unexpected(tok, "a statement")
}

// ParseProgram parses statements up to the end of the input.
func (p *Parser) ParseProgram() ([]Stmt, error) {
	var stmts []Stmt
	for {
		stmt, err := p.ParseStmt()
		if errors.Is(err, ErrEndOfInput) {
			return stmts, nil
		}
		if err != nil {
			return stmts, err
		}
		stmts = append(stmts, stmt)
	}
}

// Parse tokenizes and parses an input string into a statement program.
func Parse(input string) ([]Stmt, error) {
	return NewParser(lexer.New(input)).ParseProgram()
}
