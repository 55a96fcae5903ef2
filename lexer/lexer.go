package lexer

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/

import (
	"unicode"
	"unicode/utf8"
)

// Lexer is a pull-based tokenizer over a fixed input string. It produces
// tokens lazily, one per call to Next, and holds the only mutable state of
// the scan: the cursor position, the line/column counters and the
// exhaustion flag.
//
// The token stream is finite and non-restartable. After the End token — or
// after the first Invalid token — the lexer is exhausted and produces no
// further tokens, even if input remains.
type Lexer struct {
	input     string
	pos       int    // byte offset of the scan cursor into input
	filePath  string // optional source name, recorded in token locations
	lnum      int    // current row, zero-based
	bol       int    // rune count at the beginning of the current line
	cnum      int    // runes consumed so far
	exhausted bool
}

// New creates a Lexer over an input string. Reading the input from a file
// or a stream beforehand is the caller's concern.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// SetFilePath sets the file path recorded in the locations of all tokens
// produced from now on.
func (lx *Lexer) SetFilePath(path string) {
	lx.filePath = path
}

// loc returns the location of the scan cursor.
func (lx *Lexer) loc() Loc {
	return Loc{
		FilePath: lx.filePath,
		Row:      lx.lnum,
		Col:      lx.cnum - lx.bol,
	}
}

// peek returns the rune under the cursor without consuming it.
func (lx *Lexer) peek() (rune, bool) {
	if lx.pos >= len(lx.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(lx.input[lx.pos:])
	return r, true
}

// advance consumes the rune under the cursor.
func (lx *Lexer) advance() {
	_, size := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += size
	lx.cnum++
}

// Next returns the next token of the stream. The second return value is
// false once the lexer is exhausted.
//
// A token's location marks the token's first character, i.e. it is computed
// before any of the token's characters are consumed.
func (lx *Lexer) Next() (Token, bool) {
	if lx.exhausted {
		return Token{}, false
	}
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		lx.advance()
		if r == '\n' {
			lx.lnum++
			lx.bol = lx.cnum
		}
	}
	loc := lx.loc()
	r, ok := lx.peek()
	if !ok {
		lx.exhausted = true
		tracer().Debugf("lexer reached end of input")
		return Token{Kind: End, Loc: loc}, true
	}
	start := lx.pos
	lx.advance()
	if kind, isPunct := punctKind(r); isPunct {
		return Token{Kind: kind, Text: lx.input[start:lx.pos], Loc: loc}, true
	}
	if !isAlphanumeric(r) {
		lx.exhausted = true
		tracer().Debugf("invalid character %q at %v, lexer exhausted", r, loc)
		return Token{Kind: Invalid, Text: lx.input[start:lx.pos], Loc: loc}, true
	}
	for {
		r, ok := lx.peek()
		if !ok || !isAlphanumeric(r) {
			break
		}
		lx.advance()
	}
	text := lx.input[start:lx.pos]
	if kind, isKeyword := KeywordByName(text); isKeyword {
		return Token{Kind: kind, Text: text, Loc: loc}, true
	}
	return Token{Kind: Sym, Text: text, Loc: loc}, true
}

// punctKind maps a single special character to its token kind.
func punctKind(r rune) (TokenKind, bool) {
	switch r {
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	case ',':
		return Comma, true
	case '=':
		return Equals, true
	case ':':
		return Colon, true
	}
	return 0, false
}

// isAlphanumeric reports whether r is a letter or a number. Symbols of the
// rule language are runs of such runes.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
