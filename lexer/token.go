package lexer

import "fmt"

// --- Source locations ------------------------------------------------------

// Loc is a position within an input source: a zero-based row and column,
// plus the path of the file the input came from, if known.
type Loc struct {
	FilePath string
	Row      int
	Col      int
}

// String renders a location as "file:row:col", or just "row:col" when no
// file path is known.
func (l Loc) String() string {
	if l.FilePath == "" {
		return fmt.Sprintf("%d:%d", l.Row, l.Col)
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.Row, l.Col)
}

// --- Token kinds -----------------------------------------------------------

// TokenKind classifies the tokens of the rule language.
type TokenKind int

// The token kinds produced by a Lexer.
const (
	Sym TokenKind = iota
	// Keywords
	Rule
	Shape
	Apply
	Done
	// Special characters
	OpenParen
	CloseParen
	Comma
	Equals
	Colon
	// Terminators
	Invalid
	End
)

var keywords = map[string]TokenKind{
	"rule":  Rule,
	"shape": Shape,
	"apply": Apply,
	"done":  Done,
}

// KeywordByName looks up the token kind for a keyword lexeme. The second
// return value is false if text is not a keyword of the rule language.
func KeywordByName(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

// String returns a human-readable name for a token kind, as used in
// diagnostics.
func (kind TokenKind) String() string {
	switch kind {
	case Sym:
		return "symbol"
	case Rule:
		return "rule keyword"
	case Shape:
		return "shape keyword"
	case Apply:
		return "apply keyword"
	case Done:
		return "done keyword"
	case OpenParen:
		return "open paren"
	case CloseParen:
		return "close paren"
	case Comma:
		return "comma"
	case Equals:
		return "equals"
	case Colon:
		return "colon"
	case Invalid:
		return "invalid token"
	case End:
		return "end of input"
	}
	return fmt.Sprintf("token kind %d", int(kind))
}

// --- Tokens ----------------------------------------------------------------

// Token is one lexical token: its kind, the exact source text it was
// scanned from, and the location of its first character. Tokens are
// immutable value types; all mutable scan state lives in the Lexer.
type Token struct {
	Kind TokenKind
	Text string
	Loc  Loc
}

func (t Token) String() string {
	return fmt.Sprintf("%s (%q)", t.Kind, t.Text)
}
