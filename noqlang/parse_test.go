package noqlang

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/th3l1ghtd3m0n/noq"
	"github.com/th3l1ghtd3m0n/noq/lexer"
)

func parseOneStmt(t *testing.T, input string) Stmt {
	t.Helper()
	stmts, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestParseSymbol(t *testing.T) {
	p := NewParser(lexer.New("a"))
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	assert.True(t, noq.Equal(expr, noq.Sym("a")))
}

func TestParseApplication(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noq.lang")
	defer teardown()
	//
	p := NewParser(lexer.New("swap(pair(a, b))"))
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	expected := noq.Fun("swap", noq.Fun("pair", noq.Sym("a"), noq.Sym("b")))
	assert.True(t, noq.Equal(expr, expected), "got %v", expr)
}

func TestParseNullaryApplication(t *testing.T) {
	p := NewParser(lexer.New("f()"))
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	assert.True(t, noq.Equal(expr, noq.Fun("f")), "got %v", expr)
}

func TestParseRule(t *testing.T) {
	p := NewParser(lexer.New("swap(pair(a, b)) = pair(b, a)"))
	rule, err := p.ParseRule()
	require.NoError(t, err)
	assert.Equal(t, "swap(pair(a, b)) => pair(b, a)", rule.String())
}

func TestParseRuleStmt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noq.lang")
	defer teardown()
	//
	for _, input := range []string{
		"rule swap : swap(pair(a, b)) = pair(b, a)",
		"rule swap swap(pair(a, b)) = pair(b, a)", // colon is optional
	} {
		stmt := parseOneStmt(t, input)
		rs, ok := stmt.(RuleStmt)
		require.True(t, ok, "expected a RuleStmt for %q, got %T", input, stmt)
		assert.Equal(t, "swap", rs.Name)
		assert.Equal(t, "swap(pair(a, b)) => pair(b, a)", rs.Rule.String())
	}
}

func TestParseShapeStmt(t *testing.T) {
	stmt := parseOneStmt(t, "shape swap(pair(f(c), d))")
	ss, ok := stmt.(ShapeStmt)
	require.True(t, ok, "expected a ShapeStmt, got %T", stmt)
	assert.Equal(t, "swap(pair(f(c), d))", ss.Shape.String())
}

func TestParseApplyNamed(t *testing.T) {
	stmt := parseOneStmt(t, "apply swap")
	as, ok := stmt.(ApplyStmt)
	require.True(t, ok, "expected an ApplyStmt, got %T", stmt)
	assert.Equal(t, "swap", as.RuleName)
	assert.Nil(t, as.Rule)
}

func TestParseApplyAnonymous(t *testing.T) {
	stmt := parseOneStmt(t, "apply rule f(x) = x")
	as, ok := stmt.(ApplyStmt)
	require.True(t, ok, "expected an ApplyStmt, got %T", stmt)
	require.NotNil(t, as.Rule)
	assert.Empty(t, as.RuleName)
	assert.Equal(t, "f(x) => x", as.Rule.String())
}

func TestParseDone(t *testing.T) {
	stmt := parseOneStmt(t, "done")
	_, ok := stmt.(DoneStmt)
	assert.True(t, ok, "expected a DoneStmt, got %T", stmt)
}

func TestParseProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "noq.lang")
	defer teardown()
	//
	input := `rule swap : swap(pair(a, b)) = pair(b, a)
shape swap(pair(f(c), d))
apply swap
done`
	stmts, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, stmts, 4)
	assert.IsType(t, RuleStmt{}, stmts[0])
	assert.IsType(t, ShapeStmt{}, stmts[1])
	assert.IsType(t, ApplyStmt{}, stmts[2])
	assert.IsType(t, DoneStmt{}, stmts[3])
}

func TestParseEmptyInput(t *testing.T) {
	stmts, err := Parse("  \n ")
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestParseStmtEndSentinel(t *testing.T) {
	p := NewParser(lexer.New(""))
	_, err := p.ParseStmt()
	assert.True(t, errors.Is(err, ErrEndOfInput))
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := Parse("shape pair(a")
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, `0:12: expected close paren, got end of input ("")`, syntaxErr.Error())
}

func TestSyntaxErrorOnKeyword(t *testing.T) {
	_, err := Parse("shape rule")
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Contains(t, syntaxErr.Msg, "expected symbol, got rule keyword")
}

func TestLexicalErrorDiagnostic(t *testing.T) {
	_, err := Parse("shape a + b")
	require.Error(t, err)
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, `invalid input "+"`, syntaxErr.Msg)
	assert.Equal(t, lexer.Loc{Row: 0, Col: 8}, syntaxErr.Loc)
}

func TestStatementsBeforeErrorAreKept(t *testing.T) {
	stmts, err := Parse("shape f(a)\nshape ,")
	require.Error(t, err)
	require.Len(t, stmts, 1)
	assert.IsType(t, ShapeStmt{}, stmts[0])
}
