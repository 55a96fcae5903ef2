package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/th3l1ghtd3m0n/noq"
	"github.com/th3l1ghtd3m0n/noq/session"
)

func quietIntp() *Intp {
	return newIntp(session.New(), true)
}

func TestExecLineDefinesRule(t *testing.T) {
	intp := quietIntp()
	err := intp.ExecLine("rule swap : swap(pair(a, b)) = pair(b, a)")
	require.NoError(t, err)
	rule, ok := intp.session.Resolve("swap")
	require.True(t, ok)
	assert.Equal(t, "swap(pair(a, b)) => pair(b, a)", rule.String())
}

func TestExecLineShapingRoundTrip(t *testing.T) {
	intp := quietIntp()
	require.NoError(t, intp.ExecLine("rule swap : swap(pair(a, b)) = pair(b, a)"))
	require.NoError(t, intp.ExecLine("shape swap(pair(f(c), d))"))
	require.NoError(t, intp.ExecLine("apply swap"))
	cur, ok := intp.session.Current()
	require.True(t, ok)
	assert.True(t, noq.Equal(cur, noq.Fun("pair", noq.Sym("d"), noq.Fun("f", noq.Sym("c")))),
		"shape after apply is %v", cur)
	require.NoError(t, intp.ExecLine("done"))
	assert.False(t, intp.session.Shaping())
}

func TestExecLineApplyAnonymousRule(t *testing.T) {
	intp := quietIntp()
	require.NoError(t, intp.ExecLine("shape f(g(a))"))
	require.NoError(t, intp.ExecLine("apply rule g(x) = h(x)"))
	cur, _ := intp.session.Current()
	assert.True(t, noq.Equal(cur, noq.Fun("f", noq.Fun("h", noq.Sym("a")))),
		"shape after apply is %v", cur)
}

func TestExecLineMultipleStatements(t *testing.T) {
	intp := quietIntp()
	err := intp.ExecLine("rule id : id(x) = x shape id(a) apply id done")
	require.NoError(t, err)
	assert.Equal(t, 1, intp.session.RuleCount())
	assert.False(t, intp.session.Shaping())
}

func TestExecLineUnknownRule(t *testing.T) {
	intp := quietIntp()
	require.NoError(t, intp.ExecLine("shape f(a)"))
	err := intp.ExecLine("apply missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule missing")
}

func TestExecLineApplyWithoutShaping(t *testing.T) {
	intp := quietIntp()
	require.NoError(t, intp.ExecLine("rule id : id(x) = x"))
	err := intp.ExecLine("apply id")
	assert.ErrorIs(t, err, session.ErrNotShaping)
}

func TestExecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap.noq")
	src := `rule swap : swap(pair(a, b)) = pair(b, a)
shape swap(pair(f(c), d))
apply swap
done
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	intp := quietIntp()
	require.NoError(t, intp.ExecFile(path))
	assert.Equal(t, 1, intp.session.RuleCount())
	assert.False(t, intp.session.Shaping())
}

func TestExecFileSyntaxErrorCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.noq")
	require.NoError(t, os.WriteFile(path, []byte("rule swap : swap(pair(a"), 0644))
	intp := quietIntp()
	err := intp.ExecFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path+":0:23")
}

func TestExecFileParsesBeforeExecuting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.noq")
	src := `rule id : id(x) = x
shape ,
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	intp := quietIntp()
	require.Error(t, intp.ExecFile(path))
	// nothing of the broken file may have reached the session
	assert.Equal(t, 0, intp.session.RuleCount())
	assert.False(t, intp.session.Shaping())
}

func TestExecFileMissing(t *testing.T) {
	intp := quietIntp()
	assert.Error(t, intp.ExecFile(filepath.Join(t.TempDir(), "absent.noq")))
}
