/*
Package noqlang implements the statement language of noq on top of the
core token stream: a recursive-descent parser turning tokens into
expressions, rewrite rules and REPL statements.

The parser consumes any TokenSource — usually a lexer.Lexer — with one
token of lookahead. The rewriting core itself (packages noq and termr)
knows nothing about this language; noqlang is the collaborator that feeds
it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package noqlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noq.lang'.
func tracer() tracing.Trace {
	return tracing.Select("noq.lang")
}
