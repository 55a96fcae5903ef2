/*
Package lexer implements the tokenizer for the noq rule language.

The lexer turns source text into a lazy stream of classified tokens:
symbols, the keywords of the rule language, single-character punctuation,
and two terminator kinds. Every token carries the source location of its
first character, tracked as zero-based row/column counters.

The stream is pull-based and finite. An unrecognized character is reported
as a single Invalid token, after which the lexer permanently stops — not
even well-formed input after the offending character is tokenized. The end
of the input is reported as a single End token. Clients that need language
structure on top of the token stream use package noqlang.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noq.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("noq.lexer")
}
