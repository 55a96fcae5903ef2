/*
Package noq implements a small term rewriting engine.

noq represents symbolic expressions as trees of named symbols and
function applications, matches structural patterns against them, and
rewrites matched subexpressions according to user-defined rules. It is
meant as a small, inspectable symbolic-manipulation language, not as a
general programming language. Package structure is as follows:

■ termr: Package termr implements the rewriting core: structural pattern
matching, variable bindings and substitution, and single-step rule
application.

■ lexer: Package lexer implements the tokenizer for the noq rule
language, with source-location tracking.

■ noqlang: Package noqlang implements a recursive-descent parser turning
the token stream into expressions, rules and statements.

■ session: Package session provides the interpreter state for a noq run:
a registry of named rules and the shaping state of the expression
currently being rewritten.

■ cmd/noq: an interactive command line tool and batch interpreter on top
of the above.

The base package contains the expression model, which is used throughout
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package noq
