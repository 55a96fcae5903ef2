/*
Package noq/main provides an interactive command line tool for the noq
term rewriting language. Users define named rewrite rules, place a term
"on the workbench" and shape it by applying rules step by step, watching
every intermediate form. The tool doubles as a batch processor for noq
source files.

The REPL serves as a sandbox for experiments with equational reasoning
and rule systems; the heavy lifting is done by the packages termr,
noqlang and session of this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noq.repl'.
func tracer() tracing.Trace {
	return tracing.Select("noq.repl")
}
