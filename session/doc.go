/*
Package session holds the mutable state of a noq run: the registry of
named rewrite rules and the shaping workbench, i.e. the term currently
being transformed by successive rule applications.

A session moves through a small lifecycle. Rules may be defined at any
time. StartShaping places a term on the workbench; Apply rewrites it one
step at a time, reporting whether the step changed the term and whether
the resulting shape has been visited before; Undo rewinds the last
effective step; Done takes the term off the workbench and returns its
final form. The session itself performs no I/O — rendering shapes and
diagnostics is the concern of package cmd/noq.

Sessions are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The noq authors

*/
package session

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'noq.session'.
func tracer() tracing.Trace {
	return tracing.Select("noq.session")
}
