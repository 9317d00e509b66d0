/*
Package atom interns byte strings into small, stable 32-bit identifiers.

Every string encountered while building a document tree or compiling a
selector — tag names, id and class names, attribute names and values —
passes through exactly one atom table and comes out the other side as an
AtomId: a small unsigned integer that is cheap to compare, cheap to hash
again, and cheap to pack into bytecode operands.

The table is an open-chaining hash table over a single append-only byte
arena: entries never move once inserted, so an AtomId remains valid and
its associated bytes remain stable for the lifetime of the table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package atom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.atom'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.atom")
}
