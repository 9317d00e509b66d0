/*
Package selector compiles a CSS-like selector dialect into immutable
bytecode programs that package vm executes.

A program is a flat byte slice of one-byte opcodes followed by inline
operands (see bytecode.go for the full opcode table), plus a packed
3-tuple Specificity computed as the bytecode is emitted. Compilation
scans left to right but EMITS right to left, because the VM executes a
selector the way a browser engine does: starting at the candidate node
and walking outward through combinators — see doc comments on Compile.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.selector'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.selector")
}
