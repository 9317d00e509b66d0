/*
Package domdbg implements helpers to debug a domtree.Tree by rendering
it as an indented text tree, which needs no external toolchain and is
useful from a test failure message or a REPL.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package domdbg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.domdbg")
}
