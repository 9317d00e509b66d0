/*
Package host implements the embedding boundary: an explicit Session
handle type, and a package-level default session plus flat,
integer-oriented functions (EngineInit, EngineCreateDom, ...) matching
the C-ABI surface a WebAssembly or native host would call.

Every function follows the same return convention as the boundary it
mirrors: non-negative on success (an id or a boolean 0/1), -1 on error.
Byte buffers are ordinary Go []byte rather than (ptr, len) pairs — the
ABI-level marshaling of a real cgo/wasm export belongs to the binding
generator, not to this package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package host

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.host'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.host")
}
