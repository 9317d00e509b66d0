/*
Package domtree implements the flat, structure-of-arrays document tree
the matching VM runs against.

Every node is an integer index into a set of parallel slices — there are
no pointers between nodes by construction. Cache density and trivial
serialization are worth resisting the temptation to replace indices with
typed references. Index 0 is always a synthetic document node and is
never a legal match target.

The tree is append-only for the lifetime of one matching session: nodes,
classes, attributes and text bytes are all written once into flat,
growable stores and never relocated logically (only the backing slice's
address may move on growth, the way append always works in Go).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package domtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.domtree'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.domtree")
}
