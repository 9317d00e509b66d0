/*
Package htmlload parses real HTML documents with golang.org/x/net/html
and walks the resulting parse tree, calling domtree.Tree.CreateElement,
CreateText, SetID, SetClasses and AddAttribute to build a flat document
tree interned through the same atom.Table the selector compiler and VM
use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package htmlload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.htmlload'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.htmlload")
}
