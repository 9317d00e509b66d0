/*
Package douceuradapter implements cssom.StyleSheet and cssom.Rule on top
of github.com/aymerick/douceur, and extracts embedded <style> elements
from a parsed HTML document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package douceuradapter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.cssom.douceuradapter'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.cssom.douceuradapter")
}
