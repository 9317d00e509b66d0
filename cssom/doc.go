/*
Package cssom defines the StyleSheet/Rule interfaces for parsed CSS
stylesheets; the parsing itself is done by package douceuradapter. No
code here compiles selector preludes or feeds a cascade/inheritance
engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Kestrel Authors
*/
package cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'kestrel.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("kestrel.cssom")
}
