package selector

import (
	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/result"
)

// Program is one compiled selector: an immutable bytecode sequence plus
// the specificity computed while emitting it. A selector list like
// "a, b.c" compiles to one Program per comma-separated alternative; see
// CompileList.
type Program struct {
	Code        []byte
	Specificity Specificity
	Source      string
}

// Diagnostic is a non-fatal compile-time warning: an unknown
// pseudo-class, or an :nth-child/:nth-last-child argument that does not
// parse, which the compiler skips rather than rejects outright.
// Unsupported attribute syntax is not a Diagnostic; it fails compilation.
type Diagnostic struct {
	Message string
}

// Compile parses and compiles a single selector (no top-level commas)
// into a bytecode Program, interning any tag/id/class/attribute names it
// encounters into table. Diagnostics accumulate for constructs the
// compiler recognized but chose to ignore rather than reject; err is
// non-nil only for malformed selector syntax it cannot recover from.
func Compile(table *atom.Table, src string) (*Program, []Diagnostic, error) {
	c, diags, err := parseChain(src)
	if err != nil {
		return nil, diags, err
	}
	prog, err := emit(table, c, src)
	if err != nil {
		return nil, diags, err
	}
	return prog, diags, nil
}

// CompileList compiles a comma-separated selector list into one Program
// per alternative, in source order.
func CompileList(table *atom.Table, src string) ([]*Program, []Diagnostic, error) {
	chains, diags, err := parseSelectorList(src)
	if err != nil {
		return nil, diags, err
	}
	progs := make([]*Program, 0, len(chains))
	for _, c := range chains {
		prog, err := emit(table, c, src)
		if err != nil {
			return nil, diags, err
		}
		progs = append(progs, prog)
	}
	return progs, diags, nil
}

// CompileResult is Compile wrapped as a single fallible value, for
// callers that would rather match on one Result than juggle three
// return slots.
func CompileResult(table *atom.Table, src string) result.Result[*Program] {
	prog, _, err := Compile(table, src)
	if err != nil {
		return result.Err[*Program](err)
	}
	return result.Ok(prog)
}
