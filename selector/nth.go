package selector

import (
	"fmt"
	"strconv"
	"strings"
)

// NthFormula holds the parsed An+B coefficients for :nth-child and
// :nth-last-child. A node at 1-based position p (counting only element
// siblings) matches when p = A*n + B for some integer n >= 0.
type NthFormula struct {
	A, B int16
}

// Matches reports whether 1-based position p satisfies f's An+B formula.
func (f NthFormula) Matches(p int) bool {
	if f.A == 0 {
		return p == int(f.B)
	}
	// p = A*n + B  =>  n = (p - B) / A, must be a non-negative integer.
	diff := p - int(f.B)
	a := int(f.A)
	if diff%a != 0 {
		return false
	}
	n := diff / a
	return n >= 0
}

// parseNth parses the textual argument of :nth-child()/:nth-last-child(),
// accepting the keywords "odd" and "even", a bare signed integer, or the
// general "An+B" form (e.g. "2n", "2n+1", "-n+3", "n", "-n", "3n-2"),
// with optional whitespace around the sign. It never panics on malformed
// input — it returns an error instead, since the text comes from the
// selector source and is not trusted.
func parseNth(arg string) (NthFormula, error) {
	s := strings.TrimSpace(arg)
	lower := strings.ToLower(s)

	switch lower {
	case "odd":
		return NthFormula{A: 2, B: 1}, nil
	case "even":
		return NthFormula{A: 2, B: 0}, nil
	}

	idx := strings.IndexByte(lower, 'n')
	if idx < 0 {
		// Bare integer: An+B with A=0.
		n, err := strconv.Atoi(strings.ReplaceAll(s, " ", ""))
		if err != nil {
			return NthFormula{}, fmt.Errorf("selector: invalid nth-child argument %q", arg)
		}
		return NthFormula{A: 0, B: int16(n)}, nil
	}

	aPart := strings.TrimSpace(lower[:idx])
	a, err := parseCoefficient(aPart)
	if err != nil {
		return NthFormula{}, fmt.Errorf("selector: invalid nth-child argument %q: %w", arg, err)
	}

	bPart := strings.TrimSpace(lower[idx+1:])
	bPart = strings.ReplaceAll(bPart, " ", "")
	if bPart == "" {
		return NthFormula{A: a, B: 0}, nil
	}
	// Normalize a leading "+" that strconv.Atoi already accepts, then parse.
	b, err := strconv.Atoi(bPart)
	if err != nil {
		return NthFormula{}, fmt.Errorf("selector: invalid nth-child argument %q", arg)
	}
	return NthFormula{A: a, B: int16(b)}, nil
}

// parseCoefficient parses the "A" in "An", where the bare forms "n",
// "+n" and "-n" mean 1, 1 and -1 respectively.
func parseCoefficient(s string) (int16, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return int16(n), nil
}
