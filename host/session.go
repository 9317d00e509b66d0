package host

import (
	"github.com/kestrelcss/engine/atom"
	"github.com/kestrelcss/engine/domtree"
	"github.com/kestrelcss/engine/selector"
	"github.com/kestrelcss/engine/vm"
)

// Session holds everything one embedding needs: an atom table, the
// document tree built against it, and every selector compiled so far.
// This is the "explicit handle passed by the host" form; the
// package-level Engine* functions in abi.go wrap a single default Session
// for parity with the documented WebAssembly boundary, which is
// necessarily a global, single-session surface.
type Session struct {
	table    *atom.Table
	tree     *domtree.Tree
	programs []*selector.Program
}

// NewSession creates a session with a fresh atom table and an empty
// tree.
func NewSession() *Session {
	s := &Session{table: atom.NewTable()}
	s.tree = domtree.NewTree(s.table)
	return s
}

// CreateDom discards the session's current tree and starts a new, empty
// one against the same atom table (atoms are not session-scoped; string
// identity is meant to survive a DOM reset).
func (s *Session) CreateDom() {
	s.tree = domtree.NewTree(s.table)
	tracer().Debugf("host: session dom reset")
}

// InternString interns b and returns its AtomId, or -1 if b exceeds the
// maximum atom length.
func (s *Session) InternString(b []byte) int64 {
	id, err := s.table.Intern(b)
	if err != nil {
		tracer().Infof("host: intern failed: %v", err)
		return -1
	}
	return int64(id)
}

// AddNode creates an element node with the given tag atom under parent
// (domtree.NoNode for a top-level element) and returns its NodeID.
func (s *Session) AddNode(tagAtom uint32, parent uint32) int64 {
	node := s.tree.CreateElement(atom.AtomId(tagAtom), domtree.NodeID(parent))
	return int64(node)
}

// CreateTextNode creates a text node under parent and returns its
// NodeID.
func (s *Session) CreateTextNode(parent uint32, text []byte) int64 {
	node := s.tree.CreateText(domtree.NodeID(parent), text)
	return int64(node)
}

// SetID sets node's id attribute.
func (s *Session) SetID(node uint32, idAtom uint32) {
	s.tree.SetID(domtree.NodeID(node), atom.AtomId(idAtom))
}

// SetClasses sets node's class list, returning -1 if it exceeds the
// per-node class limit and 0 on success.
func (s *Session) SetClasses(node uint32, classAtoms []uint32) int32 {
	classes := make([]atom.AtomId, len(classAtoms))
	for i, c := range classAtoms {
		classes[i] = atom.AtomId(c)
	}
	if err := s.tree.SetClasses(domtree.NodeID(node), classes); err != nil {
		tracer().Infof("host: set_classes failed: %v", err)
		return -1
	}
	return 0
}

// AddAttribute appends an attribute to node.
func (s *Session) AddAttribute(node uint32, nameAtom uint32, value []byte) {
	s.tree.AddAttribute(domtree.NodeID(node), atom.AtomId(nameAtom), value)
}

// CompileSelector compiles src and returns its session-scoped selector
// index, or -1 on a malformed selector.
func (s *Session) CompileSelector(src []byte) int64 {
	prog, diags, err := selector.Compile(s.table, string(src))
	if err != nil {
		tracer().Infof("host: compile_selector failed: %v", err)
		return -1
	}
	for _, d := range diags {
		tracer().Infof("host: compile_selector diagnostic: %s", d.Message)
	}
	s.programs = append(s.programs, prog)
	return int64(len(s.programs) - 1)
}

// MatchSelector reports whether the compiled selector at selIdx matches
// node: 1 for a match, 0 for no match, -1 if selIdx is out of range.
func (s *Session) MatchSelector(selIdx int64, node uint32) int32 {
	if selIdx < 0 || int(selIdx) >= len(s.programs) {
		return -1
	}
	if vm.Execute(s.programs[selIdx], s.table, s.tree, domtree.NodeID(node)) {
		return 1
	}
	return 0
}

// Table exposes the session's atom table for callers building a tree
// outside the ABI surface (e.g. package htmlload).
func (s *Session) Table() *atom.Table { return s.table }

// Tree exposes the session's document tree.
func (s *Session) Tree() *domtree.Tree { return s.tree }
