package host

// defaultSession backs the package-level Engine* functions, mirroring
// the single global session the WebAssembly embedding boundary exposes.
var defaultSession *Session

// EngineInit creates the global session. Returns 0 on success.
func EngineInit() int32 {
	defaultSession = NewSession()
	return 0
}

// EngineCreateDom resets the global session's tree. Returns 0 on
// success, -1 if the session was never initialized.
func EngineCreateDom() int32 {
	if defaultSession == nil {
		return -1
	}
	defaultSession.CreateDom()
	return 0
}

// EngineInternString interns b in the global session and returns its
// AtomId, or -1 on failure or an uninitialized session.
func EngineInternString(b []byte) int64 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.InternString(b)
}

// EngineAddNode creates an element node in the global session and
// returns its NodeId, or -1 if the session was never initialized.
func EngineAddNode(tagAtom uint32, parent uint32) int64 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.AddNode(tagAtom, parent)
}

// EngineCreateTextNode creates a text node in the global session.
func EngineCreateTextNode(parent uint32, text []byte) int64 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.CreateTextNode(parent, text)
}

// EngineSetID sets a node's id attribute in the global session.
func EngineSetID(node uint32, idAtom uint32) int32 {
	if defaultSession == nil {
		return -1
	}
	defaultSession.SetID(node, idAtom)
	return 0
}

// EngineSetClasses sets a node's classes in the global session.
func EngineSetClasses(node uint32, classAtoms []uint32) int32 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.SetClasses(node, classAtoms)
}

// EngineAddAttribute appends an attribute to a node in the global
// session.
func EngineAddAttribute(node uint32, nameAtom uint32, value []byte) int32 {
	if defaultSession == nil {
		return -1
	}
	defaultSession.AddAttribute(node, nameAtom, value)
	return 0
}

// EngineCompileSelector compiles src in the global session and returns
// its selector index, or -1 on error.
func EngineCompileSelector(src []byte) int64 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.CompileSelector(src)
}

// EngineMatchSelector matches the compiled selector at selIdx against
// node in the global session: 1, 0, or -1.
func EngineMatchSelector(selIdx int64, node uint32) int32 {
	if defaultSession == nil {
		return -1
	}
	return defaultSession.MatchSelector(selIdx, node)
}
