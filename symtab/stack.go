package symtab

import "subc/report"

// Stack is the stack of scopes visible at the current point of analysis.  The
// bottom scope holds the predefined identifiers and the one directly above it
// is the global scope of the program.  Exactly one scope, the top, is active.
type Stack struct {
	scopes []*Scope

	// The symbol of the program being analyzed.
	ProgramID *Symbol
}

// NewStack creates a new scope stack containing only the predefined scope.
func NewStack() *Stack {
	return &Stack{scopes: []*Scope{NewScope(0)}}
}

// NestingLevel returns the nesting level of the active scope.
func (st *Stack) NestingLevel() int {
	return len(st.scopes) - 1
}

// Local returns the active scope.
func (st *Stack) Local() *Scope {
	return st.scopes[len(st.scopes)-1]
}

// Push creates a new scope nested inside the active scope, makes it active,
// and returns it.
func (st *Stack) Push() *Scope {
	scope := NewScope(len(st.scopes))
	st.scopes = append(st.scopes, scope)
	return scope
}

// Pop removes the active scope.  The predefined and global scopes can never be
// popped.
func (st *Stack) Pop() *Scope {
	if len(st.scopes) <= 2 {
		report.ReportICE("attempted to pop scope at nesting level %d", st.NestingLevel())
	}

	scope := st.Local()
	st.scopes = st.scopes[:len(st.scopes)-1]
	return scope
}

// EnterLocal creates a new symbol in the active scope.
func (st *Stack) EnterLocal(name string, kind Kind) *Symbol {
	return st.Local().Enter(name, kind)
}

// LookupLocal looks up a name in the active scope only.
func (st *Stack) LookupLocal(name string) (*Symbol, bool) {
	return st.Local().Lookup(name)
}

// Lookup looks up a name in every visible scope, innermost first.
func (st *Stack) Lookup(name string) (*Symbol, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i].Lookup(name); ok {
			return sym, true
		}
	}

	return nil, false
}

// Global returns the global scope of the program, or nil if the program
// scope has not been pushed yet.
func (st *Stack) Global() *Scope {
	if len(st.scopes) < 2 {
		return nil
	}

	return st.scopes[1]
}
