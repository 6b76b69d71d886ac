package symtab

import (
	"subc/ast"
	"subc/types"
)

// Kind enumerates the different kinds of symbols.
type Kind int

// Enumeration of symbol kinds.
const (
	KindUndefined Kind = iota
	KindProgram
	KindFunction
	KindVariable
	KindValueParameter
	KindConstant
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindFunction:
		return "function"
	case KindVariable:
		return "variable"
	case KindValueParameter:
		return "value parameter"
	case KindConstant:
		return "constant"
	case KindType:
		return "type"
	default:
		return "undefined"
	}
}

// RoutineCode identifies how a routine is implemented.
type RoutineCode int

// Enumeration of routine codes.
const (
	// RoutineDeclared is a routine defined in the source program.
	RoutineDeclared RoutineCode = iota

	// RoutinePrint is the predefined formatted print routine.
	RoutinePrint
)

// Symbol is the compile-time record of a single declared name.  Symbols are
// created once during semantic analysis and are never deleted.
type Symbol struct {
	// The name of the symbol as it was declared.  Lookups are performed on
	// the lowercase form of the name.
	Name string

	// The kind of the symbol.
	Kind Kind

	// The resolved type of the symbol.  For routines, this is the return type.
	Type *types.Type

	// The value of a constant symbol.
	Value interface{}

	// The scope that declared the symbol.  This is nil for the predefined
	// type symbols which are shared between all compilations.
	Scope *Scope

	// The ordered parameters of a routine.
	Params []*Symbol

	// The scope containing the parameters and locals of a routine (or the
	// globals of a program).
	RoutineScope *Scope

	// How a routine is implemented.
	RoutineCode RoutineCode

	// The body of a declared routine.
	Executable *ast.Block

	// The variable holding the return value of a routine.
	ReturnVar *Symbol

	// The local variable slot of the symbol.  This is -1 if the symbol has no
	// slot: eg. globals are stored in static fields instead.
	Slot int

	// The one-indexed source lines on which the symbol was declared or
	// referenced.
	LineNumbers []int
}

// Identifier returns the declared name of the symbol.
func (s *Symbol) Identifier() string {
	return s.Name
}

// AppendLineNumber records a line on which the symbol is referenced.
func (s *Symbol) AppendLineNumber(line int) {
	s.LineNumbers = append(s.LineNumbers, line)
}

// HasSlot returns whether the symbol is stored in a local variable slot.
func (s *Symbol) HasSlot() bool {
	return s.Slot >= 0
}

// IsRoutine returns whether the symbol names a routine.
func (s *Symbol) IsRoutine() bool {
	return s.Kind == KindFunction
}

// IsStorage returns whether the symbol denotes runtime storage: a variable or
// a parameter.
func (s *Symbol) IsStorage() bool {
	return s.Kind == KindVariable || s.Kind == KindValueParameter
}
