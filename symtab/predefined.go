package symtab

import "subc/types"

// The symbols defining the predefined types.  These are created once and
// shared by every compilation: they are never referenced as identifiers since
// type names are keywords, so nothing ever mutates them.
var (
	IntegerID = newTypeID("int", types.Integer)
	RealID    = newTypeID("real", types.Real)
	CharID    = newTypeID("char", types.Char)
	StringID  = newTypeID("string", types.String)
	BooleanID = newTypeID("bool", types.Boolean)
	VoidID    = newTypeID("void", types.Void)
)

// newTypeID creates the defining symbol of a predefined type.
func newTypeID(name string, typ *types.Type) *Symbol {
	sym := &Symbol{Name: name, Kind: KindType, Type: typ, Slot: -1}
	typ.Ident = sym
	return sym
}

// PrintName is the name of the predefined print routine.
const PrintName = "print"

// Predefine enters the predefined types and routines into the predefined scope
// at the bottom of the stack.
func Predefine(st *Stack) {
	predefScope := st.scopes[0]

	for _, typeID := range []*Symbol{IntegerID, RealID, CharID, StringID, BooleanID, VoidID} {
		predefScope.insert(typeID)
	}

	printID := predefScope.Enter(PrintName, KindFunction)
	printID.Type = types.Void
	printID.RoutineCode = RoutinePrint
}
