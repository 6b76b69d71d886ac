package symtab

import (
	"testing"

	"github.com/nalgeon/be"

	"subc/report"
	"subc/types"
)

func newProgramStack() *Stack {
	st := NewStack()
	Predefine(st)

	st.ProgramID = st.EnterLocal("Demo", KindProgram)
	st.ProgramID.RoutineScope = st.Push()
	st.Local().Owner = st.ProgramID
	return st
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	st := newProgramStack()

	count := st.EnterLocal("Count", KindVariable)
	sym, ok := st.Lookup("count")
	be.True(t, ok)
	be.True(t, sym == count)
	be.Equal(t, sym.Name, "Count")

	sym, ok = st.LookupLocal("COUNT")
	be.True(t, ok)
	be.True(t, sym == count)
}

func TestEnterExistingReturnsFirst(t *testing.T) {
	st := newProgramStack()

	first := st.EnterLocal("x", KindVariable)
	second := st.EnterLocal("X", KindConstant)
	be.True(t, first == second)
	be.Equal(t, second.Kind, KindVariable)
	be.Equal(t, len(st.Local().Entries()), 1)
}

func TestInnermostFirstResolution(t *testing.T) {
	st := newProgramStack()
	outer := st.EnterLocal("x", KindVariable)

	fn := st.EnterLocal("f", KindFunction)
	fn.RoutineScope = st.Push()
	st.Local().Owner = fn
	inner := st.EnterLocal("x", KindValueParameter)

	be.Equal(t, st.NestingLevel(), 2)

	sym, _ := st.Lookup("x")
	be.True(t, sym == inner)

	_, ok := st.LookupLocal("f")
	be.True(t, !ok)

	st.Pop()
	sym, _ = st.Lookup("x")
	be.True(t, sym == outer)
	be.Equal(t, st.NestingLevel(), 1)
}

func TestPopGlobalScopeIsInternalError(t *testing.T) {
	st := newProgramStack()

	var ice *report.ICE
	func() {
		defer report.CatchICE(&ice)
		st.Pop()
	}()

	be.True(t, ice != nil)
	be.Equal(t, st.NestingLevel(), 1)
}

func TestSlotNumbers(t *testing.T) {
	scope := NewScope(2)
	be.Equal(t, scope.NextSlotNumber(), 0)
	be.Equal(t, scope.NextSlotNumber(), 1)
	scope.ReserveSlots(3)
	be.Equal(t, scope.NextSlotNumber(), 5)
	be.Equal(t, scope.SlotCount(), 6)
}

func TestSortedEntries(t *testing.T) {
	scope := NewScope(1)
	scope.Enter("zeta", KindVariable)
	scope.Enter("Alpha", KindVariable)
	scope.Enter("mid", KindConstant)

	var names []string
	for _, sym := range scope.SortedEntries() {
		names = append(names, sym.Name)
	}

	be.Equal(t, names, []string{"Alpha", "mid", "zeta"})
	be.Equal(t, scope.Entries()[0].Name, "zeta")
}

func TestPredefined(t *testing.T) {
	st := newProgramStack()

	sym, ok := st.Lookup("print")
	be.True(t, ok)
	be.Equal(t, sym.Kind, KindFunction)
	be.Equal(t, sym.RoutineCode, RoutinePrint)

	sym, ok = st.Lookup("int")
	be.True(t, ok)
	be.True(t, sym == IntegerID)
	be.True(t, types.Integer.Ident == IntegerID)
	be.Equal(t, types.Real.Name(), "real")
}
