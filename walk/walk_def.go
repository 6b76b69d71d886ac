package walk

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/typing"
	"subc/types"
)

// walkVarDecl walks a variable declaration: global, local, or the initializer
// of a for loop.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	typ := w.resolveType(vd.Type)
	if typ == types.Void {
		w.errs.Flag(report.TypeMismatch, vd.Type.Span, "variable `%s` cannot be void", vd.Name.Name)
		typ = types.Integer
	}

	if vd.ArrayLen > 0 {
		typ = types.NewArray(typ, vd.ArrayLen)
	}

	if vd.Init != nil {
		initType := w.walkExpr(vd.Init)

		if !typing.AreAssignmentCompatible(typ, initType) {
			w.errs.Flag(report.IncompatibleAssignment, vd.Init.Span(), "cannot initialize %s with %s", typ, initType)
		}
	}

	sym := w.declare(vd.Name, symtab.KindVariable)
	sym.Type = typ
	w.allocSlot(sym)
}

// walkConstDecl walks a named constant declaration.  The value must fold to a
// compile-time constant.
func (w *Walker) walkConstDecl(cd *ast.ConstDecl) {
	typ := w.resolveType(cd.Type)
	valueType := w.walkExpr(cd.Value)

	value, ok := w.fold(cd.Value)
	if !ok {
		w.errs.Flag(report.InvalidConstant, cd.Value.Span(), "value of `%s` is not constant", cd.Name.Name)
		value = defaultValue(typ)
	} else if !typing.AreAssignmentCompatible(typ, valueType) {
		w.errs.Flag(report.IncompatibleAssignment, cd.Value.Span(), "cannot initialize %s with %s", typ, valueType)
		value = defaultValue(typ)
	} else if typing.IsReal(typ) && typing.IsInteger(valueType) {
		value = float32(value.(int))
	}

	w.notes.setValue(cd.Value, value)

	sym := w.declare(cd.Name, symtab.KindConstant)
	sym.Type = typ
	sym.Value = value
}

// walkFuncDef walks a routine definition.  The routine gets its own scope
// holding its parameters, its return variable, and its locals in that order.
func (w *Walker) walkFuncDef(fd *ast.FuncDef) {
	routine := w.declare(fd.Name, symtab.KindFunction)
	routine.Type = w.resolveType(fd.ReturnType)
	routine.RoutineCode = symtab.RoutineDeclared
	routine.Executable = fd.Body

	scope := w.stack.Push()
	scope.Owner = routine
	routine.RoutineScope = scope

	for _, param := range fd.Params {
		paramType := w.resolveType(param.Type)
		if paramType == types.Void {
			w.errs.Flag(report.TypeMismatch, param.Type.Span, "parameter `%s` cannot be void", param.Name.Name)
			paramType = types.Integer
		}

		paramID := w.declare(param.Name, symtab.KindValueParameter)
		paramID.Type = paramType
		paramID.Slot = scope.NextSlotNumber()
		routine.Params = append(routine.Params, paramID)
	}

	// The return variable shares the name of the routine so that references
	// to the routine's name inside its body denote the value being returned.
	var returnVar *symtab.Symbol
	if _, ok := scope.Lookup(fd.Name.Name); ok {
		returnVar = &symtab.Symbol{Name: fd.Name.Name, Kind: symtab.KindVariable, Slot: -1}
	} else {
		returnVar = scope.Enter(fd.Name.Name, symtab.KindVariable)
	}

	returnVar.Type = routine.Type
	if routine.Type != types.Void {
		returnVar.Slot = scope.NextSlotNumber()
	}
	routine.ReturnVar = returnVar

	enclosing := w.routine
	w.routine = routine
	defer func() {
		w.routine = enclosing
		w.stack.Pop()
	}()

	w.walkBlock(fd.Body)
}
