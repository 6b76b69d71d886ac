package walk

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/typing"
	"subc/types"
)

// walkExpr walks an expression and returns its type.
func (w *Walker) walkExpr(expr *ast.Expr) *types.Type {
	typ := w.walkSimpleExpr(expr.Left)

	if expr.IsComparison() {
		rightType := w.walkSimpleExpr(expr.Right)

		if !typing.AreComparisonCompatible(typ, rightType) {
			w.errs.Flag(report.IncompatibleComparison, expr.Span(), "cannot compare %s with %s", typ, rightType)
		}

		typ = types.Boolean
	}

	w.notes.setType(expr, typ)
	return typ
}

// walkSimpleExpr walks a simple expression.  Its type is folded from left to
// right over its terms.
func (w *Walker) walkSimpleExpr(se *ast.SimpleExpr) *types.Type {
	typ := w.walkTerm(se.Terms[0])

	if se.Sign != nil && !typing.IsIntegerOrReal(typ) {
		w.errs.Flag(report.InvalidSign, se.Sign.Span, "cannot apply `%s` to %s", se.Sign.Kind, typ)
		typ = types.Integer
	}

	for i, op := range se.Ops {
		rightType := w.walkTerm(se.Terms[i+1])
		typ = w.checkOperApp(op, typ, rightType)
	}

	w.notes.setType(se, typ)
	return typ
}

// walkTerm walks a term.  Its type is folded from left to right over its
// factors.
func (w *Walker) walkTerm(term *ast.Term) *types.Type {
	typ := w.walkFactor(term.Factors[0])

	for i, op := range term.Ops {
		rightType := w.walkFactor(term.Factors[i+1])
		typ = w.checkOperApp(op, typ, rightType)
	}

	w.notes.setType(term, typ)
	return typ
}

// checkOperApp checks the application of a binary additive or multiplicative
// operator and returns the result type.  Erroneous operands are flagged and a
// default result type is substituted.
func (w *Walker) checkOperApp(op ast.Oper, lhs, rhs *types.Type) *types.Type {
	switch op.Kind {
	case ast.OperAdd, ast.OperSub, ast.OperMul:
		if typing.AreBothInteger(lhs, rhs) {
			return types.Integer
		} else if typing.IsAtLeastOneReal(lhs, rhs) {
			return types.Real
		} else if op.Kind == ast.OperAdd && typing.AreBothString(lhs, rhs) {
			return types.String
		}

		w.errs.Flag(report.TypeMustBeNumeric, op.Span, "cannot apply `%s` to %s and %s", op.Kind, lhs, rhs)
		return types.Integer
	case ast.OperFDiv:
		if !typing.AreBothNumeric(lhs, rhs) {
			w.errs.Flag(report.TypeMustBeNumeric, op.Span, "cannot apply `%s` to %s and %s", op.Kind, lhs, rhs)
		}

		return types.Real
	case ast.OperDiv, ast.OperMod:
		if !typing.AreBothInteger(lhs, rhs) {
			w.errs.Flag(report.TypeMustBeInteger, op.Span, "cannot apply `%s` to %s and %s", op.Kind, lhs, rhs)
		}

		return types.Integer
	case ast.OperAnd, ast.OperOr:
		if !typing.AreBothBoolean(lhs, rhs) {
			w.errs.Flag(report.TypeMustBeBoolean, op.Span, "cannot apply `%s` to %s and %s", op.Kind, lhs, rhs)
		}

		return types.Boolean
	}

	report.ReportICE("unknown binary operator: %s", op.Kind)
	return nil
}

// walkFactor walks a factor and returns its type.
func (w *Walker) walkFactor(factor ast.Factor) *types.Type {
	switch v := factor.(type) {
	case *ast.Variable:
		typ, _ := w.walkVariable(v)
		return typ
	case *ast.Call:
		return w.walkCall(v)
	case *ast.NotFactor:
		operandType := w.walkFactor(v.Operand)
		if !typing.IsBoolean(operandType) {
			w.errs.Flag(report.TypeMustBeBoolean, v.Operand.Span(), "cannot apply `not` to %s", operandType)
		}

		w.notes.setType(v, types.Boolean)
		return types.Boolean
	case *ast.ParenFactor:
		typ := w.walkExpr(v.Inner)
		w.notes.setType(v, typ)
		return typ
	default:
		return w.walkLit(factor)
	}
}

// -----------------------------------------------------------------------------

// walkVariable walks a use of a variable and returns its type along with the
// symbol it refers to.  The symbol is nil if the name is undeclared.
func (w *Walker) walkVariable(v *ast.Variable) (*types.Type, *symtab.Symbol) {
	sym, ok := w.lookup(v.Name, v.Span())

	var typ *types.Type
	if !ok {
		typ = types.Integer
	} else if !sym.IsStorage() && sym.Kind != symtab.KindConstant {
		w.errs.Flag(report.InvalidVariable, v.Span(), "`%s` is a %s", v.Name, sym.Kind)
		typ = types.Integer
	} else {
		typ = sym.Type
		w.notes.setSymbol(v, sym)
	}

	if v.Index != nil {
		indexType := w.walkExpr(v.Index)

		if typ.Form != types.FormArray {
			w.errs.Flag(report.TypeMismatch, v.Span(), "cannot index %s", typ)
		} else {
			typ = typ.ElemType
		}

		if !typing.IsInteger(indexType) {
			w.errs.Flag(report.TypeMustBeInteger, v.Index.Span(), "index is of type %s", indexType)
		}
	}

	w.notes.setType(v, typ)
	return typ, sym
}

// walkTarget walks the variable being assigned to by a statement.  Constants
// cannot be assigned to.
func (w *Walker) walkTarget(v *ast.Variable) *types.Type {
	typ, sym := w.walkVariable(v)

	if sym != nil && sym.Kind == symtab.KindConstant {
		w.errs.Flag(report.InvalidVariable, v.Span(), "cannot assign to constant `%s`", v.Name)
	}

	return typ
}

// walkCall walks a routine call and returns the type of its result.  The
// arguments are always walked so that their own errors are found.
func (w *Walker) walkCall(call *ast.Call) *types.Type {
	sym, ok := w.lookup(call.Name.Name, call.Name.Span())

	// Inside a routine, its name denotes its return variable.
	if ok && w.routine != nil && sym == w.routine.ReturnVar {
		sym = w.routine
	}

	if !ok || !sym.IsRoutine() {
		if ok {
			w.errs.Flag(report.NameMustBeFunction, call.Name.Span(), "`%s` is a %s", call.Name.Name, sym.Kind)
		}

		for _, arg := range call.Args {
			w.walkExpr(arg)
		}

		w.notes.setType(call, types.Integer)
		return types.Integer
	}

	w.notes.setSymbol(call, sym)

	if sym.RoutineCode == symtab.RoutinePrint {
		w.walkPrintArgs(call)
	} else {
		w.checkCallArgs(call, sym)
	}

	w.notes.setType(call, sym.Type)
	return sym.Type
}

// checkCallArgs walks the arguments of a call to a declared routine and checks
// them against its parameters.
func (w *Walker) checkCallArgs(call *ast.Call, routine *symtab.Symbol) {
	argTypes := make([]*types.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = w.walkExpr(arg)
	}

	if len(call.Args) != len(routine.Params) {
		w.errs.Flag(
			report.ArgumentCountMismatch,
			call.Span(),
			"`%s` takes %d arguments but got %d",
			routine.Name,
			len(routine.Params),
			len(call.Args),
		)

		return
	}

	for i, param := range routine.Params {
		if !typing.AreAssignmentCompatible(param.Type, argTypes[i]) {
			w.errs.Flag(report.TypeMismatch, call.Args[i].Span(), "cannot pass %s as %s", argTypes[i], param.Type)
		}
	}
}

// walkPrintArgs walks the arguments of a call to print.  Every argument must be
// a printable scalar.
func (w *Walker) walkPrintArgs(call *ast.Call) {
	for _, arg := range call.Args {
		if argType := w.walkExpr(arg); !typing.IsScalar(argType) {
			w.errs.Flag(report.TypeMismatch, arg.Span(), "cannot print %s", argType)
		}
	}
}
