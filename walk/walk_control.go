package walk

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/typing"
	"subc/types"
)

// walkIf walks an if statement.  Both branches are walked even if the
// condition is erroneous.
func (w *Walker) walkIf(is *ast.IfStmt) {
	w.checkCondition(is.Cond)

	w.walkStmt(is.Then)
	if is.Else != nil {
		w.walkStmt(is.Else)
	}
}

// walkWhile walks a while loop.
func (w *Walker) walkWhile(ws *ast.WhileStmt) {
	w.checkCondition(ws.Cond)
	w.walkStmt(ws.Body)
}

// checkCondition walks the condition of a conditional statement which must be
// boolean.
func (w *Walker) checkCondition(cond *ast.Expr) {
	if condType := w.walkExpr(cond); !typing.IsBoolean(condType) {
		w.errs.Flag(report.TypeMustBeBoolean, cond.Span(), "condition is of type %s", condType)
	}
}

// walkFor walks a for loop.
func (w *Walker) walkFor(fs *ast.ForStmt) {
	switch v := fs.Init.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.AssignStmt:
		w.walkAssign(v)
	default:
		report.ReportICE("invalid for loop initializer: %T", fs.Init)
	}

	if condType := w.walkExpr(fs.Cond); !typing.IsBoolean(condType) {
		w.errs.Flag(report.InvalidControlVariable, controlVariable(fs).Span(), "loop control is of type %s", condType)
	}

	switch v := fs.Incr.(type) {
	case *ast.IncDecStmt:
		w.walkIncDec(v)
	case *ast.AssignStmt:
		// Increment assignments do not widen.
		targetType := w.walkTarget(v.Target)
		valueType := w.walkExpr(v.Value)

		if targetType != valueType {
			w.errs.Flag(report.TypeMismatch, v.Span(), "cannot assign %s to %s", valueType, targetType)
		}
	default:
		report.ReportICE("invalid for loop increment: %T", fs.Incr)
	}

	w.walkStmt(fs.Body)
}

// controlVariable returns the node naming the variable a for loop initializes.
func controlVariable(fs *ast.ForStmt) ast.Node {
	if vd, ok := fs.Init.(*ast.VarDecl); ok {
		return vd.Name
	}

	return fs.Init.(*ast.AssignStmt).Target
}

// walkSwitch walks a switch statement.
func (w *Walker) walkSwitch(ss *ast.SwitchStmt) {
	selectorType := w.walkExpr(ss.Selector)
	if !typing.IsSelectorType(selectorType) {
		w.errs.Flag(report.TypeMismatch, ss.Selector.Span(), "cannot switch on %s", selectorType)
		selectorType = types.Integer
	}

	seen := make(map[interface{}]struct{})
	for _, branch := range ss.Branches {
		for _, constant := range branch.Constants {
			constType, value, ok := w.walkCaseConstant(constant)
			if !ok {
				continue
			}

			if constType != selectorType {
				w.errs.Flag(report.TypeMismatch, constant.Span(), "case constant of type %s does not match selector of type %s", constType, selectorType)
				continue
			}

			if _, dup := seen[value]; dup {
				w.errs.Flag(report.DuplicateCaseConstant, constant.Span(), "%v", value)
				continue
			}

			seen[value] = struct{}{}
		}

		for _, stmt := range branch.Stmts {
			w.walkStmt(stmt)
		}
	}

	if ss.Default != nil {
		for _, stmt := range ss.Default.Stmts {
			w.walkStmt(stmt)
		}
	}
}

// walkCaseConstant walks a case constant: either a literal or the name of a
// constant.  It returns the type and value of the constant and whether it is
// valid.
func (w *Walker) walkCaseConstant(constant ast.Factor) (*types.Type, interface{}, bool) {
	v, ok := constant.(*ast.Variable)
	if !ok {
		constType := w.walkLit(constant)
		return constType, w.notes.ValueOf(constant), true
	}

	sym, ok := w.lookup(v.Name, v.Span())
	if !ok {
		return nil, nil, false
	} else if sym.Kind != symtab.KindConstant {
		w.errs.Flag(report.InvalidConstant, v.Span(), "`%s` is not a constant", v.Name)
		return nil, nil, false
	}

	w.notes.setSymbol(v, sym)
	w.notes.setType(v, sym.Type)
	w.notes.setValue(v, sym.Value)
	return sym.Type, sym.Value, true
}
