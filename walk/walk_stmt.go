package walk

import (
	"subc/ast"
	"subc/report"
	"subc/typing"
	"subc/types"
)

// walkBlock walks a block of statements.  Blocks do not open scopes: every
// declaration in a routine body belongs to the routine's scope.
func (w *Walker) walkBlock(block *ast.Block) {
	for _, stmt := range block.Stmts {
		w.walkStmt(stmt)
	}
}

// walkStmt walks a single statement.
func (w *Walker) walkStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.Block:
		w.walkBlock(v)
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.ConstDecl:
		w.walkConstDecl(v)
	case *ast.AssignStmt:
		w.walkAssign(v)
	case *ast.IncDecStmt:
		w.walkIncDec(v)
	case *ast.IfStmt:
		w.walkIf(v)
	case *ast.WhileStmt:
		w.walkWhile(v)
	case *ast.ForStmt:
		w.walkFor(v)
	case *ast.SwitchStmt:
		w.walkSwitch(v)
	case *ast.CallStmt:
		w.walkCall(v.Call)
	case *ast.ReturnStmt:
		w.walkReturn(v)
	default:
		report.ReportICE("unknown statement: %T", stmt)
	}
}

// walkAssign walks an assignment statement.
func (w *Walker) walkAssign(as *ast.AssignStmt) {
	targetType := w.walkTarget(as.Target)
	valueType := w.walkExpr(as.Value)

	if !typing.AreAssignmentCompatible(targetType, valueType) {
		w.errs.Flag(report.IncompatibleAssignment, as.Span(), "cannot assign %s to %s", valueType, targetType)
	}
}

// walkIncDec walks an increment or decrement statement.  Only integer
// variables can be incremented.
func (w *Walker) walkIncDec(incdec *ast.IncDecStmt) {
	targetType := w.walkTarget(incdec.Target)

	if !typing.IsInteger(targetType) {
		w.errs.Flag(report.IncompatibleAssignment, incdec.Target.Span(), "cannot apply `%s%s` to %s", incdec.Op.Kind, incdec.Op.Kind, targetType)
	}
}

// walkReturn walks a return statement.  Inside the main routine, the returned
// value is only checked for its own errors.
func (w *Walker) walkReturn(rs *ast.ReturnStmt) {
	if w.routine == nil {
		if rs.Value != nil {
			w.walkExpr(rs.Value)
		}

		return
	}

	returnType := w.routine.Type
	if rs.Value == nil {
		if returnType != types.Void {
			w.errs.Flag(report.TypeMismatch, rs.Span(), "`%s` must return a value of type %s", w.routine.Name, returnType)
		}

		return
	}

	valueType := w.walkExpr(rs.Value)
	if returnType == types.Void {
		w.errs.Flag(report.TypeMismatch, rs.Value.Span(), "void routine `%s` cannot return a value", w.routine.Name)
	} else if !typing.AreAssignmentCompatible(returnType, valueType) {
		w.errs.Flag(report.TypeMismatch, rs.Value.Span(), "cannot return %s from `%s` of type %s", valueType, w.routine.Name, returnType)
	}
}
