package generate

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
)

// genBlock generates a block of statements.
func (g *Generator) genBlock(block *ast.Block) {
	for _, stmt := range block.Stmts {
		g.genStmt(stmt)
	}
}

// genStmt generates a single statement.
func (g *Generator) genStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.Block:
		g.genBlock(v)
	case *ast.VarDecl:
		if v.Init != nil {
			g.genVarInit(v)
		}
	case *ast.ConstDecl:
		// Constants are folded into their uses.
	case *ast.AssignStmt:
		g.genAssign(v)
	case *ast.IncDecStmt:
		g.genIncDec(v)
	case *ast.IfStmt:
		g.genIf(v)
	case *ast.WhileStmt:
		g.genWhile(v)
	case *ast.ForStmt:
		g.genFor(v)
	case *ast.SwitchStmt:
		g.genSwitch(v)
	case *ast.CallStmt:
		g.genCallStmt(v)
	case *ast.ReturnStmt:
		g.genReturn(v)
	default:
		report.ReportICE("unknown statement: %T", stmt)
	}
}

// genVarInit generates the initialization of a declared variable.
func (g *Generator) genVarInit(vd *ast.VarDecl) {
	sym := g.notes.SymbolOf(vd.Name)

	g.genConvertedExpr(vd.Init, sym.Type)
	g.storeSymbol(sym)
}

// genAssign generates an assignment statement.
func (g *Generator) genAssign(as *ast.AssignStmt) {
	sym := g.notes.SymbolOf(as.Target)
	targetType := g.notes.TypeOf(as.Target)

	if as.Target.Index != nil {
		g.loadSymbol(sym)
		g.genExpr(as.Target.Index)
		g.genConvertedExpr(as.Value, targetType)
		g.emit(arrayPrefix(targetType) + "astore")
		return
	}

	g.genConvertedExpr(as.Value, targetType)
	g.storeSymbol(sym)
}

// genIncDec generates an increment or decrement statement.
func (g *Generator) genIncDec(incdec *ast.IncDecStmt) {
	sym := g.notes.SymbolOf(incdec.Target)

	op := "iadd"
	if incdec.Op.Kind == ast.OperSub {
		op = "isub"
	}

	if incdec.Target.Index != nil {
		g.loadSymbol(sym)
		g.genExpr(incdec.Target.Index)
		g.emit("dup2")
		g.emit("iaload")
		g.emit("iconst_1")
		g.emit(op)
		g.emit("iastore")
		return
	}

	g.loadSymbol(sym)
	g.emit("iconst_1")
	g.emit(op)
	g.storeSymbol(sym)
}

// genCallStmt generates a call whose result is discarded.
func (g *Generator) genCallStmt(cs *ast.CallStmt) {
	g.genCall(cs.Call)

	if sym := g.notes.SymbolOf(cs.Call); sym.RoutineCode != symtab.RoutinePrint && sym.Type != types.Void {
		g.emit("pop")
	}
}

// genReturn generates a return statement.  Inside a routine, the value is
// stored in the return variable and control jumps to the epilogue which
// returns it.  Inside the main routine, the value is discarded.
func (g *Generator) genReturn(rs *ast.ReturnStmt) {
	if rs.Value != nil {
		if g.routine != nil {
			g.genConvertedExpr(rs.Value, g.routine.ReturnVar.Type)
			g.storeSymbol(g.routine.ReturnVar)
		} else {
			g.genExpr(rs.Value)
			if g.notes.TypeOf(rs.Value) != types.Void {
				g.emit("pop")
			}
		}
	}

	g.m.emitBranch("goto", g.exitLabel)
}
