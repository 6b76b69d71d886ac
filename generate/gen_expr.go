package generate

import (
	"fmt"

	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
	"subc/walk"
)

// genExpr generates an expression, leaving its value on the stack.
func (g *Generator) genExpr(expr *ast.Expr) {
	if !expr.IsComparison() {
		g.genSimpleExpr(expr.Left)
		return
	}

	// Comparisons are materialized by branching to code pushing either
	// constant.
	trueLabel := g.newLabel()
	exitLabel := g.newLabel()

	g.genCompareBranch(expr, trueLabel)
	g.emit("iconst_0")
	g.m.emitBranch("goto", exitLabel)

	g.m.placeLabel(trueLabel)
	g.emit("iconst_1")

	g.m.placeLabel(exitLabel)
}

// genConvertedExpr generates an expression whose value is stored in storage of
// the given type, widening integers to reals.
func (g *Generator) genConvertedExpr(expr *ast.Expr, target *types.Type) {
	g.genExpr(expr)

	if target == types.Real && g.notes.TypeOf(expr) == types.Integer {
		g.emit("i2f")
	}
}

// condSuffixes maps the relational operators to the condition suffix of the
// branch instructions testing them.
var condSuffixes = map[ast.OperKind]string{
	ast.OperEq:   "eq",
	ast.OperNeq:  "ne",
	ast.OperLt:   "lt",
	ast.OperLtEq: "le",
	ast.OperGt:   "gt",
	ast.OperGtEq: "ge",
}

// genCompareBranch generates a comparison which branches to the given label if
// it holds and falls through otherwise.
func (g *Generator) genCompareBranch(expr *ast.Expr, label string) {
	suffix := condSuffixes[expr.RelOp.Kind]
	leftType := g.notes.TypeOf(expr.Left)
	rightType := g.notes.TypeOf(expr.Right)

	switch {
	case leftType == types.String && rightType == types.String:
		g.genSimpleExpr(expr.Left)
		g.genSimpleExpr(expr.Right)
		g.emit("invokevirtual", stringCompareTo)
		g.m.emitBranch("if"+suffix, label)
	case leftType == types.Real || rightType == types.Real:
		g.genSimpleExpr(expr.Left)
		if leftType == types.Integer {
			g.emit("i2f")
		}

		g.genSimpleExpr(expr.Right)
		if rightType == types.Integer {
			g.emit("i2f")
		}

		g.emit("fcmpg")
		g.m.emitBranch("if"+suffix, label)
	default:
		g.genSimpleExpr(expr.Left)
		g.genSimpleExpr(expr.Right)
		g.m.emitBranch("if_icmp"+suffix, label)
	}
}

// genSimpleExpr generates a simple expression.
func (g *Generator) genSimpleExpr(se *ast.SimpleExpr) {
	g.genTerm(se.Terms[0])
	typ := g.notes.TypeOf(se.Terms[0])

	if se.Sign != nil && se.Sign.Kind == ast.OperSub {
		if typ == types.Real {
			g.emit("fneg")
		} else {
			g.emit("ineg")
		}
	}

	for i, op := range se.Ops {
		right := se.Terms[i+1]

		if op.Kind == ast.OperAdd && typ == types.String {
			g.genConcat(func() { g.genTerm(right) })
			continue
		}

		typ = g.genBinaryOper(op.Kind, typ, g.notes.TypeOf(right), func() { g.genTerm(right) })
	}
}

// genTerm generates a term.
func (g *Generator) genTerm(term *ast.Term) {
	g.genFactor(term.Factors[0])
	typ := g.notes.TypeOf(term.Factors[0])

	for i, op := range term.Ops {
		right := term.Factors[i+1]
		typ = g.genBinaryOper(op.Kind, typ, g.notes.TypeOf(right), func() { g.genFactor(right) })
	}
}

// intOps and realOps map the arithmetic operators to their instructions.
var (
	intOps = map[ast.OperKind]string{
		ast.OperAdd: "iadd",
		ast.OperSub: "isub",
		ast.OperMul: "imul",
		ast.OperDiv: "idiv",
		ast.OperMod: "irem",
		ast.OperAnd: "iand",
		ast.OperOr:  "ior",
	}

	realOps = map[ast.OperKind]string{
		ast.OperAdd:  "fadd",
		ast.OperSub:  "fsub",
		ast.OperMul:  "fmul",
		ast.OperFDiv: "fdiv",
	}
)

// genBinaryOper generates the application of a binary operator to the value
// on top of the stack and the value pushed by genRight.  It returns the type
// of the result.
func (g *Generator) genBinaryOper(kind ast.OperKind, leftType, rightType *types.Type, genRight func()) *types.Type {
	isReal := kind == ast.OperFDiv || leftType == types.Real || rightType == types.Real
	if !isReal || kind == ast.OperAnd || kind == ast.OperOr {
		genRight()
		g.emit(intOps[kind])

		if kind == ast.OperAnd || kind == ast.OperOr {
			return types.Boolean
		}

		return types.Integer
	}

	if leftType == types.Integer {
		g.emit("i2f")
	}

	genRight()
	if rightType == types.Integer {
		g.emit("i2f")
	}

	op, ok := realOps[kind]
	if !ok {
		report.ReportICE("no real instruction for `%s`", kind)
	}

	g.emit(op)
	return types.Real
}

// genConcat concatenates the string on top of the stack with the value pushed
// by genRight.
func (g *Generator) genConcat(genRight func()) {
	g.emit("new", "java/lang/StringBuilder")
	g.emit("dup_x1")
	g.emit("swap")
	g.emit("invokestatic", stringValueOf)
	g.emit("invokespecial", builderInit)

	genRight()
	g.emit("invokevirtual", builderAppend)
	g.emit("invokevirtual", builderToString)
}

// -----------------------------------------------------------------------------

// genFactor generates a factor.
func (g *Generator) genFactor(factor ast.Factor) {
	switch v := factor.(type) {
	case *ast.Variable:
		g.genLoadVariable(v)
	case *ast.Call:
		g.genCall(v)
	case *ast.NotFactor:
		g.genFactor(v.Operand)
		g.emit("iconst_1")
		g.emit("ixor")
	case *ast.ParenFactor:
		g.genExpr(v.Inner)
	default:
		g.pushValue(g.notes.ValueOf(factor))
	}
}

// genLoadVariable pushes the value of a variable use.  Constants are pushed
// as their folded value.
func (g *Generator) genLoadVariable(v *ast.Variable) {
	sym := g.notes.SymbolOf(v)

	if sym.Kind == symtab.KindConstant {
		g.pushValue(sym.Value)
		return
	}

	g.loadSymbol(sym)

	if v.Index != nil {
		g.genExpr(v.Index)
		g.emit(arrayPrefix(g.notes.TypeOf(v)) + "aload")
	}
}

// genCall generates a routine call, leaving its result (if any) on the stack.
func (g *Generator) genCall(call *ast.Call) {
	routine := g.notes.SymbolOf(call)

	if routine.RoutineCode == symtab.RoutinePrint {
		g.genPrint(call)
		return
	}

	for i, arg := range call.Args {
		g.genConvertedExpr(arg, routine.Params[i].Type)
	}

	g.emit("invokestatic", fmt.Sprintf("%s/%s%s", g.className, routine.Name, routineDescriptor(routine)))
}

// genPrint generates a call to print as a call to `printf` on the standard
// output stream.  The arguments are boxed into an object array.
func (g *Generator) genPrint(call *ast.Call) {
	format, args := walk.PrintFormat(g.notes, call)

	g.emit("getstatic", printStreamField)
	g.emit("ldc", `"`+format+`"`)

	if len(args) == 0 {
		g.emit("invokevirtual", printMethod)
		return
	}

	g.pushInt(len(args))
	g.emit("anewarray", "java/lang/Object")

	for i, arg := range args {
		g.emit("dup")
		g.pushInt(i)
		g.genExpr(arg)

		if boxing, ok := boxingMethods[g.notes.TypeOf(arg)]; ok {
			g.emit("invokestatic", boxing)
		}

		g.emit("aastore")
	}

	g.emit("invokevirtual", printfMethod)
	g.emit("pop")
}
