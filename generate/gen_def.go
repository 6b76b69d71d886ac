package generate

import (
	"fmt"

	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
)

// mainLocals is the number of local slots of the entry method: the argument
// array, the start and end instants, and the elapsed time which is a long.
const mainLocals = 5

// genClass generates the whole unit.
func (g *Generator) genClass(prog *ast.Program) {
	g.directive("; Program %s", g.className)
	g.directive(".class public %s", g.className)
	g.directive(".super java/lang/Object")
	g.directive("")

	g.directive(".field private static _sysin Ljava/util/Scanner;")
	for _, sym := range g.programID.RoutineScope.SortedEntries() {
		if sym.Kind == symtab.KindVariable {
			g.directive(".field private static %s %s", sym.Name, sym.Type.Descriptor())
		}
	}

	g.genClassInit(prog)
	g.genConstructor()

	for _, decl := range prog.Decls {
		if funcDef, ok := decl.(*ast.FuncDef); ok {
			g.genRoutine(funcDef)
		}
	}

	g.genMain(prog.Main)
}

// genClassInit generates the static initializer: it creates the input scanner,
// allocates the global data, and runs the initializers of top-level variables
// in source order.
func (g *Generator) genClassInit(prog *ast.Program) {
	g.comment("Runtime input scanner and global data")
	g.beginMethod(".method static <clinit>()V", 0)

	g.emit("new", "java/util/Scanner")
	g.emit("dup")
	g.emit("getstatic", "java/lang/System/in Ljava/io/InputStream;")
	g.emit("invokespecial", "java/util/Scanner/<init>(Ljava/io/InputStream;)V")
	g.emit("putstatic", g.fieldRef("_sysin", "Ljava/util/Scanner;"))

	g.emitData(g.programID.RoutineScope)

	for _, decl := range prog.Decls {
		if vd, ok := decl.(*ast.VarDecl); ok && vd.Init != nil {
			g.genVarInit(vd)
		}
	}

	g.emit("return")
	g.endMethod()
}

// genConstructor generates the constructor stub the class format requires.
func (g *Generator) genConstructor() {
	g.comment("Main class constructor")
	g.beginMethod(".method public <init>()V", 1)
	g.m.declareVar(0, "this", "L"+g.className+";")

	g.emit("aload_0")
	g.emit("invokespecial", "java/lang/Object/<init>()V")
	g.emit("return")

	g.endMethod()
}

// genRoutine generates the static method of a declared routine.
func (g *Generator) genRoutine(fd *ast.FuncDef) {
	routine := g.notes.SymbolOf(fd.Name)
	scope := routine.RoutineScope

	g.comment("FUNCTION %s", routine.Name)
	g.beginMethod(
		fmt.Sprintf(".method private static %s%s", routine.Name, routineDescriptor(routine)),
		scope.SlotCount(),
	)

	returnVar := routine.ReturnVar
	for _, sym := range slotOrder(scope, returnVar) {
		g.m.declareVar(sym.Slot, sym.Name, sym.Type.Descriptor())
	}

	g.emitData(scope)
	if shadow, _ := scope.Lookup(returnVar.Name); shadow != returnVar && returnVar.Type != types.Void {
		g.pushDefault(returnVar.Type)
		g.storeSymbol(returnVar)
	}

	g.m.blank()

	g.routine = routine
	g.exitLabel = g.newLabel()
	g.genBlock(fd.Body)

	g.m.placeLabel(g.exitLabel)
	if returnVar.Type == types.Void {
		g.emit("return")
	} else {
		g.loadSymbol(returnVar)
		g.emit(localPrefix(returnVar.Type) + "return")
	}

	g.routine = nil
	g.endMethod()
}

// slotOrder returns the symbols of a routine which occupy local slots ordered
// by slot.  The return variable of a non-void routine is included even if its
// name is shadowed.
func slotOrder(scope *symtab.Scope, returnVar *symtab.Symbol) []*symtab.Symbol {
	bySlot := make([]*symtab.Symbol, scope.SlotCount())
	for _, sym := range scope.Entries() {
		if sym.HasSlot() {
			bySlot[sym.Slot] = sym
		}
	}

	if returnVar.HasSlot() {
		bySlot[returnVar.Slot] = returnVar
	}

	var ordered []*symtab.Symbol
	for _, sym := range bySlot {
		if sym != nil {
			ordered = append(ordered, sym)
		}
	}

	return ordered
}

// genMain generates the entry method wrapping the main routine in timing
// instrumentation.
func (g *Generator) genMain(fd *ast.FuncDef) {
	if fd == nil {
		report.ReportICE("program `%s` has no main routine", g.className)
	}

	g.comment("MAIN")
	g.beginMethod(".method public static main([Ljava/lang/String;)V", mainLocals)
	g.m.declareVar(0, "args", "[Ljava/lang/String;")
	g.m.declareVar(1, "_start", "Ljava/time/Instant;")
	g.m.declareVar(2, "_end", "Ljava/time/Instant;")
	g.m.declareVar(3, "_elapsed", "J")

	g.emit("invokestatic", instantNow)
	g.emit("astore_1")
	g.m.blank()

	g.exitLabel = g.newLabel()
	g.genBlock(fd.Body)

	g.m.placeLabel(g.exitLabel)
	g.emit("invokestatic", instantNow)
	g.emit("astore_2")
	g.emit("aload_1")
	g.emit("aload_2")
	g.emit("invokestatic", durationBetween)
	g.emit("invokevirtual", durationToMillis)
	g.emit("lstore_3")
	g.emit("getstatic", printStreamField)
	g.emit("ldc", `"\n[%,d milliseconds execution time.]\n"`)
	g.emit("iconst_1")
	g.emit("anewarray", "java/lang/Object")
	g.emit("dup")
	g.emit("iconst_0")
	g.emit("lload_3")
	g.emit("invokestatic", longValueOf)
	g.emit("aastore")
	g.emit("invokevirtual", printfMethod)
	g.emit("pop")
	g.emit("return")

	g.endMethod()
}
