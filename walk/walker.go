package walk

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
)

// mainBookkeepingSlots is the number of local slots of the entry method used
// by the runtime: the argument array and the timing variables.
const mainBookkeepingSlots = 5

// Walker is responsible for walking a program and performing semantic
// analysis on it.  All analysis state lives in the walker: nothing is shared
// between two walks.
type Walker struct {
	// The scope stack used to declare and lookup symbols.
	stack *symtab.Stack

	// The annotations produced by the walk.
	notes *Annotations

	// The handler semantic errors are flagged to.
	errs *report.ErrorHandler

	// The routine whose body is being walked.  This is nil while walking
	// top-level declarations and the main routine.
	routine *symtab.Symbol
}

// Analysis is the result of semantically analyzing a program.
type Analysis struct {
	// The scope stack holding the predefined and global scopes.
	Stack *symtab.Stack

	// The symbol of the program.
	Program *symtab.Symbol

	// The out of band annotations of the syntax tree.
	Notes *Annotations

	// The semantic errors found.
	Errors *report.ErrorHandler
}

// Analyze semantically analyzes a syntactically valid program.  Analysis
// never stops early: every semantic error is flagged in the returned error
// handler and the caller decides whether to proceed by checking its count.
func Analyze(prog *ast.Program) *Analysis {
	w := &Walker{
		stack: symtab.NewStack(),
		notes: newAnnotations(),
		errs:  report.NewErrorHandler("semantic"),
	}

	symtab.Predefine(w.stack)
	programID := w.walkProgram(prog)

	return &Analysis{
		Stack:   w.stack,
		Program: programID,
		Notes:   w.notes,
		Errors:  w.errs,
	}
}

// walkProgram walks the whole program and returns its symbol.
func (w *Walker) walkProgram(prog *ast.Program) *symtab.Symbol {
	programID := w.stack.EnterLocal(prog.Name.Name, symtab.KindProgram)
	programID.AppendLineNumber(prog.Name.Span().Line())
	w.stack.ProgramID = programID
	w.notes.setSymbol(prog.Name, programID)

	globals := w.stack.Push()
	globals.Owner = programID
	globals.ReserveSlots(mainBookkeepingSlots)
	programID.RoutineScope = globals

	for _, decl := range prog.Decls {
		switch v := decl.(type) {
		case *ast.VarDecl:
			w.walkVarDecl(v)
		case *ast.ConstDecl:
			w.walkConstDecl(v)
		case *ast.FuncDef:
			w.walkFuncDef(v)
		default:
			report.ReportICE("unknown declaration: %T", decl)
		}
	}

	if prog.Main != nil {
		programID.Executable = prog.Main.Body
		w.walkBlock(prog.Main.Body)
	}

	return programID
}

// -----------------------------------------------------------------------------

// declare enters a new symbol for the given identifier into the active scope.
// If the name is already declared in the active scope, the redeclaration is
// flagged and a detached symbol which is not visible to lookups is returned in
// its place so analysis of the declaration can continue.
func (w *Walker) declare(ident *ast.Identifier, kind symtab.Kind) *symtab.Symbol {
	var sym *symtab.Symbol
	if _, ok := w.stack.LookupLocal(ident.Name); ok {
		w.errs.Flag(report.RedeclaredIdentifier, ident.Span(), "%s", ident.Name)
		sym = &symtab.Symbol{Name: ident.Name, Kind: kind, Slot: -1}
	} else {
		sym = w.stack.EnterLocal(ident.Name, kind)
	}

	sym.AppendLineNumber(ident.Span().Line())
	w.notes.setSymbol(ident, sym)
	return sym
}

// lookup looks up a name in all visible scopes and records the reference on
// the found symbol.  Undeclared names are flagged.
func (w *Walker) lookup(name string, span *report.TextSpan) (*symtab.Symbol, bool) {
	sym, ok := w.stack.Lookup(name)
	if !ok {
		w.errs.Flag(report.UndeclaredIdentifier, span, "%s", name)
		return nil, false
	}

	sym.AppendLineNumber(span.Line())
	return sym, true
}

// resolveType returns the type denoted by a type label.
func (w *Walker) resolveType(label ast.TypeLabel) *types.Type {
	return types.FromName(label.Name)
}

// allocSlot gives a storage symbol a local slot if it is declared inside a
// routine.  Globals live in static fields and get no slot.
func (w *Walker) allocSlot(sym *symtab.Symbol) {
	if w.stack.NestingLevel() > 1 {
		sym.Slot = w.stack.Local().NextSlotNumber()
	}
}
