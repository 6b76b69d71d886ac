package generate

import (
	"fmt"
	"strings"

	"subc/ast"
	"subc/symtab"
	"subc/walk"
)

// Generator is responsible for converting an analyzed SubC program into a
// Jasmin assembly unit: one public class holding the globals of the program as
// static fields and its routines as static methods.
type Generator struct {
	// The annotations produced by semantic analysis.  The generator only ever
	// reads them.
	notes *walk.Annotations

	// The symbol of the program being generated.
	programID *symtab.Symbol

	// The name of the generated class.
	className string

	// The output buffer for the whole unit.
	sb *strings.Builder

	// The method being generated.
	m *method

	// The routine whose body is being generated.  This is nil while
	// generating the main routine and the static initializer.
	routine *symtab.Symbol

	// The label marking the epilogue of the method being generated.
	exitLabel string

	// The counter used to generate unique labels.
	labelCounter int
}

// Generate generates the Jasmin assembly for a program.  The program must have
// passed semantic analysis without any errors: generation trusts the
// annotations completely and any inconsistency is an internal compiler error.
func Generate(prog *ast.Program, an *walk.Analysis) string {
	g := &Generator{
		notes:     an.Notes,
		programID: an.Program,
		className: an.Program.Name,
		sb:        &strings.Builder{},
	}

	g.genClass(prog)
	return g.sb.String()
}

// ClassName returns the name of the class generated for a program: the output
// file is named after it.
func ClassName(an *walk.Analysis) string {
	return an.Program.Name
}

// newLabel returns a fresh label unique within the unit.
func (g *Generator) newLabel() string {
	g.labelCounter++
	return fmt.Sprintf("L%03d", g.labelCounter)
}

// beginMethod starts generating a new method.
func (g *Generator) beginMethod(header string, locals int) {
	g.m = newMethod(header, locals)
}

// endMethod finishes the method being generated and writes it to the unit.
func (g *Generator) endMethod() {
	g.m.writeTo(g.sb)
	g.m = nil
}

// comment writes a comment line to the unit.
func (g *Generator) comment(format string, args ...interface{}) {
	fmt.Fprintf(g.sb, "\n; "+format+"\n", args...)
}

// directive writes a directive line to the unit.
func (g *Generator) directive(format string, args ...interface{}) {
	fmt.Fprintf(g.sb, format+"\n", args...)
}

// emit appends an instruction to the method being generated.
func (g *Generator) emit(op string, operands ...interface{}) {
	g.m.emit(op, operands...)
}

// fieldRef returns the operand referring to a static field of the class.
func (g *Generator) fieldRef(name, desc string) string {
	return fmt.Sprintf("%s/%s %s", g.className, name, desc)
}
