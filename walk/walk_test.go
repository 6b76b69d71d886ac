package walk

import (
	"bufio"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/syntax"
	"subc/types"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()

	errs := report.NewErrorHandler("syntax")
	prog := syntax.NewParser(bufio.NewReader(strings.NewReader(src)), errs).Parse()

	be.Equal(t, errs.Count(), 0)
	be.True(t, prog != nil)
	return prog
}

func analyze(t *testing.T, src string) *Analysis {
	t.Helper()
	return Analyze(parse(t, src))
}

func mainOf(t *testing.T, stmts string) *Analysis {
	t.Helper()
	return analyze(t, "Program Demo;\nvoid main() {\n"+stmts+"\n}\n")
}

func TestCleanProgram(t *testing.T) {
	an := analyze(t, `Program Demo;
const int limit = 10;
int total;

int square(int n) {
	return n * n;
}

void main() {
	int i;
	for (i = 0; i < limit; i++) {
		total = total + square(i);
	}
	print("%d\n", total);
}
`)

	be.Equal(t, an.Errors.Count(), 0)
	be.Equal(t, an.Program.Name, "Demo")

	square, ok := an.Stack.Global().Lookup("square")
	be.True(t, ok)
	be.Equal(t, square.Kind, symtab.KindFunction)
	be.Equal(t, len(square.Params), 1)
	be.Equal(t, square.Params[0].Slot, 0)
	be.Equal(t, square.ReturnVar.Slot, 1)
	be.Equal(t, square.RoutineScope.SlotCount(), 2)

	i, ok := an.Stack.Global().Lookup("i")
	be.True(t, ok)
	be.True(t, !i.HasSlot())
	be.Equal(t, an.Stack.Global().SlotCount(), 5)
}

func TestIdempotentAnalysis(t *testing.T) {
	prog := parse(t, `Program Demo;
int x;
double y;
void main() {
	x = 2 + 3;
	y = x / 2;
	print(x, y);
}
`)

	first := Analyze(prog)
	second := Analyze(prog)

	be.Equal(t, first.Errors.Count(), 0)
	be.Equal(t, second.Errors.Count(), 0)

	nt1, ns1, nv1 := first.Notes.Len()
	nt2, ns2, nv2 := second.Notes.Len()
	be.Equal(t, nt1, nt2)
	be.Equal(t, ns1, ns2)
	be.Equal(t, nv1, nv2)

	for id, typ := range first.Notes.types {
		be.True(t, second.Notes.types[id] == typ)
	}

	for id, sym := range first.Notes.symbols {
		other := second.Notes.symbols[id]
		be.Equal(t, other.Name, sym.Name)
		be.Equal(t, other.Kind, sym.Kind)
	}
}

func TestCaseInsensitivity(t *testing.T) {
	an := mainOf(t, "int Count;\ncount = 5;\nCOUNT++;")
	be.Equal(t, an.Errors.Count(), 0)

	sym, _ := an.Stack.Global().Lookup("count")
	be.Equal(t, sym.Name, "Count")
	be.Equal(t, sym.LineNumbers, []int{3, 4, 5})

	an = mainOf(t, "int count;\nint count;\nint COUNT;")
	be.Equal(t, an.Errors.CountOf(report.RedeclaredIdentifier), 2)

	an = mainOf(t, "int count;\ndouble count;")
	be.Equal(t, an.Errors.Count(), 1)
	be.Equal(t, an.Errors.CountOf(report.RedeclaredIdentifier), 1)

	sym, _ = an.Stack.Global().Lookup("count")
	be.True(t, sym.Type == types.Integer)
}

func TestUndeclaredIdentifier(t *testing.T) {
	an := mainOf(t, "int x;\nx = y + 1;")

	be.Equal(t, an.Errors.Count(), 1)
	diag := an.Errors.Diagnostics()[0]
	be.Equal(t, diag.Code, report.UndeclaredIdentifier)
	be.Equal(t, diag.Line, 4)
	be.Equal(t, diag.Detail, "y")

	assign := an.Program.Executable.Stmts[1].(*ast.AssignStmt)
	be.True(t, an.Notes.TypeOf(assign.Value) == types.Integer)
}

func TestConstantFold(t *testing.T) {
	tests := []struct {
		name  string
		decl  string
		typ   *types.Type
		value interface{}
	}{
		{"integer add", "const int c = 1 + 2;", types.Integer, 3},
		{"mixed add", "const double c = 1 + 2.0;", types.Real, float32(3)},
		{"widened", "const double c = 4;", types.Real, float32(4)},
		{"precedence", "const int c = 2 + 3 * 4 - 1;", types.Integer, 13},
		{"negated", "const int c = -(7 div 2);", types.Integer, -3},
		{"modulo", "const int c = 7 % 4;", types.Integer, 3},
		{"comparison", "const bool c = (3 < 4) and true;", types.Boolean, true},
		{"not", "const bool c = !(1 == 1);", types.Boolean, false},
		{"string", `const string c = "ab" + "cd";`, types.String, "abcd"},
		{"char", `const char c = 'x';`, types.Char, 'x'},
		{"other constant", "const int a = 5; const int c = a * 2;", types.Integer, 10},
		{"wrapped div", "const int m = -2147483647 - 1; const int c = m div (0 - 1);", types.Integer, -2147483648},
		{"wrapped negation", "const int m = -2147483647 - 1; const int c = -m;", types.Integer, -2147483648},
		{"wrapped mul", "const int c = 65536 * 65536;", types.Integer, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := analyze(t, "Program Demo;\n"+test.decl+"\nvoid main() {}\n")
			be.Equal(t, an.Errors.Count(), 0)

			sym, ok := an.Stack.Global().Lookup("c")
			be.True(t, ok)
			be.Equal(t, sym.Kind, symtab.KindConstant)
			be.True(t, sym.Type == test.typ)
			be.Equal(t, sym.Value, test.value)
		})
	}
}

func TestExpressionTypes(t *testing.T) {
	an := mainOf(t, "int i;\ndouble r;\ni = 1 + 2;\nr = 1 + 2.0;")
	be.Equal(t, an.Errors.Count(), 0)

	stmts := an.Program.Executable.Stmts
	be.True(t, an.Notes.TypeOf(stmts[2].(*ast.AssignStmt).Value) == types.Integer)
	be.True(t, an.Notes.TypeOf(stmts[3].(*ast.AssignStmt).Value) == types.Real)
}

func TestInvalidConstant(t *testing.T) {
	an := analyze(t, "Program Demo;\nint x;\nconst int c = x + 1;\nvoid main() {}\n")
	be.Equal(t, an.Errors.CountOf(report.InvalidConstant), 1)
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name  string
		stmts string
		code  report.ErrorCode
	}{
		{"incompatible assignment", "int x;\nx = 1.5;", report.IncompatibleAssignment},
		{"incompatible init", "string s = 1;", report.IncompatibleAssignment},
		{"incompatible comparison", "bool b;\nb = 1 < \"a\";", report.IncompatibleComparison},
		{"non numeric", "int x;\nx = true + 1;", report.TypeMustBeNumeric},
		{"non integer div", "int x;\nx = 1.5 div 2;", report.TypeMustBeInteger},
		{"non boolean and", "bool b;\nb = 1 and true;", report.TypeMustBeBoolean},
		{"non boolean not", "bool b;\nb = not 1;", report.TypeMustBeBoolean},
		{"invalid sign", "int x;\nx = -true;", report.InvalidSign},
		{"if condition", "if (1) {}", report.TypeMustBeBoolean},
		{"while condition", "while (\"x\") {}", report.TypeMustBeBoolean},
		{"assign constant", "const int c = 1;\nc = 2;", report.InvalidVariable},
		{"assign routine", "print = 2;", report.InvalidVariable},
		{"call non routine", "int x;\nx(1);", report.NameMustBeFunction},
		{"index non array", "int x;\nx[0] = 1;", report.TypeMismatch},
		{"non integer index", "int a[3];\na[true] = 1;", report.TypeMustBeInteger},
		{"void variable", "void v;", report.TypeMismatch},
		{"increment real", "double r;\nr++;", report.IncompatibleAssignment},
		{"print array", "int a[3];\nprint(a);", report.TypeMismatch},
		{"switch on real", "switch (1.5) { case 1: break; }", report.TypeMismatch},
		{"case type", "switch (1) { case 'a': break; }", report.TypeMismatch},
		{"case variable", "int x;\nswitch (1) { case x: break; }", report.InvalidConstant},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := mainOf(t, test.stmts)
			be.Equal(t, an.Errors.Count(), 1)
			be.Equal(t, an.Errors.Diagnostics()[0].Code, test.code)
		})
	}
}

func TestDuplicateCaseConstant(t *testing.T) {
	an := mainOf(t, `int x;
switch (x) {
case 5: x = 1; break;
case 5: x = 2; break;
case 6, 7: x = 3;
}`)

	be.Equal(t, an.Errors.Count(), 1)
	be.Equal(t, an.Errors.CountOf(report.DuplicateCaseConstant), 1)

	an = mainOf(t, "int x;\nswitch (x) { case 1: case 1: case 1: break; }")
	be.Equal(t, an.Errors.CountOf(report.DuplicateCaseConstant), 2)

	an = mainOf(t, "const char a = 'a';\nchar c;\nswitch (c) { case a: break; case 'a': break; }")
	be.Equal(t, an.Errors.CountOf(report.DuplicateCaseConstant), 1)
}

func TestCallArguments(t *testing.T) {
	src := `Program Demo;
double half(double d) {
	return d / 2;
}
void main() {
	double r;
	%s
}
`

	tests := []struct {
		name  string
		stmt  string
		codes []report.ErrorCode
	}{
		{"widened", "r = half(3);", nil},
		{"too many", "r = half(1, 2);", []report.ErrorCode{report.ArgumentCountMismatch}},
		{"too few", "r = half();", []report.ErrorCode{report.ArgumentCountMismatch}},
		{"bad argument", `r = half("x");`, []report.ErrorCode{report.TypeMismatch}},
		{
			"arguments still walked",
			"r = half(1, y);",
			[]report.ErrorCode{report.UndeclaredIdentifier, report.ArgumentCountMismatch},
		},
		{"undeclared routine", "r = halve(y);", []report.ErrorCode{report.UndeclaredIdentifier, report.UndeclaredIdentifier}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := analyze(t, strings.Replace(src, "%s", test.stmt, 1))

			var codes []report.ErrorCode
			for _, diag := range an.Errors.Diagnostics() {
				codes = append(codes, diag.Code)
			}

			be.Equal(t, codes, test.codes)
		})
	}
}

func TestRecursiveCall(t *testing.T) {
	an := analyze(t, `Program Demo;
int fact(int n) {
	if (n <= 1) {
		fact = 1;
	} else {
		fact = n * fact(n - 1);
	}
	return fact;
}
void main() {
	print(fact(5));
}
`)

	be.Equal(t, an.Errors.Count(), 0)
}

func TestForLoop(t *testing.T) {
	tests := []struct {
		name  string
		loop  string
		codes []report.ErrorCode
	}{
		{"comparison", "for (i = 10; i > 0; i--) {}", nil},
		{"declared counter", "for (int j = 0; j < 3; j = j + 1) {}", nil},
		{"boolean variable", "bool b;\nfor (i = 0; b; i++) {}", nil},
		{"integer control", "for (i = 0; i; i++) {}", []report.ErrorCode{report.InvalidControlVariable}},
		{"widening increment", "double r;\nfor (r = 0; r < 3; r = 1) {}", []report.ErrorCode{report.TypeMismatch}},
		{"real increment", "double r;\nfor (r = 0; r < 3; r++) {}", []report.ErrorCode{report.IncompatibleAssignment}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := mainOf(t, "int i;\n"+test.loop)

			var codes []report.ErrorCode
			for _, diag := range an.Errors.Diagnostics() {
				codes = append(codes, diag.Code)
			}

			be.Equal(t, codes, test.codes)
		})
	}
}

func TestControlVariableSpan(t *testing.T) {
	tests := []struct {
		name string
		loop string
	}{
		{"assigned counter", "for (i = 0;\ni;\ni++) {}"},
		{"declared counter", "for (int j = 0;\nj;\nj++) {}"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := mainOf(t, "int i;\n"+test.loop)

			diags := an.Errors.Diagnostics()
			be.Equal(t, len(diags), 1)
			be.Equal(t, diags[0].Code, report.InvalidControlVariable)
			be.Equal(t, diags[0].Line, 4)
		})
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name   string
		def    string
		errors int
	}{
		{"value", "int f() { return 1; }", 0},
		{"widened", "double f() { return 1; }", 0},
		{"bare void", "void f() { return; }", 0},
		{"missing value", "int f() { return; }", 1},
		{"value from void", "void f() { return 1; }", 1},
		{"wrong type", "int f() { return \"x\"; }", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			an := analyze(t, "Program Demo;\n"+test.def+"\nvoid main() { return; }\n")
			be.Equal(t, an.Errors.Count(), test.errors)
			if test.errors > 0 {
				be.Equal(t, an.Errors.Diagnostics()[0].Code, report.TypeMismatch)
			}
		})
	}
}

func TestShadowedPrint(t *testing.T) {
	an := analyze(t, `Program Demo;
void print(int n) {}
void main() {
	print(1, 2);
}
`)

	be.Equal(t, an.Errors.CountOf(report.ArgumentCountMismatch), 1)
}

func TestLocalSlots(t *testing.T) {
	an := analyze(t, `Program Demo;
int f(int a, double b) {
	int c;
	string d;
	return a;
}
void main() {}
`)

	be.Equal(t, an.Errors.Count(), 0)

	f, _ := an.Stack.Global().Lookup("f")
	scope := f.RoutineScope

	var slots []int
	for _, name := range []string{"a", "b", "f", "c", "d"} {
		sym, ok := scope.Lookup(name)
		be.True(t, ok)
		slots = append(slots, sym.Slot)
	}

	be.Equal(t, slots, []int{0, 1, 2, 3, 4})
	be.True(t, f.ReturnVar.Type == types.Integer)
	be.Equal(t, scope.NestingLevel, 2)
	be.True(t, scope.Owner == f)
}

func TestVoidRoutineSlots(t *testing.T) {
	an := analyze(t, `Program Demo;
void g(int a) {
	int b;
	b = a;
}
void main() {}
`)

	be.Equal(t, an.Errors.Count(), 0)

	g, _ := an.Stack.Global().Lookup("g")
	b, _ := g.RoutineScope.Lookup("b")

	be.Equal(t, g.ReturnVar.HasSlot(), false)
	be.Equal(t, b.Slot, 1)
	be.Equal(t, g.RoutineScope.SlotCount(), 2)
}

func TestPrintFormat(t *testing.T) {
	an := mainOf(t, `int i;
double r;
print(i, r, 'c', "s", true);
print("%d items\n", i);
print();`)
	be.Equal(t, an.Errors.Count(), 0)

	stmts := an.Program.Executable.Stmts

	format, args := PrintFormat(an.Notes, stmts[2].(*ast.CallStmt).Call)
	be.Equal(t, format, "%d %f %c %s %b")
	be.Equal(t, len(args), 5)

	format, args = PrintFormat(an.Notes, stmts[3].(*ast.CallStmt).Call)
	be.Equal(t, format, `%d items\n`)
	be.Equal(t, len(args), 1)

	format, args = PrintFormat(an.Notes, stmts[4].(*ast.CallStmt).Call)
	be.Equal(t, format, "")
	be.Equal(t, len(args), 0)
}

func TestMissingAnnotationIsInternalError(t *testing.T) {
	an := mainOf(t, "")

	var ice *report.ICE
	func() {
		defer report.CatchICE(&ice)
		an.Notes.TypeOf(&ast.Variable{ASTBase: ast.NewASTBaseOn(9999, nil)})
	}()

	be.True(t, ice != nil)
}

func TestDoubleAnnotationIsInternalError(t *testing.T) {
	notes := newAnnotations()
	node := &ast.IntLit{ASTBase: ast.NewASTBaseOn(1, nil)}
	notes.setType(node, types.Integer)

	var ice *report.ICE
	func() {
		defer report.CatchICE(&ice)
		notes.setType(node, types.Integer)
	}()

	be.True(t, ice != nil)
}
