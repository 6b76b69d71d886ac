package generate

import (
	"bufio"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"subc/report"
	"subc/syntax"
	"subc/walk"
)

func generate(t *testing.T, src string) string {
	t.Helper()

	errs := report.NewErrorHandler("syntax")
	prog := syntax.NewParser(bufio.NewReader(strings.NewReader(src)), errs).Parse()
	if errs.Count() != 0 {
		t.Fatalf("%d syntax errors: %v", errs.Count(), errs.Diagnostics())
	}

	an := walk.Analyze(prog)
	if an.Errors.Count() != 0 {
		t.Fatalf("%d semantic errors: %v", an.Errors.Count(), an.Errors.Diagnostics())
	}

	return Generate(prog, an)
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestClassLayout(t *testing.T) {
	out := generate(t, `Program Demo;
int x;
string s;
double r[4];
void main() {
}
`)

	be.True(t, strings.HasPrefix(out, lines(
		"; Program Demo",
		".class public Demo",
		".super java/lang/Object",
		"",
		".field private static _sysin Ljava/util/Scanner;",
		".field private static r [F",
		".field private static s Ljava/lang/String;",
		".field private static x I",
	)))

	// Global arrays and strings are allocated by the static initializer.
	be.True(t, strings.Contains(out, lines(
		"\tputstatic Demo/_sysin Ljava/util/Scanner;",
		"\ticonst_4",
		"\tnewarray float",
		"\tputstatic Demo/r [F",
		"\tldc \"\"",
		"\tputstatic Demo/s Ljava/lang/String;",
		"\treturn",
	)))

	be.True(t, strings.Contains(out, ".method public <init>()V\n\n.var 0 is this LDemo;\n"))
	be.True(t, strings.Contains(out, ".method public static main([Ljava/lang/String;)V\n"))
	be.True(t, strings.HasSuffix(out, lines(
		"\tinvokevirtual java/io/PrintStream/printf(Ljava/lang/String;[Ljava/lang/Object;)Ljava/io/PrintStream;",
		"\tpop",
		"\treturn",
		"",
		".limit locals 5",
		".limit stack 7",
		".end method",
	)))
}

func TestAssignAndPrint(t *testing.T) {
	out := generate(t, `Program Demo;
int x;
void main() {
	x = 1 + 2;
	print(x);
}
`)

	be.True(t, strings.Contains(out, lines(
		"\ticonst_1",
		"\ticonst_2",
		"\tiadd",
		"\tputstatic Demo/x I",
		"\tgetstatic java/lang/System/out Ljava/io/PrintStream;",
		"\tldc \"%d\"",
		"\ticonst_1",
		"\tanewarray java/lang/Object",
		"\tdup",
		"\ticonst_0",
		"\tgetstatic Demo/x I",
		"\tinvokestatic java/lang/Integer/valueOf(I)Ljava/lang/Integer;",
		"\taastore",
		"\tinvokevirtual java/io/PrintStream/printf(Ljava/lang/String;[Ljava/lang/Object;)Ljava/io/PrintStream;",
		"\tpop",
	)))
}

func TestPrintLiteralOnly(t *testing.T) {
	out := generate(t, `Program Demo;
void main() {
	print("hello\n");
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic java/lang/System/out Ljava/io/PrintStream;",
		"\tldc \"hello\\n\"",
		"\tinvokevirtual java/io/PrintStream/print(Ljava/lang/String;)V",
	)))
}

func TestRoutine(t *testing.T) {
	out := generate(t, `Program Demo;
int square(int n) {
	return n * n;
}
void main() {
	print(square(3));
}
`)

	be.True(t, strings.Contains(out, lines(
		"; FUNCTION square",
		"",
		".method private static square(I)I",
		"",
		".var 0 is n I",
		".var 1 is square I",
		"",
		"\ticonst_0",
		"\tistore_1",
		"",
		"\tiload_0",
		"\tiload_0",
		"\timul",
		"\tistore_1",
		"\tgoto L001",
		"L001:",
		"\tiload_1",
		"\tireturn",
		"",
		".limit locals 2",
		".limit stack 2",
		".end method",
	)))

	be.True(t, strings.Contains(out, "\ticonst_3\n\tinvokestatic Demo/square(I)I\n"))
}

func TestVoidRoutine(t *testing.T) {
	out := generate(t, `Program Demo;
void greet(string who) {
	print("hi %s\n", who);
}
void main() {
	greet("you");
}
`)

	be.True(t, strings.Contains(out, ".method private static greet(Ljava/lang/String;)V\n\n.var 0 is who Ljava/lang/String;\n\n"))
	be.True(t, !strings.Contains(out, "is greet"))
	be.True(t, strings.Contains(out, "\tpop\nL001:\n\treturn\n\n.limit locals 1\n"))
	be.True(t, strings.Contains(out, "\tldc \"you\"\n\tinvokestatic Demo/greet(Ljava/lang/String;)V\n"))
}

func TestVoidRoutineLocals(t *testing.T) {
	out := generate(t, `Program Demo;
void count() {
	int n;
	n = 1;
}
void main() {
	count();
}
`)

	// Void routines have no return variable, so locals start at slot 0.
	be.True(t, strings.Contains(out, lines(
		".method private static count()V",
		"",
		".var 0 is n I",
		"",
		"\ticonst_0",
		"\tistore_0",
		"",
		"\ticonst_1",
		"\tistore_0",
	)))
	be.True(t, strings.Contains(out, "L001:\n\treturn\n\n.limit locals 1\n"))
}

func TestCallResultDiscarded(t *testing.T) {
	out := generate(t, `Program Demo;
int one() {
	return 1;
}
void main() {
	one();
}
`)

	be.True(t, strings.Contains(out, "\tinvokestatic Demo/one()I\n\tpop\n"))
}

func TestForLoop(t *testing.T) {
	out := generate(t, `Program Demo;
int i;
void main() {
	for (i = 0; i < 3; i++) {
		print(i);
	}
}
`)

	be.True(t, strings.Contains(out, lines(
		"\ticonst_0",
		"\tputstatic Demo/i I",
		"L002:",
		"\tgetstatic Demo/i I",
		"\ticonst_3",
		"\tif_icmplt L003",
		"\tgoto L004",
		"L003:",
	)))

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/i I",
		"\ticonst_1",
		"\tiadd",
		"\tputstatic Demo/i I",
		"\tgoto L002",
		"L004:",
		"L001:",
	)))
}

func TestWhileLoop(t *testing.T) {
	out := generate(t, `Program Demo;
bool done;
void main() {
	while (not done) {
		done = true;
	}
}
`)

	be.True(t, strings.Contains(out, lines(
		"L002:",
		"\tgetstatic Demo/done Z",
		"\ticonst_1",
		"\tixor",
		"\tifeq L003",
		"\ticonst_1",
		"\tputstatic Demo/done Z",
		"\tgoto L002",
		"L003:",
	)))
}

func TestIfElse(t *testing.T) {
	out := generate(t, `Program Demo;
bool b;
int x;
void main() {
	if (b) x = 1; else x = 2;
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/b Z",
		"\tifeq L003",
		"\ticonst_1",
		"\tputstatic Demo/x I",
		"\tgoto L002",
		"L003:",
		"\ticonst_2",
		"\tputstatic Demo/x I",
		"L002:",
	)))
}

func TestSwitchSourceOrder(t *testing.T) {
	out := generate(t, `Program Demo;
int x;
void main() {
	switch (x) {
	case 2: print("two"); break;
	case 1: print("one");
	default: print("other");
	}
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/x I",
		"\tlookupswitch",
		"\t  1: L003",
		"\t  2: L002",
		"\t  default: L004",
		"L002:",
	)))

	// The branch without a break falls through into the default branch.
	be.True(t, strings.Contains(out, "print(Ljava/lang/String;)V\n\tgoto L005\nL003:\n"))
	be.True(t, strings.Contains(out, "\tldc \"one\"\n\tinvokevirtual java/io/PrintStream/print(Ljava/lang/String;)V\nL004:\n"))
	be.True(t, strings.Index(out, "L004:") < strings.Index(out, "L005:"))
}

func TestComparisonValue(t *testing.T) {
	out := generate(t, `Program Demo;
int x;
bool b;
void main() {
	b = x < 3;
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/x I",
		"\ticonst_3",
		"\tif_icmplt L002",
		"\ticonst_0",
		"\tgoto L003",
		"L002:",
		"\ticonst_1",
		"L003:",
		"\tputstatic Demo/b Z",
	)))
}

func TestRealConversion(t *testing.T) {
	out := generate(t, `Program Demo;
int n;
double r;
void main() {
	r = 1;
	r = n + 2.5;
	r = n / 2;
}
`)

	be.True(t, strings.Contains(out, "\ticonst_1\n\ti2f\n\tputstatic Demo/r F\n"))
	be.True(t, strings.Contains(out, "\tgetstatic Demo/n I\n\ti2f\n\tldc 2.5\n\tfadd\n"))
	be.True(t, strings.Contains(out, "\tgetstatic Demo/n I\n\ti2f\n\ticonst_2\n\ti2f\n\tfdiv\n"))
}

func TestStringConcat(t *testing.T) {
	out := generate(t, `Program Demo;
string s;
void main() {
	s = s + "!";
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/s Ljava/lang/String;",
		"\tnew java/lang/StringBuilder",
		"\tdup_x1",
		"\tswap",
		"\tinvokestatic java/lang/String/valueOf(Ljava/lang/Object;)Ljava/lang/String;",
		"\tinvokespecial java/lang/StringBuilder/<init>(Ljava/lang/String;)V",
		"\tldc \"!\"",
		"\tinvokevirtual java/lang/StringBuilder/append(Ljava/lang/String;)Ljava/lang/StringBuilder;",
		"\tinvokevirtual java/lang/StringBuilder/toString()Ljava/lang/String;",
		"\tputstatic Demo/s Ljava/lang/String;",
	)))
}

func TestArrayAccess(t *testing.T) {
	out := generate(t, `Program Demo;
int a[3];
void main() {
	a[1] = a[0];
	a[2]++;
}
`)

	be.True(t, strings.Contains(out, lines(
		"\tgetstatic Demo/a [I",
		"\ticonst_1",
		"\tgetstatic Demo/a [I",
		"\ticonst_0",
		"\tiaload",
		"\tiastore",
		"\tgetstatic Demo/a [I",
		"\ticonst_2",
		"\tdup2",
		"\tiaload",
		"\ticonst_1",
		"\tiadd",
		"\tiastore",
	)))
}

func TestConstantsAreFolded(t *testing.T) {
	out := generate(t, `Program Demo;
const int big = 1000;
int x;
void main() {
	x = big;
}
`)

	be.True(t, strings.Contains(out, "\tsipush 1000\n\tputstatic Demo/x I\n"))
	be.True(t, !strings.Contains(out, "Demo/big"))
}

func TestRoutineLocals(t *testing.T) {
	out := generate(t, `Program Demo;
double avg(int a, int b) {
	int sum;
	sum = a + b;
	return sum / 2;
}
void main() {
	print(avg(1, 2));
}
`)

	be.True(t, strings.Contains(out, lines(
		".var 0 is a I",
		".var 1 is b I",
		".var 2 is avg F",
		".var 3 is sum I",
		"",
		"\tfconst_0",
		"\tfstore_2",
		"\ticonst_0",
		"\tistore_3",
	)))
	be.True(t, strings.Contains(out, "L001:\n\tfload_2\n\tfreturn\n\n.limit locals 4\n"))
	be.True(t, strings.Contains(out, "\tinvokestatic Demo/avg(II)F\n\tinvokestatic java/lang/Float/valueOf(F)Ljava/lang/Float;\n"))
}

func TestLabelsAreUnique(t *testing.T) {
	out := generate(t, `Program Demo;
int i;
void main() {
	while (i < 2) { i++; }
	while (i < 4) { i++; }
}
`)

	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "L") && strings.HasSuffix(line, ":") {
			be.True(t, !seen[line])
			seen[line] = true
		}
	}

	be.Equal(t, len(seen), 9)
}
