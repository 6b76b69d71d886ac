package listing

import (
	"bufio"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"subc/report"
	"subc/syntax"
	"subc/walk"
)

func TestSource(t *testing.T) {
	var sb strings.Builder
	err := Source(&sb, []byte("Program Demo;\r\nvoid main() {\n}"))

	be.Err(t, err, nil)
	be.Equal(t, sb.String(), "   1  Program Demo;\n   2  void main() {\n   3  }\n")
}

func TestCrossReference(t *testing.T) {
	src := `Program Demo;
int total;
int square(int n) {
	return n * n;
}
void main() {
	total = square(total);
}
`

	errs := report.NewErrorHandler("syntax")
	prog := syntax.NewParser(bufio.NewReader(strings.NewReader(src)), errs).Parse()
	be.Equal(t, errs.Count(), 0)

	an := walk.Analyze(prog)
	be.Equal(t, an.Errors.Count(), 0)

	var sb strings.Builder
	be.Err(t, CrossReference(&sb, an.Program), nil)

	out := sb.String()
	be.True(t, strings.Contains(out, "Program Demo"))
	be.True(t, strings.Contains(out, "Routine square"))
	be.True(t, strings.Index(out, "Program Demo") < strings.Index(out, "Routine square"))

	// total is declared on line 2 and used twice on line 7.
	be.True(t, strings.Contains(out, "2, 7, 7"))
	be.True(t, strings.Contains(out, "3, 7"))
	be.True(t, strings.Contains(out, "value parameter"))
}

func TestFormatting(t *testing.T) {
	be.Equal(t, formatLines(nil), "")
	be.Equal(t, formatLines([]int{1, 4}), "1, 4")
}
