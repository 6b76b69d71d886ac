package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"subc/config"
	"subc/report"
)

func newTestCompiler(t *testing.T, src string) (*Compiler, string) {
	t.Helper()
	report.InitReporter(report.LogLevelSilent)

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "demo.subc")
	be.Err(t, ioutil.WriteFile(srcPath, []byte(src), 0644), nil)

	cfg := config.Default()
	cfg.Build.OutputDir = filepath.Join(dir, "out")
	return NewCompiler(srcPath, cfg, false), cfg.Build.OutputDir
}

func TestCompileWritesAssembly(t *testing.T) {
	c, outputDir := newTestCompiler(t, `Program Hello;
void main() {
	print("hello\n");
}
`)

	be.True(t, runCompiler(c, true))
	be.Equal(t, c.errorCount, 0)
	be.Equal(t, c.outputPath, filepath.Join(outputDir, "Hello.j"))

	asm, err := ioutil.ReadFile(c.outputPath)
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(string(asm), "; Program Hello\n.class public Hello\n"))
}

func TestCheckWritesNothing(t *testing.T) {
	c, outputDir := newTestCompiler(t, "Program Hello;\nvoid main() {\n}\n")

	be.True(t, runCompiler(c, false))
	be.Equal(t, c.outputPath, "")

	_, err := os.Stat(outputDir)
	be.Err(t, err, os.ErrNotExist)
}

func TestSyntaxErrorsStopCompilation(t *testing.T) {
	c, outputDir := newTestCompiler(t, "Program Hello;\nvoid main() {\n\tint = 3;\n}\n")

	be.Equal(t, runCompiler(c, true), false)
	be.True(t, c.errorCount > 0)

	_, err := os.Stat(outputDir)
	be.Err(t, err, os.ErrNotExist)
}

func TestSemanticErrorsStopCompilation(t *testing.T) {
	c, outputDir := newTestCompiler(t, "Program Hello;\nvoid main() {\n\tx = 3;\n}\n")

	be.Equal(t, runCompiler(c, true), false)
	be.Equal(t, c.errorCount, 1)

	_, err := os.Stat(outputDir)
	be.Err(t, err, os.ErrNotExist)
}

func TestMissingSource(t *testing.T) {
	report.InitReporter(report.LogLevelSilent)
	c := NewCompiler(filepath.Join(t.TempDir(), "missing.subc"), config.Default(), false)

	be.Equal(t, runCompiler(c, true), false)
	be.Equal(t, c.errorCount, 1)
}
