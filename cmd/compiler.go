package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/kr/pretty"

	"subc/ast"
	"subc/config"
	"subc/generate"
	"subc/listing"
	"subc/report"
	"subc/syntax"
	"subc/walk"
)

// Compiler represents the state of a single compilation.
type Compiler struct {
	// srcPath is the path to the source file being compiled.
	srcPath string

	// src is the contents of the source file.
	src []byte

	// cfg is the build configuration: the configuration file overridden by
	// command line arguments.
	cfg *config.Config

	// dumpTree indicates whether the annotated syntax tree should be dumped
	// after analysis.
	dumpTree bool

	// errorCount is the total number of errors reported by all passes.
	errorCount int

	// outputPath is the path the generated assembly was written to.  It is
	// empty until generation succeeds.
	outputPath string
}

// NewCompiler creates a new compiler for the given source file.
func NewCompiler(srcPath string, cfg *config.Config, dumpTree bool) *Compiler {
	return &Compiler{srcPath: srcPath, cfg: cfg, dumpTree: dumpTree}
}

// Analyze runs the syntax and semantic passes of the compiler.  It returns
// the analyzed program and whether both passes succeeded without errors.
func (c *Compiler) Analyze() (*ast.Program, *walk.Analysis, bool) {
	src, err := ioutil.ReadFile(c.srcPath)
	if err != nil {
		report.ReportStdError("Source Error", fmt.Errorf("unable to read source file: %w", err))
		c.errorCount++
		return nil, nil, false
	}
	c.src = src

	// syntax pass
	report.ReportBeginPhase("Parsing")
	syntaxErrs := report.NewErrorHandler("syntax")
	prog := syntax.NewParser(bufio.NewReader(bytes.NewReader(src)), syntaxErrs).Parse()
	report.ReportEndPhase(syntaxErrs.Count() == 0)

	c.finishPass(syntaxErrs)
	if c.cfg.Listing.Source {
		c.writeListing(func() error { return listing.Source(os.Stdout, c.src) })
	}

	if syntaxErrs.Count() > 0 {
		return nil, nil, false
	}

	// semantic pass
	report.ReportBeginPhase("Analyzing")
	an := walk.Analyze(prog)
	report.ReportEndPhase(an.Errors.Count() == 0)

	c.finishPass(an.Errors)
	if c.cfg.Listing.XRef {
		c.writeListing(func() error { return listing.CrossReference(os.Stdout, an.Program) })
	}

	if c.dumpTree {
		pretty.Println(prog)
	}

	return prog, an, an.Errors.Count() == 0
}

// Generate runs the generation pass and writes the assembly to the output
// directory.  The program must have been analyzed without errors.
func (c *Compiler) Generate(prog *ast.Program, an *walk.Analysis) bool {
	report.ReportBeginPhase("Generating")
	asm := generate.Generate(prog, an)

	outputPath := filepath.Join(c.cfg.Build.OutputDir, generate.ClassName(an)+".j")
	if err := writeOutput(outputPath, asm); err != nil {
		report.ReportEndPhase(false)
		report.ReportStdError("Output Error", err)
		c.errorCount++
		return false
	}

	report.ReportEndPhase(true)
	c.outputPath = outputPath
	return true
}

// finishPass displays the errors of a finished pass along with its count.
func (c *Compiler) finishPass(eh *report.ErrorHandler) {
	report.ReportDiagnostics(c.srcPath, c.src, eh)
	report.ReportPassCount(eh.Pass, eh.Count())
	c.errorCount += eh.Count()
}

// writeListing writes a listing to standard out, reporting any failure.
func (c *Compiler) writeListing(write func() error) {
	if err := write(); err != nil {
		report.ReportStdError("Listing Error", err)
	}
}

// writeOutput writes the generated assembly to the output path, creating its
// directory if necessary.
func writeOutput(outputPath, asm string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := ioutil.WriteFile(outputPath, []byte(asm), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}

	return nil
}
