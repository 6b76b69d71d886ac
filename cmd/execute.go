package cmd

import (
	"os"

	"github.com/ComedicChimera/olive"

	"subc/config"
	"subc/report"
)

// Execute is the main entry point for the `subc` CLI utility
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("subc", "subc compiles SubC programs into Jasmin assembly", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, report.LogLevelNames)

	compileCmd := cli.AddSubcommand("compile", "compile a source file", true)
	compileCmd.AddPrimaryArg("source-path", "the path to the source file to compile", true)
	compileCmd.AddStringArg("output-dir", "o", "the directory to write the assembly to", false)
	compileCmd.AddStringArg("config", "c", "the path to the configuration file", false)
	compileCmd.AddFlag("listing", "l", "display a numbered listing of the source")
	compileCmd.AddFlag("xref", "x", "display the cross reference of the declared symbols")
	compileCmd.AddFlag("dump", "d", "dump the syntax tree after analysis")

	checkCmd := cli.AddSubcommand("check", "check a source file for errors", true)
	checkCmd.AddPrimaryArg("source-path", "the path to the source file to check", true)
	checkCmd.AddStringArg("config", "c", "the path to the configuration file", false)
	checkCmd.AddFlag("listing", "l", "display a numbered listing of the source")
	checkCmd.AddFlag("xref", "x", "display the cross reference of the declared symbols")

	cli.AddSubcommand("version", "print the subc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	logLevel := ""
	if logLvlArg, ok := result.Arguments["loglevel"]; ok {
		logLevel = logLvlArg.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "compile":
		execCompileCommand(subResult, logLevel, true)
	case "check":
		execCompileCommand(subResult, logLevel, false)
	case "version":
		report.ReportInfo("subc Version", config.CompilerVersion)
	}
}

// execCompileCommand executes the compile and check subcommands.
// Generation only runs if shouldGenerate is set.
func execCompileCommand(result *olive.ArgParseResult, logLevel string, shouldGenerate bool) {
	srcPath, _ := result.PrimaryArg()

	cfg := loadConfig(result, srcPath)
	if logLevel != "" {
		cfg.Build.LogLevel = logLevel
	}

	if outputDir, ok := result.Arguments["output-dir"]; ok {
		cfg.Build.OutputDir = outputDir.(string)
	}

	if result.HasFlag("listing") {
		cfg.Listing.Source = true
	}

	if result.HasFlag("xref") {
		cfg.Listing.XRef = true
	}

	report.InitReporter(report.LogLevelFromName(cfg.Build.LogLevel))
	report.ReportCompileHeader(config.CompilerVersion, srcPath)

	c := NewCompiler(srcPath, cfg, shouldGenerate && result.HasFlag("dump"))
	ok := runCompiler(c, shouldGenerate)

	report.ReportCompilationFinished(c.errorCount, c.outputPath)
	if !ok {
		os.Exit(1)
	}
}

// loadConfig loads the configuration selected by the `config` argument or the
// one found next to the source file.  Missing both, the default configuration
// is used.
func loadConfig(result *olive.ArgParseResult, srcPath string) *config.Config {
	path, found := "", false
	if configArg, ok := result.Arguments["config"]; ok {
		path, found = configArg.(string), true
	} else {
		path, found = config.Find(srcPath)
	}

	if !found {
		return config.Default()
	}

	cfg, warnings, err := config.Load(path)
	if err != nil {
		report.ReportFatal("%s", err.Error())
	}

	for _, warning := range warnings {
		report.ReportWarning("Config Warning", "%s", warning)
	}

	return cfg
}

// runCompiler runs all the passes of the compiler.  Internal compiler errors
// raised by any pass end the program.
func runCompiler(c *Compiler, shouldGenerate bool) (ok bool) {
	var ice *report.ICE
	func() {
		defer report.CatchICE(&ice)

		prog, an, analyzed := c.Analyze()
		if !analyzed || !shouldGenerate {
			ok = analyzed
			return
		}

		ok = c.Generate(prog, an)
	}()

	if ice != nil {
		report.ReportEndPhase(false)
		report.ExitWithICE(ice)
	}

	return
}
