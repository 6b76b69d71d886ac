package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Internal Compiler Error")
	ErrorColorFG.Println(" " + message)
	InfoColorFG.Println("This error was not supposed to happen: it is a bug in the compiler.")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	fmt.Print("\n")
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// displayStdError displays a standard Go error.
func displayStdError(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// displayWarning displays a warning message.
func displayWarning(tag, message string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + message)
}

// displayInfo displays an informational message.
func displayInfo(tag, message string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------

// displayDiagnostic displays a single compilation error along with the source
// text it occurred over.
func displayDiagnostic(reprPath string, lines []string, pass string, d Diagnostic) {
	fmt.Print("\n-- ")

	label := fmt.Sprintf("%s error %03d", pass, int(d.Code))
	ErrorStyleBG.Print(label)
	fmt.Print(" ")

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(reprPath) - len(label) - 1
	if dashCount < 2 {
		dashCount = 2
	}

	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(reprPath)

	if d.Span == nil {
		fmt.Println(d.Message())
	} else {
		fmt.Printf("%d:%d: %s\n\n", d.Span.StartLine+1, d.Span.StartCol+1, d.Message())
		displaySourceText(lines, d.Span)
	}
}

// displaySourceText displays the segment of source text covered by a span
// with carets underlining the covered columns.
func displaySourceText(srcLines []string, span *TextSpan) {
	var lines []string
	for ln := span.StartLine; ln <= span.EndLine && ln < len(srcLines); ln++ {
		lines = append(lines, strings.ReplaceAll(srcLines[ln], "\t", "    "))
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := len(line) - len(strings.TrimLeft(line, " "))
		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The first line is underlined from the start column, every later
		// line from its first visible character.
		prefix := 0
		if i == 0 {
			prefix = span.StartCol - minIndent
		}

		// The last line is underlined up to the end column, every earlier
		// line to its end.
		end := len(line) - minIndent
		if i == len(lines)-1 && span.EndCol-minIndent < end {
			end = span.EndCol - minIndent
		}

		if prefix < 0 {
			prefix = 0
		}

		count := end - prefix
		if count < 1 {
			count = 1
		}

		fmt.Print(strings.Repeat(" ", prefix))
		ErrorColorFG.Println(strings.Repeat("^", count))
	}
}

// displayPassCount displays the error count of a compilation pass.
func displayPassCount(pass string, count int) {
	fmt.Printf("%19s: ", pass+" errors")
	if count == 0 {
		SuccessColorFG.Println(0)
	} else {
		ErrorColorFG.Println(count)
	}
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays the compiler information before compilation.
func displayCompileHeader(version, srcPath string) {
	fmt.Print("subc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- compiling: ")
	InfoColorFG.Println(srcPath)
}

// phaseSpinner stores the current phase spinner.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Generating")

// displayBeginPhase displays the beginning of a compilation phase.
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase.
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(errorCount, warningCount int, outputPath string) {
	fmt.Print("\n")

	if errorCount == 0 {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}

	if errorCount == 0 && outputPath != "" {
		fmt.Print("output written to ")
		InfoColorFG.Println(outputPath)
	}
}
