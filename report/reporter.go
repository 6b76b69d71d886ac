package report

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different display calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of warnings displayed so far.
	warnCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// LogLevelNames lists the names of the log levels in order.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// LogLevelFromName converts a log level name into its enumerated value.  An
// unknown name selects the verbose level.
func LogLevelFromName(name string) int {
	for i, levelName := range LogLevelNames {
		if strings.EqualFold(levelName, name) {
			return i
		}
	}

	return LogLevelVerbose
}

// rep is the global reporter instance.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// InitReporter sets the log level of the global reporter.
func InitReporter(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
	rep.warnCount = 0
}

// -----------------------------------------------------------------------------

// ReportDiagnostics displays every diagnostic recorded by an error handler.
// The source text is used to display the erroneous lines.
func ReportDiagnostics(reprPath string, src []byte, eh *ErrorHandler) {
	if rep.logLevel == LogLevelSilent || eh.Count() == 0 {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	lines := strings.Split(strings.ReplaceAll(string(src), "\r\n", "\n"), "\n")
	for _, d := range eh.Diagnostics() {
		displayDiagnostic(reprPath, lines, eh.Pass, d)
	}
}

// ReportPassCount displays the number of errors a compilation pass reported.
// This is always displayed unless the reporter is silent.
func ReportPassCount(pass string, count int) {
	if rep.logLevel == LogLevelSilent {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	displayPassCount(pass, count)
}

// ReportWarning displays a warning message.
func ReportWarning(tag, message string, args ...interface{}) {
	if rep.logLevel < LogLevelWarn {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warnCount++
	displayWarning(tag, fmt.Sprintf(message, args...))
}

// ReportInfo displays an informational message.  Only shown at verbose level.
func ReportInfo(tag, message string, args ...interface{}) {
	if rep.logLevel < LogLevelVerbose {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	displayInfo(tag, fmt.Sprintf(message, args...))
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(tag string, err error) {
	if rep.logLevel == LogLevelSilent {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	displayStdError(tag, err)
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that result from invalid usage: a missing source file, a malformed
// configuration file, etc.
func ReportFatal(message string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		displayFatal(fmt.Sprintf(message, args...))
		rep.m.Unlock()
	}

	os.Exit(1)
}

// ExitWithICE displays an internal compiler error and exits.  ICEs are always
// displayed regardless of log level.
func ExitWithICE(ice *ICE) {
	rep.m.Lock()
	displayICE(ice.Message)
	rep.m.Unlock()

	os.Exit(-1)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.  These provide additional information about the
// compilation process to the user so as to make the compiler more friendly.

// ReportCompileHeader displays the pre-compilation header.
func ReportCompileHeader(version, srcPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(version, srcPath)
	}
}

// ReportBeginPhase displays the start of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		displayBeginPhase(phase)
	}
}

// ReportEndPhase displays the end of the current compilation phase.
func ReportEndPhase(success bool) {
	if rep.logLevel == LogLevelVerbose {
		displayEndPhase(success)
	}
}

// ReportCompilationFinished displays the concluding message for compilation.
func ReportCompilationFinished(errorCount int, outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(errorCount, rep.warnCount, outputPath)
	}
}
