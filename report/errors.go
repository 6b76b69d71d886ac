package report

import "fmt"

// LocalCompileError is a compilation error raised inside a single source file
// and thus doesn't need to carry the file along with it.  The parser panics
// with these errors and recovers from them at statement boundaries.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// ICE is an internal compiler error: a bug or unexpected condition occurring
// within the compiler itself.  These are never caused by erroneous input and
// are not intended to ever happen.
type ICE struct {
	Message string
}

func (ice *ICE) Error() string {
	return "internal compiler error: " + ice.Message
}

// ReportICE raises an internal compiler error.  It panics with an `*ICE` which
// unwinds the whole compilation: the driver recovers it with CatchICE.
func ReportICE(message string, args ...interface{}) {
	panic(&ICE{Message: fmt.Sprintf(message, args...)})
}

// CatchICE recovers an internal compiler error raised during compilation and
// returns it.  Any other panic is propagated unchanged.
// NB: This function must ALWAYS be deferred directly.
func CatchICE(dest **ICE) {
	if x := recover(); x != nil {
		if ice, ok := x.(*ICE); ok {
			*dest = ice
			return
		}

		panic(x)
	}
}
