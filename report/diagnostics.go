package report

import "fmt"

// ErrorCode is the stable numeric code identifying a kind of diagnostic.
type ErrorCode int

// Enumeration of syntax error codes.
const (
	UnexpectedToken ErrorCode = iota + 1
	MalformedToken
	MissingMain
	TooManyErrors
)

// Enumeration of semantic error codes.
const (
	RedeclaredIdentifier ErrorCode = iota + 100
	UndeclaredIdentifier
	InvalidConstant
	InvalidVariable
	NameMustBeFunction
	IncompatibleAssignment
	IncompatibleComparison
	TypeMismatch
	TypeMustBeBoolean
	TypeMustBeNumeric
	TypeMustBeInteger
	InvalidSign
	InvalidControlVariable
	DuplicateCaseConstant
	ArgumentCountMismatch
)

// codeMessages maps each error code to its summary message.
var codeMessages = map[ErrorCode]string{
	UnexpectedToken: "Unexpected token",
	MalformedToken:  "Malformed token",
	MissingMain:     "Missing main routine",
	TooManyErrors:   "Too many syntax errors",

	RedeclaredIdentifier:   "Redeclared identifier",
	UndeclaredIdentifier:   "Undeclared identifier",
	InvalidConstant:        "Invalid constant",
	InvalidVariable:        "Invalid variable",
	NameMustBeFunction:     "Name must be a function",
	IncompatibleAssignment: "Incompatible assignment",
	IncompatibleComparison: "Incompatible comparison",
	TypeMismatch:           "Mismatched datatype",
	TypeMustBeBoolean:      "Datatype must be boolean",
	TypeMustBeNumeric:      "Datatype must be integer or real",
	TypeMustBeInteger:      "Datatype must be integer",
	InvalidSign:            "Invalid sign",
	InvalidControlVariable: "Invalid control variable datatype",
	DuplicateCaseConstant:  "Duplicate CASE constant",
	ArgumentCountMismatch:  "Invalid number of arguments",
}

func (code ErrorCode) String() string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}

	return fmt.Sprintf("error %d", int(code))
}

// -----------------------------------------------------------------------------

// Diagnostic is a single error recorded by a compilation pass.
type Diagnostic struct {
	// The kind of error that occurred.
	Code ErrorCode

	// The one-indexed source line the error occurred on.
	Line int

	// The span of the erroneous source text.  This may be nil.
	Span *TextSpan

	// Additional detail about the error: usually the offending text.
	Detail string
}

// Message returns the full message for the diagnostic.
func (d Diagnostic) Message() string {
	if d.Detail == "" {
		return d.Code.String()
	}

	return fmt.Sprintf("%s: %s", d.Code, d.Detail)
}

// ErrorHandler is the counter-based error handler of a single compilation
// pass.  Errors are accumulated, never thrown: the pass keeps running and the
// caller inspects the count once the pass is done.
type ErrorHandler struct {
	// The name of the pass this handler belongs to: eg. "syntax".
	Pass string

	diagnostics []Diagnostic
}

// NewErrorHandler creates a new error handler for the named pass.
func NewErrorHandler(pass string) *ErrorHandler {
	return &ErrorHandler{Pass: pass}
}

// Flag records an error of the given kind over the given span.
func (eh *ErrorHandler) Flag(code ErrorCode, span *TextSpan, detail string, args ...interface{}) {
	eh.diagnostics = append(eh.diagnostics, Diagnostic{
		Code:   code,
		Line:   span.Line(),
		Span:   span,
		Detail: fmt.Sprintf(detail, args...),
	})
}

// Count returns the number of errors recorded so far.
func (eh *ErrorHandler) Count() int {
	return len(eh.diagnostics)
}

// Diagnostics returns the recorded errors in the order they were flagged.
func (eh *ErrorHandler) Diagnostics() []Diagnostic {
	return eh.diagnostics
}

// CountOf returns the number of recorded errors with the given code.
func (eh *ErrorHandler) CountOf(code ErrorCode) int {
	n := 0
	for _, d := range eh.diagnostics {
		if d.Code == code {
			n++
		}
	}

	return n
}
