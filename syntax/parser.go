package syntax

import (
	"bufio"

	"subc/ast"
	"subc/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// MaxSyntaxErrors is the number of syntax errors after which the parser gives
// up on the source file.
const MaxSyntaxErrors = 25

// Parser is the parser for a SubC source file.  It is a recursive descent
// parser: all parsing functions assume that they begin with the parser
// centered on the first token of their production and must consume all tokens
// (including the last) of their production, leaving the parser on the next
// token.  Syntax errors are raised by panicking and are recovered at the
// nearest statement or declaration boundary.
type Parser struct {
	// The lexer for the file being parsed.
	lexer *Lexer

	// The error handler syntax errors are recorded in.
	errs *report.ErrorHandler

	// The token the parser is centered on.
	tok *Token

	// The token the parser was centered on before the current token.
	lookbehind *Token

	// The identity assigned to the next AST node.
	nextID ast.NodeID

	// Whether an unexpected end of file has already been recorded.
	eofReported bool

	// Whether the last error was raised by the lexer.
	lexFailed bool
}

// abortParse is panicked to stop parsing altogether.
type abortParse struct{}

// NewParser creates a new parser for the given source reader.  Syntax errors
// are recorded in errs.
func NewParser(r *bufio.Reader, errs *report.ErrorHandler) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		errs:  errs,
	}
}

// Parse parses the source file and returns its AST.  If the program header
// could not be parsed or too many syntax errors occurred, the returned AST is
// nil.  Callers must check the error handler's count before using the AST.
func (p *Parser) Parse() (prog *ast.Program) {
	defer func() {
		if x := recover(); x != nil {
			if _, ok := x.(abortParse); !ok {
				panic(x)
			}

			prog = nil
		}
	}()

	if !p.recoverFrom(p.next) {
		return nil
	}

	var ok bool
	if prog, ok = p.parseProgram(); !ok {
		return nil
	}

	return prog
}

// -----------------------------------------------------------------------------

// recoverFrom runs a parsing function and catches any syntax error it raises,
// recording it in the error handler.  It returns whether the function
// completed without error.
func (p *Parser) recoverFrom(f func()) (ok bool) {
	defer func() {
		if x := recover(); x != nil {
			cerr, isCompileErr := x.(*report.LocalCompileError)
			if !isCompileErr {
				panic(x)
			}

			p.recordError(cerr)
			ok = false
		}
	}()

	f()
	return true
}

// recordError records a syntax error and aborts parsing if there are too many.
func (p *Parser) recordError(cerr *report.LocalCompileError) {
	atEOF := p.tok != nil && p.tok.Kind == TOK_EOF
	if atEOF && p.eofReported {
		return
	}

	p.eofReported = p.eofReported || atEOF

	code := report.UnexpectedToken
	if p.lexFailed {
		code = report.MalformedToken
		p.lexFailed = false
	}

	p.errs.Flag(code, cerr.Span, "%s", cerr.Message)

	if p.errs.Count() > MaxSyntaxErrors {
		p.errs.Flag(report.TooManyErrors, cerr.Span, "giving up after %d errors", MaxSyntaxErrors)
		panic(abortParse{})
	}
}

// synchronize skips tokens until the parser is past the end of the erroneous
// statement: just after a `;` or on a `}`.  If consumeBrace is set, the
// closing brace is skipped as well.  Malformed tokens encountered while
// skipping are recorded.
func (p *Parser) synchronize(consumeBrace bool) {
	for !p.has(TOK_EOF) {
		if p.has(TOK_SEMI) {
			p.recoverFrom(p.next)
			return
		} else if p.has(TOK_RBRACE) {
			if consumeBrace {
				p.recoverFrom(p.next)
			}

			return
		}

		p.recoverFrom(p.next)
	}
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		p.lexFailed = true

		if cerr, ok := err.(*report.LocalCompileError); ok {
			panic(cerr)
		}

		panic(report.Raise(p.lexer.getSpan(), "failed to read source: %s", err))
	}

	p.lookbehind = p.tok
	p.tok = tok
}

// has returns whether the parser is centered on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// hasOneOf returns whether the parser is centered on a token of one of the
// given kinds.
func (p *Parser) hasOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is centered on a token of the given kind and
// moves forward.  It returns the matched token.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// reject raises an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.tok.Kind == TOK_EOF {
		panic(report.Raise(p.tok.Span, "unexpected end of file"))
	}

	panic(report.Raise(p.tok.Span, "unexpected token: `%s`", p.tok.Value))
}

// error raises a syntax error over the given span.
func (p *Parser) error(span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(span, msg, args...))
}

// -----------------------------------------------------------------------------

// newID returns a fresh AST node identity.
func (p *Parser) newID() ast.NodeID {
	p.nextID++
	return p.nextID
}

// baseOn creates a new AST base over the given span.
func (p *Parser) baseOn(span *report.TextSpan) ast.ASTBase {
	return ast.NewASTBaseOn(p.newID(), span)
}

// baseOver creates a new AST base spanning from the start span to the span of
// the last consumed token.
func (p *Parser) baseOver(start *report.TextSpan) ast.ASTBase {
	return ast.NewASTBaseOver(p.newID(), start, p.lookbehind.Span)
}
