package syntax

import "subc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.
	Value string

	// The text span over which the token exists.  This may not directly
	// correspond to its value: eg. the value of a string token has the leading
	// quotes trimmed off for convenience.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_PROGRAM = iota
	TOK_CONST

	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_FOR
	TOK_SWITCH
	TOK_CASE
	TOK_DEFAULT
	TOK_BREAK
	TOK_RETURN

	TOK_INT
	TOK_DOUBLE
	TOK_CHAR
	TOK_STRING
	TOK_BOOL
	TOK_VOID

	TOK_TRUE
	TOK_FALSE

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH
	TOK_DIV
	TOK_MOD

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_NOT
	TOK_AND
	TOK_OR

	TOK_ASSIGN
	TOK_INC
	TOK_DEC

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_SEMI
	TOK_COLON

	TOK_IDENT
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_CHARLIT
	TOK_STRINGLIT

	TOK_EOF
)

// isTypeKeyword returns whether the token kind is a type keyword.
func isTypeKeyword(kind int) bool {
	return TOK_INT <= kind && kind <= TOK_VOID
}
