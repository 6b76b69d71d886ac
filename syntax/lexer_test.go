package syntax

import (
	"bufio"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func lexAll(t *testing.T, src string) ([]*Token, error) {
	t.Helper()

	l := NewLexer(bufio.NewReader(strings.NewReader(src)))

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return toks, err
		}

		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

func TestLexTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kinds  []int
		values []string
	}{
		{
			"declaration",
			"int count = 10;",
			[]int{TOK_INT, TOK_IDENT, TOK_ASSIGN, TOK_INTLIT, TOK_SEMI, TOK_EOF},
			[]string{"int", "count", "=", "10", ";", ""},
		},
		{
			"compound symbols",
			"x := y++ <= z-- != w",
			[]int{TOK_IDENT, TOK_ASSIGN, TOK_IDENT, TOK_INC, TOK_LTEQ, TOK_IDENT, TOK_DEC, TOK_NEQ, TOK_IDENT, TOK_EOF},
			nil,
		},
		{
			"word operators",
			"a div b mod c and not d or e",
			[]int{TOK_IDENT, TOK_DIV, TOK_IDENT, TOK_MOD, TOK_IDENT, TOK_AND, TOK_NOT, TOK_IDENT, TOK_OR, TOK_IDENT, TOK_EOF},
			nil,
		},
		{
			"symbol operators",
			"a % b && !c || d / e",
			[]int{TOK_IDENT, TOK_MOD, TOK_IDENT, TOK_AND, TOK_NOT, TOK_IDENT, TOK_OR, TOK_IDENT, TOK_SLASH, TOK_IDENT, TOK_EOF},
			nil,
		},
		{
			"numbers",
			"12 3.5 1e10 2.5E-3",
			[]int{TOK_INTLIT, TOK_FLOATLIT, TOK_FLOATLIT, TOK_FLOATLIT, TOK_EOF},
			[]string{"12", "3.5", "1e10", "2.5E-3", ""},
		},
		{
			"literals",
			`'a' '\n' "hi\tthere" true false`,
			[]int{TOK_CHARLIT, TOK_CHARLIT, TOK_STRINGLIT, TOK_TRUE, TOK_FALSE, TOK_EOF},
			[]string{"a", `\n`, `hi\tthere`, "true", "false", ""},
		},
		{
			"comments",
			"a // line comment\n/* block\n** comment */ b",
			[]int{TOK_IDENT, TOK_IDENT, TOK_EOF},
			[]string{"a", "b", ""},
		},
		{
			"keywords are case sensitive",
			"Program program If if",
			[]int{TOK_PROGRAM, TOK_PROGRAM, TOK_IDENT, TOK_IF, TOK_EOF},
			nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks, err := lexAll(t, test.src)
			be.Err(t, err, nil)

			var kinds []int
			var values []string
			for _, tok := range toks {
				kinds = append(kinds, tok.Kind)
				values = append(values, tok.Value)
			}

			be.Equal(t, kinds, test.kinds)
			if test.values != nil {
				be.Equal(t, values, test.values)
			}
		})
	}
}

func TestLexSpans(t *testing.T) {
	toks, err := lexAll(t, "int x;\n  x = 1;")
	be.Err(t, err, nil)

	x := toks[3]
	be.Equal(t, x.Value, "x")
	be.Equal(t, x.Span.StartLine, 1)
	be.Equal(t, x.Span.StartCol, 2)
	be.Equal(t, x.Span.EndCol, 3)
	be.Equal(t, x.Span.Line(), 2)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unclosed string", `"abc`},
		{"newline in string", "\"ab\ncd\""},
		{"empty char", "''"},
		{"long char", "'ab'"},
		{"bad escape", `"\q"`},
		{"incomplete number", "1."},
		{"unclosed comment", "/* abc"},
		{"unknown rune", "@"},
		{"lone ampersand", "a & b"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := lexAll(t, test.src)
			be.True(t, err != nil)
		})
	}
}
