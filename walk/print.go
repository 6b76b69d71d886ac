package walk

import (
	"strings"

	"subc/ast"
	"subc/types"
)

// printVerbs maps each printable type to its format verb.
var printVerbs = map[*types.Type]string{
	types.Integer: "%d",
	types.Real:    "%f",
	types.Char:    "%c",
	types.String:  "%s",
	types.Boolean: "%b",
}

// PrintFormat returns the format string of a call to print and the arguments
// to be formatted.  If the first argument is a string literal, it is the
// format.  Otherwise, the format is built from the argument types with one
// verb per argument separated by spaces.
func PrintFormat(notes *Annotations, call *ast.Call) (string, []*ast.Expr) {
	if len(call.Args) > 0 {
		if factor, ok := call.Args[0].SoleFactor(); ok {
			if lit, ok := factor.(*ast.StringLit); ok {
				return lit.Text, call.Args[1:]
			}
		}
	}

	verbs := make([]string, len(call.Args))
	for i, arg := range call.Args {
		verbs[i] = printVerbs[notes.TypeOf(arg)]
	}

	return strings.Join(verbs, " "), call.Args
}
