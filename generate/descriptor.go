package generate

import (
	"strings"

	"subc/symtab"
	"subc/types"
)

// routineDescriptor returns the method descriptor of a declared routine.
func routineDescriptor(routine *symtab.Symbol) string {
	var sb strings.Builder

	sb.WriteRune('(')
	for _, param := range routine.Params {
		sb.WriteString(param.Type.Descriptor())
	}

	sb.WriteRune(')')
	sb.WriteString(routine.Type.Descriptor())
	return sb.String()
}

// localPrefix returns the prefix of the local variable and return
// instructions operating on values of the given type: eg. `i` for `iload`.
func localPrefix(typ *types.Type) string {
	switch typ {
	case types.Integer, types.Boolean, types.Char:
		return "i"
	case types.Real:
		return "f"
	default:
		return "a"
	}
}

// arrayPrefix returns the prefix of the array load and store instructions
// operating on elements of the given type: eg. `c` for `castore`.
func arrayPrefix(elem *types.Type) string {
	switch elem {
	case types.Integer:
		return "i"
	case types.Real:
		return "f"
	case types.Boolean:
		return "b"
	case types.Char:
		return "c"
	default:
		return "a"
	}
}

// newArrayType returns the operand of the `newarray` instruction creating
// arrays of the given element type.  The second result is false if the
// elements are references and must be created with `anewarray`.
func newArrayType(elem *types.Type) (string, bool) {
	switch elem {
	case types.Integer:
		return "int", true
	case types.Real:
		return "float", true
	case types.Boolean:
		return "boolean", true
	case types.Char:
		return "char", true
	default:
		return "java/lang/String", false
	}
}

// boxingMethods maps each primitive type to the method reference converting it
// to its wrapper object.
var boxingMethods = map[*types.Type]string{
	types.Integer: "java/lang/Integer/valueOf(I)Ljava/lang/Integer;",
	types.Real:    "java/lang/Float/valueOf(F)Ljava/lang/Float;",
	types.Boolean: "java/lang/Boolean/valueOf(Z)Ljava/lang/Boolean;",
	types.Char:    "java/lang/Character/valueOf(C)Ljava/lang/Character;",
}

// Method references of the runtime library.
const (
	printStreamField = "java/lang/System/out Ljava/io/PrintStream;"
	printMethod      = "java/io/PrintStream/print(Ljava/lang/String;)V"
	printfMethod     = "java/io/PrintStream/printf(Ljava/lang/String;[Ljava/lang/Object;)Ljava/io/PrintStream;"

	stringValueOf    = "java/lang/String/valueOf(Ljava/lang/Object;)Ljava/lang/String;"
	stringCompareTo  = "java/lang/String/compareTo(Ljava/lang/String;)I"
	builderInit      = "java/lang/StringBuilder/<init>(Ljava/lang/String;)V"
	builderAppend    = "java/lang/StringBuilder/append(Ljava/lang/String;)Ljava/lang/StringBuilder;"
	builderToString  = "java/lang/StringBuilder/toString()Ljava/lang/String;"
	instantNow       = "java/time/Instant/now()Ljava/time/Instant;"
	durationBetween  = "java/time/Duration/between(Ljava/time/temporal/Temporal;Ljava/time/temporal/Temporal;)Ljava/time/Duration;"
	durationToMillis = "java/time/Duration/toMillis()J"
	longValueOf      = "java/lang/Long/valueOf(J)Ljava/lang/Long;"
)
