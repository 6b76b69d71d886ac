package types

import "fmt"

// Form enumerates the shapes a type descriptor can take.
type Form int

// Enumeration of type forms.
const (
	FormScalar Form = iota
	FormArray
	FormVoid
)

// Definer is the symbol that defines a named type.  Scalars hold a reference
// to their definer which is only ever compared by identity.
type Definer interface {
	// Identifier returns the declared name of the definer.
	Identifier() string
}

// Type is a SubC type descriptor.  The predefined scalars are singletons, so
// two descriptors denote the same type if and only if they are the same
// pointer: types are never compared structurally.
type Type struct {
	// The form of the type.
	Form Form

	// The symbol defining the type.  This is only set for scalar types.  The
	// undefined sentinel has no definer.
	Ident Definer

	// The fallback name of the type used when it has no definer.
	name string

	// The JVM field descriptor of the type.
	descriptor string

	// The index type, element type, and element count of array types.
	IndexType, ElemType *Type
	ElemCount           int
}

// The predefined type singletons.
var (
	Integer   = &Type{Form: FormScalar, name: "int", descriptor: "I"}
	Real      = &Type{Form: FormScalar, name: "real", descriptor: "F"}
	Boolean   = &Type{Form: FormScalar, name: "bool", descriptor: "Z"}
	Char      = &Type{Form: FormScalar, name: "char", descriptor: "C"}
	String    = &Type{Form: FormScalar, name: "string", descriptor: "Ljava/lang/String;"}
	Void      = &Type{Form: FormVoid, name: "void", descriptor: "V"}
	Undefined = &Type{Form: FormScalar, name: "undefined", descriptor: "I"}
)

// NewArray creates a new array type of count elements of the given element
// type indexed by integers.
func NewArray(elem *Type, count int) *Type {
	return &Type{
		Form:      FormArray,
		IndexType: Integer,
		ElemType:  elem,
		ElemCount: count,
	}
}

// FromName returns the type denoted by a type keyword.  Unknown names map onto
// the undefined sentinel.
func FromName(name string) *Type {
	switch name {
	case "int":
		return Integer
	case "char":
		return Char
	case "string":
		return String
	case "double", "real":
		return Real
	case "void":
		return Void
	case "bool":
		return Boolean
	default:
		return Undefined
	}
}

// BaseType returns the scalar underlying the type: the type itself for
// scalars and void, and the base of the element type for arrays.
func (t *Type) BaseType() *Type {
	if t.Form == FormArray {
		return t.ElemType.BaseType()
	}

	return t
}

// Descriptor returns the JVM field descriptor of the type.
func (t *Type) Descriptor() string {
	if t.Form == FormArray {
		return "[" + t.ElemType.Descriptor()
	}

	return t.descriptor
}

// Name returns the name of the type: the identifier of its definer if it has
// one.
func (t *Type) Name() string {
	if t.Ident != nil {
		return t.Ident.Identifier()
	}

	return t.name
}

func (t *Type) String() string {
	if t.Form == FormArray {
		return fmt.Sprintf("%s[%d]", t.ElemType, t.ElemCount)
	}

	return t.Name()
}
