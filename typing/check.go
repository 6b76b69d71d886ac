package typing

import "subc/types"

// NOTE: All of the predicates below compare types by identity against the
// predefined singletons.  None of them report errors: the caller decides what
// a false result means.

// IsInteger returns whether t is the integer type.
func IsInteger(t *types.Type) bool {
	return t == types.Integer
}

// AreBothInteger returns whether both t1 and t2 are the integer type.
func AreBothInteger(t1, t2 *types.Type) bool {
	return IsInteger(t1) && IsInteger(t2)
}

// IsReal returns whether t is the real type.
func IsReal(t *types.Type) bool {
	return t == types.Real
}

// IsIntegerOrReal returns whether t is a numeric type.
func IsIntegerOrReal(t *types.Type) bool {
	return IsInteger(t) || IsReal(t)
}

// AreBothNumeric returns whether both t1 and t2 are numeric types.
func AreBothNumeric(t1, t2 *types.Type) bool {
	return IsIntegerOrReal(t1) && IsIntegerOrReal(t2)
}

// IsAtLeastOneReal returns whether t1 and t2 are both numeric and at least one
// of them is real.
func IsAtLeastOneReal(t1, t2 *types.Type) bool {
	return (IsReal(t1) && IsReal(t2)) ||
		(IsReal(t1) && IsInteger(t2)) ||
		(IsInteger(t1) && IsReal(t2))
}

// IsBoolean returns whether t is the boolean type.
func IsBoolean(t *types.Type) bool {
	return t == types.Boolean
}

// AreBothBoolean returns whether both t1 and t2 are the boolean type.
func AreBothBoolean(t1, t2 *types.Type) bool {
	return IsBoolean(t1) && IsBoolean(t2)
}

// IsChar returns whether t is the char type.
func IsChar(t *types.Type) bool {
	return t == types.Char
}

// IsString returns whether t is the string type.
func IsString(t *types.Type) bool {
	return t == types.String
}

// AreBothString returns whether both t1 and t2 are the string type.
func AreBothString(t1, t2 *types.Type) bool {
	return IsString(t1) && IsString(t2)
}

// IsScalar returns whether t is a scalar type other than the undefined
// sentinel.
func IsScalar(t *types.Type) bool {
	return t != nil && t.Form == types.FormScalar && t != types.Undefined
}

// IsSelectorType returns whether t may be used as the selector of a switch
// statement: it must be scalar and neither real nor string.
func IsSelectorType(t *types.Type) bool {
	return IsScalar(t) && !IsReal(t) && !IsString(t)
}

// -----------------------------------------------------------------------------

// AreAssignmentCompatible returns whether a value of the source type can be
// assigned to a variable of the target type.  Either the types are identical
// or an integer is widened to a real.
func AreAssignmentCompatible(target, source *types.Type) bool {
	if target == nil || source == nil {
		return false
	}

	if target == source {
		return target.Form != types.FormVoid
	}

	return target == types.Real && source == types.Integer
}

// AreComparisonCompatible returns whether values of the two types may be
// compared with a relational operator.
func AreComparisonCompatible(t1, t2 *types.Type) bool {
	if !IsScalar(t1) || !IsScalar(t2) {
		return false
	}

	if t1 == t2 {
		return true
	}

	return IsAtLeastOneReal(t1, t2)
}
