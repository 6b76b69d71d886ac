package typing

import (
	"testing"

	"github.com/nalgeon/be"

	"subc/types"
)

var scalars = []*types.Type{types.Integer, types.Real, types.Char, types.String, types.Boolean}

func TestAssignmentCompatibility(t *testing.T) {
	for _, target := range scalars {
		for _, source := range scalars {
			t.Run(target.Name()+"<-"+source.Name(), func(t *testing.T) {
				want := target == source || (target == types.Real && source == types.Integer)
				be.Equal(t, AreAssignmentCompatible(target, source), want)
			})
		}
	}
}

func TestAssignmentCompatibilityNonScalar(t *testing.T) {
	arr := types.NewArray(types.Integer, 4)
	other := types.NewArray(types.Integer, 4)

	be.True(t, AreAssignmentCompatible(arr, arr))
	be.True(t, !AreAssignmentCompatible(arr, other))
	be.True(t, !AreAssignmentCompatible(arr, types.Integer))
	be.True(t, !AreAssignmentCompatible(types.Integer, arr))
	be.True(t, !AreAssignmentCompatible(types.Void, types.Void))
	be.True(t, !AreAssignmentCompatible(types.Integer, nil))
}

func TestComparisonCompatibility(t *testing.T) {
	tests := []struct {
		name   string
		t1, t2 *types.Type
		want   bool
	}{
		{"int int", types.Integer, types.Integer, true},
		{"int real", types.Integer, types.Real, true},
		{"real int", types.Real, types.Integer, true},
		{"string string", types.String, types.String, true},
		{"char char", types.Char, types.Char, true},
		{"bool bool", types.Boolean, types.Boolean, true},
		{"bool string", types.Boolean, types.String, false},
		{"char int", types.Char, types.Integer, false},
		{"string real", types.String, types.Real, false},
		{"array", types.NewArray(types.Integer, 2), types.Integer, false},
		{"void", types.Void, types.Void, false},
		{"undefined", types.Undefined, types.Undefined, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			be.Equal(t, AreComparisonCompatible(test.t1, test.t2), test.want)
		})
	}
}

func TestNumericPredicates(t *testing.T) {
	be.True(t, IsInteger(types.Integer))
	be.True(t, !IsInteger(types.Char))
	be.True(t, IsIntegerOrReal(types.Real))
	be.True(t, !IsIntegerOrReal(types.String))
	be.True(t, AreBothInteger(types.Integer, types.Integer))
	be.True(t, !AreBothInteger(types.Integer, types.Real))
	be.True(t, IsAtLeastOneReal(types.Integer, types.Real))
	be.True(t, IsAtLeastOneReal(types.Real, types.Real))
	be.True(t, !IsAtLeastOneReal(types.Integer, types.Integer))
	be.True(t, !IsAtLeastOneReal(types.Real, types.String))
	be.True(t, AreBothString(types.String, types.String))
	be.True(t, IsBoolean(types.Boolean))
}

func TestSelectorType(t *testing.T) {
	be.True(t, IsSelectorType(types.Integer))
	be.True(t, IsSelectorType(types.Char))
	be.True(t, IsSelectorType(types.Boolean))
	be.True(t, !IsSelectorType(types.Real))
	be.True(t, !IsSelectorType(types.String))
	be.True(t, !IsSelectorType(types.NewArray(types.Char, 3)))
}
