package walk

import (
	"strconv"

	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
)

// walkLit walks a literal factor, recording its type and value.
func (w *Walker) walkLit(lit ast.Factor) *types.Type {
	var typ *types.Type
	var value interface{}

	switch v := lit.(type) {
	case *ast.IntLit:
		typ = types.Integer

		n, err := strconv.ParseInt(v.Text, 10, 32)
		if err != nil {
			w.errs.Flag(report.InvalidConstant, v.Span(), "integer literal `%s` is out of range", v.Text)
		}

		value = int(n)
	case *ast.RealLit:
		typ = types.Real

		f, err := strconv.ParseFloat(v.Text, 32)
		if err != nil {
			w.errs.Flag(report.InvalidConstant, v.Span(), "real literal `%s` is out of range", v.Text)
		}

		value = float32(f)
	case *ast.CharLit:
		typ = types.Char

		r, _, tail, err := strconv.UnquoteChar(v.Text, '\'')
		if err != nil || tail != "" {
			w.errs.Flag(report.InvalidConstant, v.Span(), "invalid character literal `'%s'`", v.Text)
		}

		value = r
	case *ast.StringLit:
		typ = types.String
		value = v.Text
	case *ast.BoolLit:
		typ = types.Boolean
		value = v.Value
	default:
		report.ReportICE("unknown factor: %T", lit)
	}

	w.notes.setType(lit, typ)
	w.notes.setValue(lit, value)
	return typ
}

// defaultValue returns the value storage of the given type holds before it is
// first assigned.
func defaultValue(typ *types.Type) interface{} {
	switch typ {
	case types.Real:
		return float32(0)
	case types.Boolean:
		return false
	case types.Char:
		return rune(0)
	case types.String:
		return ""
	default:
		return 0
	}
}

// -----------------------------------------------------------------------------

// fold evaluates an already walked expression at compile time.  It returns
// false if the expression is not a constant expression: eg. it reads a
// variable or calls a routine.
func (w *Walker) fold(expr *ast.Expr) (interface{}, bool) {
	left, ok := w.foldSimpleExpr(expr.Left)
	if !ok || !expr.IsComparison() {
		return left, ok
	}

	right, ok := w.foldSimpleExpr(expr.Right)
	if !ok {
		return nil, false
	}

	return foldOper(expr.RelOp.Kind, left, right)
}

func (w *Walker) foldSimpleExpr(se *ast.SimpleExpr) (interface{}, bool) {
	value, ok := w.foldTerm(se.Terms[0])
	if !ok {
		return nil, false
	}

	if se.Sign != nil && se.Sign.Kind == ast.OperSub {
		switch v := value.(type) {
		case int:
			value = int(int32(-v))
		case float32:
			value = -v
		default:
			return nil, false
		}
	}

	for i, op := range se.Ops {
		right, ok := w.foldTerm(se.Terms[i+1])
		if !ok {
			return nil, false
		}

		if value, ok = foldOper(op.Kind, value, right); !ok {
			return nil, false
		}
	}

	return value, true
}

func (w *Walker) foldTerm(term *ast.Term) (interface{}, bool) {
	value, ok := w.foldFactor(term.Factors[0])
	if !ok {
		return nil, false
	}

	for i, op := range term.Ops {
		right, ok := w.foldFactor(term.Factors[i+1])
		if !ok {
			return nil, false
		}

		if value, ok = foldOper(op.Kind, value, right); !ok {
			return nil, false
		}
	}

	return value, true
}

func (w *Walker) foldFactor(factor ast.Factor) (interface{}, bool) {
	switch v := factor.(type) {
	case *ast.Variable:
		sym, ok := w.notes.symbols[v.ID()]
		if !ok || sym.Kind != symtab.KindConstant || v.Index != nil {
			return nil, false
		}

		return sym.Value, true
	case *ast.Call:
		return nil, false
	case *ast.NotFactor:
		operand, ok := w.foldFactor(v.Operand)
		if b, isBool := operand.(bool); ok && isBool {
			return !b, true
		}

		return nil, false
	case *ast.ParenFactor:
		return w.fold(v.Inner)
	default:
		return w.notes.ValueOf(factor), true
	}
}

// foldOper applies a binary operator to two constant values.
func foldOper(kind ast.OperKind, lhs, rhs interface{}) (interface{}, bool) {
	switch l := lhs.(type) {
	case int:
		switch r := rhs.(type) {
		case int:
			return foldInt(kind, l, r)
		case float32:
			return foldReal(kind, float32(l), r)
		}
	case float32:
		switch r := rhs.(type) {
		case int:
			return foldReal(kind, l, float32(r))
		case float32:
			return foldReal(kind, l, r)
		}
	case rune:
		if r, ok := rhs.(rune); ok {
			return foldCompare(kind, int(l)-int(r))
		}
	case string:
		if r, ok := rhs.(string); ok {
			if kind == ast.OperAdd {
				return l + r, true
			}

			return foldCompare(kind, compareStrings(l, r))
		}
	case bool:
		if r, ok := rhs.(bool); ok {
			switch kind {
			case ast.OperAnd:
				return l && r, true
			case ast.OperOr:
				return l || r, true
			case ast.OperEq:
				return l == r, true
			case ast.OperNeq:
				return l != r, true
			}
		}
	}

	return nil, false
}

func foldInt(kind ast.OperKind, l, r int) (interface{}, bool) {
	switch kind {
	case ast.OperAdd:
		return int(int32(l + r)), true
	case ast.OperSub:
		return int(int32(l - r)), true
	case ast.OperMul:
		return int(int32(l * r)), true
	case ast.OperFDiv:
		return foldReal(kind, float32(l), float32(r))
	case ast.OperDiv, ast.OperMod:
		if r == 0 {
			return nil, false
		} else if kind == ast.OperDiv {
			return int(int32(l / r)), true
		}

		return int(int32(l % r)), true
	}

	return foldCompare(kind, l-r)
}

func foldReal(kind ast.OperKind, l, r float32) (interface{}, bool) {
	switch kind {
	case ast.OperAdd:
		return l + r, true
	case ast.OperSub:
		return l - r, true
	case ast.OperMul:
		return l * r, true
	case ast.OperFDiv:
		if r == 0 {
			return nil, false
		}

		return l / r, true
	}

	switch {
	case l < r:
		return foldCompare(kind, -1)
	case l > r:
		return foldCompare(kind, 1)
	default:
		return foldCompare(kind, 0)
	}
}

// foldCompare applies a relational operator given the sign of the difference
// between its operands.
func foldCompare(kind ast.OperKind, diff int) (interface{}, bool) {
	switch kind {
	case ast.OperEq:
		return diff == 0, true
	case ast.OperNeq:
		return diff != 0, true
	case ast.OperLt:
		return diff < 0, true
	case ast.OperLtEq:
		return diff <= 0, true
	case ast.OperGt:
		return diff > 0, true
	case ast.OperGtEq:
		return diff >= 0, true
	}

	return nil, false
}

func compareStrings(l, r string) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
