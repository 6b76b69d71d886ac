package ast

import "subc/report"

// OperKind enumerates the operators of the language.
type OperKind int

// Enumeration of operator kinds.
const (
	OperAdd OperKind = iota
	OperSub
	OperOr

	OperMul
	OperFDiv
	OperDiv
	OperMod
	OperAnd

	OperEq
	OperNeq
	OperLt
	OperLtEq
	OperGt
	OperGtEq

	OperNot
)

var operNames = map[OperKind]string{
	OperAdd:  "+",
	OperSub:  "-",
	OperOr:   "or",
	OperMul:  "*",
	OperFDiv: "/",
	OperDiv:  "div",
	OperMod:  "mod",
	OperAnd:  "and",
	OperEq:   "==",
	OperNeq:  "!=",
	OperLt:   "<",
	OperLtEq: "<=",
	OperGt:   ">",
	OperGtEq: ">=",
	OperNot:  "not",
}

func (k OperKind) String() string {
	return operNames[k]
}

// Oper is an operator occurrence.
type Oper struct {
	Kind OperKind
	Span *report.TextSpan
}

// -----------------------------------------------------------------------------

// Expr is a full expression: a simple expression optionally compared to a
// second one by a relational operator.
type Expr struct {
	ASTBase

	Left *SimpleExpr

	// The relational operator and right operand.  Both are nil if the
	// expression is not a comparison.
	RelOp *Oper
	Right *SimpleExpr
}

// IsComparison returns whether the expression is a relational comparison.
func (e *Expr) IsComparison() bool {
	return e.RelOp != nil
}

// SoleFactor returns the only factor making up the expression if it consists
// of exactly one unsigned factor.
func (e *Expr) SoleFactor() (Factor, bool) {
	if e.RelOp != nil || e.Left.Sign != nil || len(e.Left.Terms) != 1 {
		return nil, false
	}

	term := e.Left.Terms[0]
	if len(term.Factors) != 1 {
		return nil, false
	}

	return term.Factors[0], true
}

// SimpleExpr is an optionally signed sequence of terms joined by additive
// operators.  Ops[i] joins Terms[i] and Terms[i+1].
type SimpleExpr struct {
	ASTBase

	// The leading sign.  This may be nil.
	Sign *Oper

	Terms []*Term
	Ops   []Oper
}

// Term is a sequence of factors joined by multiplicative operators.  Ops[i]
// joins Factors[i] and Factors[i+1].
type Term struct {
	ASTBase

	Factors []Factor
	Ops     []Oper
}

// Factor is the interface of all factors.  The concrete factors are
// *Variable, *IntLit, *RealLit, *CharLit, *StringLit, *BoolLit, *Call,
// *NotFactor, and *ParenFactor.
type Factor interface {
	Node

	factor()
}

// Variable is a use of a variable, parameter, or constant: optionally indexed
// if it is an array.
type Variable struct {
	ASTBase

	Name string

	// The index expression.  This is nil if the variable is not indexed.
	Index *Expr
}

// IntLit is an integer literal.  The text may carry a leading minus sign when
// the literal is a case constant.
type IntLit struct {
	ASTBase

	Text string
}

// RealLit is a floating-point literal.
type RealLit struct {
	ASTBase

	Text string
}

// CharLit is a character literal.  The text is the contents between the quotes
// with escape sequences left as written.
type CharLit struct {
	ASTBase

	Text string
}

// StringLit is a string literal.  The text is the contents between the quotes
// with escape sequences left as written.
type StringLit struct {
	ASTBase

	Text string
}

// BoolLit is a `true` or `false` literal.
type BoolLit struct {
	ASTBase

	Value bool
}

// Call is a routine call.
type Call struct {
	ASTBase

	Name *Identifier
	Args []*Expr
}

// NotFactor is a logical negation.
type NotFactor struct {
	ASTBase

	Operand Factor
}

// ParenFactor is a parenthesized expression.
type ParenFactor struct {
	ASTBase

	Inner *Expr
}

func (*Variable) factor()    {}
func (*IntLit) factor()      {}
func (*RealLit) factor()     {}
func (*CharLit) factor()     {}
func (*StringLit) factor()   {}
func (*BoolLit) factor()     {}
func (*Call) factor()        {}
func (*NotFactor) factor()   {}
func (*ParenFactor) factor() {}
