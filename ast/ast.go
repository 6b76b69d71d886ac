package ast

import "subc/report"

// NodeID is the stable identity of an AST node.  IDs are assigned in parse
// order and are unique within one program.  The semantic analyzer keys all of
// its annotations on them.
type NodeID int

// Node is the abstract interface for all AST nodes.
type Node interface {
	// ID returns the identity of the node.
	ID() NodeID

	// Span returns the text span of the node.
	Span() *report.TextSpan
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	// The identity of the AST node.
	id NodeID

	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(id NodeID, span *report.TextSpan) ASTBase {
	return ASTBase{id: id, span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(id NodeID, start, end *report.TextSpan) ASTBase {
	return ASTBase{id: id, span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) ID() NodeID {
	return ab.id
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// Program is the root of a SubC syntax tree.
type Program struct {
	ASTBase

	// The name of the program.
	Name *Identifier

	// The top-level declarations preceding the main routine in source order.
	Decls []Decl

	// The main routine of the program.
	Main *FuncDef
}

// Identifier is a name occurring in a declaration.
type Identifier struct {
	ASTBase

	Name string
}

// TypeLabel is a type keyword occurring in a declaration.
type TypeLabel struct {
	// The type keyword: eg. `int` or `double`.
	Name string

	// The span of the keyword.
	Span *report.TextSpan
}

// Decl is the interface of all declarations.  The concrete declarations are
// *VarDecl, *ConstDecl, and *FuncDef.
type Decl interface {
	Node

	decl()
}

// VarDecl is a variable declaration with an optional initializer.  Variable
// declarations can also occur as statements.
type VarDecl struct {
	ASTBase

	Type TypeLabel
	Name *Identifier

	// The element count of an array variable.  This is zero for scalars.
	ArrayLen int

	// The initializer of the variable.  This may be nil.
	Init *Expr
}

// ConstDecl is a named constant declaration.
type ConstDecl struct {
	ASTBase

	Type  TypeLabel
	Name  *Identifier
	Value *Expr
}

// FuncDef is a routine definition.
type FuncDef struct {
	ASTBase

	ReturnType TypeLabel
	Name       *Identifier
	Params     []*Param
	Body       *Block
}

// Param is a single routine parameter.
type Param struct {
	ASTBase

	Type TypeLabel
	Name *Identifier
}

func (*VarDecl) decl()   {}
func (*ConstDecl) decl() {}
func (*FuncDef) decl()   {}
