package ast

// Stmt is the interface of all statements.  The concrete statements are
// *Block, *VarDecl, *ConstDecl, *AssignStmt, *IncDecStmt, *IfStmt,
// *WhileStmt, *ForStmt, *SwitchStmt, *CallStmt, and *ReturnStmt.
type Stmt interface {
	Node

	stmt()
}

// Block is a braced sequence of statements.
type Block struct {
	ASTBase

	Stmts []Stmt
}

// AssignStmt assigns the value of an expression to a variable.
type AssignStmt struct {
	ASTBase

	Target *Variable
	Value  *Expr
}

// IncDecStmt is an increment (`x++`) or decrement (`x--`) statement.
type IncDecStmt struct {
	ASTBase

	Target *Variable

	// Either OperAdd for `++` or OperSub for `--`.
	Op Oper
}

// IfStmt is an if statement with an optional else branch.
type IfStmt struct {
	ASTBase

	Cond *Expr
	Then Stmt

	// The else branch.  This may be nil.
	Else Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	ASTBase

	Cond *Expr
	Body Stmt
}

// ForStmt is a C-style for loop.
type ForStmt struct {
	ASTBase

	// The initializer: either an *AssignStmt or an initialized *VarDecl.
	Init Stmt

	// The loop control expression.
	Cond *Expr

	// The increment: either an *AssignStmt or an *IncDecStmt.
	Incr Stmt

	Body Stmt
}

// SwitchStmt is a multi-way branch on a scalar selector.
type SwitchStmt struct {
	ASTBase

	Selector *Expr

	// The case branches in source order.
	Branches []*CaseBranch

	// The default branch.  This may be nil.
	Default *CaseBranch
}

// CaseBranch is a single branch of a switch statement.
type CaseBranch struct {
	ASTBase

	// The constants labelling the branch.  This is empty for the default
	// branch.  Each constant is a literal or the name of a constant.
	Constants []Factor

	Stmts []Stmt

	// Whether the branch ends with an explicit `break`.
	Break bool
}

// CallStmt is a routine call whose result (if any) is discarded.
type CallStmt struct {
	ASTBase

	Call *Call
}

// ReturnStmt returns from the enclosing routine.
type ReturnStmt struct {
	ASTBase

	// The returned value.  This may be nil.
	Value *Expr
}

func (*Block) stmt()      {}
func (*VarDecl) stmt()    {}
func (*ConstDecl) stmt()  {}
func (*AssignStmt) stmt() {}
func (*IncDecStmt) stmt() {}
func (*IfStmt) stmt()     {}
func (*WhileStmt) stmt()  {}
func (*ForStmt) stmt()    {}
func (*SwitchStmt) stmt() {}
func (*CallStmt) stmt()   {}
func (*ReturnStmt) stmt() {}
