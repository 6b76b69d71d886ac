package syntax

import (
	"subc/ast"
)

// stmt := block | var_decl | const_decl | if_stmt | while_stmt | for_stmt
//       | switch_stmt | return_stmt | simple_stmt ';' ;
func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case TOK_LBRACE:
		return p.parseBlock()
	case TOK_CONST:
		return p.parseConstDecl()
	case TOK_IF:
		return p.parseIfStmt()
	case TOK_WHILE:
		return p.parseWhileStmt()
	case TOK_FOR:
		return p.parseForStmt()
	case TOK_SWITCH:
		return p.parseSwitchStmt()
	case TOK_RETURN:
		return p.parseReturnStmt()
	}

	if isTypeKeyword(p.tok.Kind) {
		typ := p.parseTypeLabel()
		nameTok := p.want(TOK_IDENT)
		return p.parseVarDeclRest(typ, nameTok)
	}

	stmt := p.parseSimpleStmt()
	p.want(TOK_SEMI)
	return stmt
}

// parseStmtSeq parses statements until the parser reaches a token of one of
// the given kinds.  Erroneous statements are recorded and skipped.
func (p *Parser) parseStmtSeq(ends ...int) []ast.Stmt {
	var stmts []ast.Stmt

	for !p.hasOneOf(ends...) {
		if p.has(TOK_EOF) {
			p.reject()
		} else if p.has(TOK_SEMI) {
			p.next()
			continue
		}

		var stmt ast.Stmt
		if p.recoverFrom(func() { stmt = p.parseStmt() }) {
			stmts = append(stmts, stmt)
		} else {
			p.synchronize(false)
		}
	}

	return stmts
}

// block := '{' {stmt} '}' ;
func (p *Parser) parseBlock() *ast.Block {
	startSpan := p.want(TOK_LBRACE).Span

	stmts := p.parseStmtSeq(TOK_RBRACE)
	p.want(TOK_RBRACE)

	return &ast.Block{
		ASTBase: p.baseOver(startSpan),
		Stmts:   stmts,
	}
}

// simple_stmt := variable ('=' | ':=') expr | variable ('++' | '--') | call ;
func (p *Parser) parseSimpleStmt() ast.Stmt {
	nameTok := p.want(TOK_IDENT)

	if p.has(TOK_LPAREN) {
		call := p.parseCallRest(nameTok)

		return &ast.CallStmt{
			ASTBase: p.baseOver(nameTok.Span),
			Call:    call,
		}
	}

	target := p.parseVariableRest(nameTok)

	switch p.tok.Kind {
	case TOK_ASSIGN:
		p.next()
		value := p.parseExpr()

		return &ast.AssignStmt{
			ASTBase: p.baseOver(nameTok.Span),
			Target:  target,
			Value:   value,
		}
	case TOK_INC, TOK_DEC:
		opTok := p.tok
		p.next()

		kind := ast.OperAdd
		if opTok.Kind == TOK_DEC {
			kind = ast.OperSub
		}

		return &ast.IncDecStmt{
			ASTBase: p.baseOver(nameTok.Span),
			Target:  target,
			Op:      ast.Oper{Kind: kind, Span: opTok.Span},
		}
	}

	p.reject()
	return nil
}

// -----------------------------------------------------------------------------

// if_stmt := 'if' '(' expr ')' stmt ['else' stmt] ;
func (p *Parser) parseIfStmt() *ast.IfStmt {
	startSpan := p.want(TOK_IF).Span

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	thenStmt := p.parseStmt()

	var elseStmt ast.Stmt
	if p.has(TOK_ELSE) {
		p.next()
		elseStmt = p.parseStmt()
	}

	return &ast.IfStmt{
		ASTBase: p.baseOver(startSpan),
		Cond:    cond,
		Then:    thenStmt,
		Else:    elseStmt,
	}
}

// while_stmt := 'while' '(' expr ')' stmt ;
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	startSpan := p.want(TOK_WHILE).Span

	p.want(TOK_LPAREN)
	cond := p.parseExpr()
	p.want(TOK_RPAREN)

	body := p.parseStmt()

	return &ast.WhileStmt{
		ASTBase: p.baseOver(startSpan),
		Cond:    cond,
		Body:    body,
	}
}

// for_stmt := 'for' '(' (var_decl | simple_stmt ';') expr ';' simple_stmt ')' stmt ;
func (p *Parser) parseForStmt() *ast.ForStmt {
	startSpan := p.want(TOK_FOR).Span
	p.want(TOK_LPAREN)

	var init ast.Stmt
	if isTypeKeyword(p.tok.Kind) {
		typ := p.parseTypeLabel()
		nameTok := p.want(TOK_IDENT)

		decl := p.parseVarDeclRest(typ, nameTok)
		if decl.Init == nil {
			p.error(decl.Span(), "for loop initializer must assign a value")
		}

		init = decl
	} else {
		init = p.parseSimpleStmt()
		if _, ok := init.(*ast.AssignStmt); !ok {
			p.error(init.Span(), "for loop initializer must be an assignment")
		}

		p.want(TOK_SEMI)
	}

	cond := p.parseExpr()
	p.want(TOK_SEMI)

	incr := p.parseSimpleStmt()
	if _, ok := incr.(*ast.CallStmt); ok {
		p.error(incr.Span(), "for loop increment must be an assignment, `++`, or `--`")
	}

	p.want(TOK_RPAREN)

	body := p.parseStmt()

	return &ast.ForStmt{
		ASTBase: p.baseOver(startSpan),
		Init:    init,
		Cond:    cond,
		Incr:    incr,
		Body:    body,
	}
}

// switch_stmt := 'switch' '(' expr ')' '{' {case_branch} [default_branch] '}' ;
func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	startSpan := p.want(TOK_SWITCH).Span

	p.want(TOK_LPAREN)
	selector := p.parseExpr()
	p.want(TOK_RPAREN)

	p.want(TOK_LBRACE)

	var branches []*ast.CaseBranch
	for p.has(TOK_CASE) {
		branches = append(branches, p.parseCaseBranch())
	}

	var defaultBranch *ast.CaseBranch
	if p.has(TOK_DEFAULT) {
		defaultBranch = p.parseDefaultBranch()
	}

	p.want(TOK_RBRACE)

	return &ast.SwitchStmt{
		ASTBase:  p.baseOver(startSpan),
		Selector: selector,
		Branches: branches,
		Default:  defaultBranch,
	}
}

// case_branch := case_label {case_label} {stmt} ['break' ';'] ;
// case_label := 'case' constant {',' constant} ':' ;
func (p *Parser) parseCaseBranch() *ast.CaseBranch {
	startSpan := p.tok.Span

	var constants []ast.Factor
	for p.has(TOK_CASE) {
		p.next()

		for {
			constants = append(constants, p.parseCaseConstant())

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}

		p.want(TOK_COLON)
	}

	stmts, hasBreak := p.parseBranchBody()

	return &ast.CaseBranch{
		ASTBase:   p.baseOver(startSpan),
		Constants: constants,
		Stmts:     stmts,
		Break:     hasBreak,
	}
}

// default_branch := 'default' ':' {stmt} ['break' ';'] ;
func (p *Parser) parseDefaultBranch() *ast.CaseBranch {
	startSpan := p.want(TOK_DEFAULT).Span
	p.want(TOK_COLON)

	stmts, hasBreak := p.parseBranchBody()

	return &ast.CaseBranch{
		ASTBase: p.baseOver(startSpan),
		Stmts:   stmts,
		Break:   hasBreak,
	}
}

// parseBranchBody parses the statements of a switch branch along with its
// optional terminating `break`.
func (p *Parser) parseBranchBody() ([]ast.Stmt, bool) {
	stmts := p.parseStmtSeq(TOK_CASE, TOK_DEFAULT, TOK_RBRACE, TOK_BREAK)

	if p.has(TOK_BREAK) {
		p.next()
		p.want(TOK_SEMI)
		return stmts, true
	}

	return stmts, false
}

// constant := ['-'] (INTLIT | FLOATLIT) | CHARLIT | STRINGLIT | 'true' | 'false' | IDENT ;
func (p *Parser) parseCaseConstant() ast.Factor {
	switch p.tok.Kind {
	case TOK_MINUS:
		startSpan := p.tok.Span
		p.next()

		numTok := p.tok
		switch numTok.Kind {
		case TOK_INTLIT:
			p.next()
			return &ast.IntLit{ASTBase: p.baseOver(startSpan), Text: "-" + numTok.Value}
		case TOK_FLOATLIT:
			p.next()
			return &ast.RealLit{ASTBase: p.baseOver(startSpan), Text: "-" + numTok.Value}
		}
	case TOK_INTLIT, TOK_FLOATLIT, TOK_CHARLIT, TOK_STRINGLIT, TOK_TRUE, TOK_FALSE:
		return p.parseLiteral()
	case TOK_IDENT:
		nameTok := p.tok
		p.next()

		return &ast.Variable{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value}
	}

	p.reject()
	return nil
}

// return_stmt := 'return' [expr] ';' ;
func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	startSpan := p.want(TOK_RETURN).Span

	var value *ast.Expr
	if !p.has(TOK_SEMI) {
		value = p.parseExpr()
	}

	p.want(TOK_SEMI)

	return &ast.ReturnStmt{
		ASTBase: p.baseOver(startSpan),
		Value:   value,
	}
}
