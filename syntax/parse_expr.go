package syntax

import "subc/ast"

// relOps maps relational operator tokens to their operator kinds.
var relOps = map[int]ast.OperKind{
	TOK_EQ:   ast.OperEq,
	TOK_NEQ:  ast.OperNeq,
	TOK_LT:   ast.OperLt,
	TOK_LTEQ: ast.OperLtEq,
	TOK_GT:   ast.OperGt,
	TOK_GTEQ: ast.OperGtEq,
}

// addOps maps additive operator tokens to their operator kinds.
var addOps = map[int]ast.OperKind{
	TOK_PLUS:  ast.OperAdd,
	TOK_MINUS: ast.OperSub,
	TOK_OR:    ast.OperOr,
}

// mulOps maps multiplicative operator tokens to their operator kinds.
var mulOps = map[int]ast.OperKind{
	TOK_STAR:  ast.OperMul,
	TOK_SLASH: ast.OperFDiv,
	TOK_DIV:   ast.OperDiv,
	TOK_MOD:   ast.OperMod,
	TOK_AND:   ast.OperAnd,
}

// expr := simple_expr [rel_op simple_expr] ;
func (p *Parser) parseExpr() *ast.Expr {
	startSpan := p.tok.Span

	expr := &ast.Expr{Left: p.parseSimpleExpr()}

	if kind, ok := relOps[p.tok.Kind]; ok {
		expr.RelOp = &ast.Oper{Kind: kind, Span: p.tok.Span}
		p.next()

		expr.Right = p.parseSimpleExpr()
	}

	expr.ASTBase = p.baseOver(startSpan)
	return expr
}

// simple_expr := [sign] term {add_op term} ;
// sign := '+' | '-' ;
func (p *Parser) parseSimpleExpr() *ast.SimpleExpr {
	startSpan := p.tok.Span

	simple := &ast.SimpleExpr{}
	if kind, ok := addOps[p.tok.Kind]; ok && kind != ast.OperOr {
		simple.Sign = &ast.Oper{Kind: kind, Span: p.tok.Span}
		p.next()
	}

	simple.Terms = append(simple.Terms, p.parseTerm())

	for {
		kind, ok := addOps[p.tok.Kind]
		if !ok {
			break
		}

		simple.Ops = append(simple.Ops, ast.Oper{Kind: kind, Span: p.tok.Span})
		p.next()

		simple.Terms = append(simple.Terms, p.parseTerm())
	}

	simple.ASTBase = p.baseOver(startSpan)
	return simple
}

// term := factor {mul_op factor} ;
func (p *Parser) parseTerm() *ast.Term {
	startSpan := p.tok.Span

	term := &ast.Term{}
	term.Factors = append(term.Factors, p.parseFactor())

	for {
		kind, ok := mulOps[p.tok.Kind]
		if !ok {
			break
		}

		term.Ops = append(term.Ops, ast.Oper{Kind: kind, Span: p.tok.Span})
		p.next()

		term.Factors = append(term.Factors, p.parseFactor())
	}

	term.ASTBase = p.baseOver(startSpan)
	return term
}

// factor := variable | literal | call | not_op factor | '(' expr ')' ;
func (p *Parser) parseFactor() ast.Factor {
	switch p.tok.Kind {
	case TOK_IDENT:
		nameTok := p.tok
		p.next()

		if p.has(TOK_LPAREN) {
			return p.parseCallRest(nameTok)
		}

		return p.parseVariableRest(nameTok)
	case TOK_INTLIT, TOK_FLOATLIT, TOK_CHARLIT, TOK_STRINGLIT, TOK_TRUE, TOK_FALSE:
		return p.parseLiteral()
	case TOK_NOT:
		startSpan := p.tok.Span
		p.next()

		operand := p.parseFactor()

		return &ast.NotFactor{
			ASTBase: p.baseOver(startSpan),
			Operand: operand,
		}
	case TOK_LPAREN:
		startSpan := p.tok.Span
		p.next()

		inner := p.parseExpr()
		p.want(TOK_RPAREN)

		return &ast.ParenFactor{
			ASTBase: p.baseOver(startSpan),
			Inner:   inner,
		}
	}

	p.reject()
	return nil
}

// variable := IDENT ['[' expr ']'] ;
func (p *Parser) parseVariableRest(nameTok *Token) *ast.Variable {
	variable := &ast.Variable{Name: nameTok.Value}

	if p.has(TOK_LBRACKET) {
		p.next()
		variable.Index = p.parseExpr()
		p.want(TOK_RBRACKET)
	}

	variable.ASTBase = p.baseOver(nameTok.Span)
	return variable
}

// call := IDENT '(' [expr {',' expr}] ')' ;
func (p *Parser) parseCallRest(nameTok *Token) *ast.Call {
	p.want(TOK_LPAREN)

	var args []*ast.Expr
	if !p.has(TOK_RPAREN) {
		for {
			args = append(args, p.parseExpr())

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	p.want(TOK_RPAREN)

	return &ast.Call{
		ASTBase: p.baseOver(nameTok.Span),
		Name:    &ast.Identifier{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value},
		Args:    args,
	}
}

// literal := INTLIT | FLOATLIT | CHARLIT | STRINGLIT | 'true' | 'false' ;
func (p *Parser) parseLiteral() ast.Factor {
	tok := p.tok
	p.next()

	base := p.baseOn(tok.Span)
	switch tok.Kind {
	case TOK_INTLIT:
		return &ast.IntLit{ASTBase: base, Text: tok.Value}
	case TOK_FLOATLIT:
		return &ast.RealLit{ASTBase: base, Text: tok.Value}
	case TOK_CHARLIT:
		return &ast.CharLit{ASTBase: base, Text: tok.Value}
	case TOK_STRINGLIT:
		return &ast.StringLit{ASTBase: base, Text: tok.Value}
	case TOK_TRUE:
		return &ast.BoolLit{ASTBase: base, Value: true}
	default:
		return &ast.BoolLit{ASTBase: base, Value: false}
	}
}
