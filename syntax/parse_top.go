package syntax

import (
	"strconv"
	"strings"

	"subc/ast"
	"subc/report"
)

// program := 'Program' IDENT ';' {top_decl} main_def EOF ;
func (p *Parser) parseProgram() (*ast.Program, bool) {
	var startSpan *report.TextSpan
	var name *ast.Identifier
	ok := p.recoverFrom(func() {
		startSpan = p.want(TOK_PROGRAM).Span

		nameTok := p.want(TOK_IDENT)
		name = &ast.Identifier{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value}

		p.want(TOK_SEMI)
	})

	if !ok {
		return nil, false
	}

	prog := &ast.Program{Name: name}
	for !p.has(TOK_EOF) {
		var decl ast.Decl
		if !p.recoverFrom(func() { decl = p.parseTopDecl() }) {
			p.synchronize(true)
			continue
		}

		if funcDef, ok := decl.(*ast.FuncDef); ok && strings.EqualFold(funcDef.Name.Name, "main") {
			if prog.Main != nil {
				p.errs.Flag(report.UnexpectedToken, funcDef.Name.Span(), "multiple main routines")
			} else if len(funcDef.Params) > 0 {
				p.errs.Flag(report.UnexpectedToken, funcDef.Params[0].Span(), "main routine cannot take parameters")
			}

			prog.Main = funcDef
			continue
		}

		if prog.Main != nil {
			p.errs.Flag(report.UnexpectedToken, decl.Span(), "declarations cannot follow the main routine")
		}

		prog.Decls = append(prog.Decls, decl)
	}

	if prog.Main == nil {
		p.errs.Flag(report.MissingMain, p.tok.Span, "program `%s` has no main routine", name.Name)
	}

	prog.ASTBase = ast.NewASTBaseOver(p.newID(), startSpan, p.tok.Span)
	return prog, true
}

// top_decl := const_decl | var_decl | func_def ;
func (p *Parser) parseTopDecl() ast.Decl {
	if p.has(TOK_CONST) {
		return p.parseConstDecl()
	}

	typ := p.parseTypeLabel()
	nameTok := p.want(TOK_IDENT)

	if p.has(TOK_LPAREN) {
		return p.parseFuncDef(typ, nameTok)
	}

	return p.parseVarDeclRest(typ, nameTok)
}

// func_def := TYPE IDENT '(' [param {',' param}] ')' block ;
// param := TYPE IDENT ;
func (p *Parser) parseFuncDef(returnType ast.TypeLabel, nameTok *Token) *ast.FuncDef {
	p.want(TOK_LPAREN)

	var params []*ast.Param
	if !p.has(TOK_RPAREN) {
		for {
			paramType := p.parseTypeLabel()
			paramTok := p.want(TOK_IDENT)

			params = append(params, &ast.Param{
				ASTBase: p.baseOver(paramType.Span),
				Type:    paramType,
				Name:    &ast.Identifier{ASTBase: p.baseOn(paramTok.Span), Name: paramTok.Value},
			})

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}
	}

	p.want(TOK_RPAREN)

	body := p.parseBlock()

	return &ast.FuncDef{
		ASTBase:    p.baseOver(returnType.Span),
		ReturnType: returnType,
		Name:       &ast.Identifier{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value},
		Params:     params,
		Body:       body,
	}
}

// const_decl := 'const' TYPE IDENT '=' expr ';' ;
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	startSpan := p.want(TOK_CONST).Span

	typ := p.parseTypeLabel()
	nameTok := p.want(TOK_IDENT)

	p.want(TOK_ASSIGN)
	value := p.parseExpr()
	p.want(TOK_SEMI)

	return &ast.ConstDecl{
		ASTBase: p.baseOver(startSpan),
		Type:    typ,
		Name:    &ast.Identifier{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value},
		Value:   value,
	}
}

// var_decl := TYPE IDENT ['[' INTLIT ']'] ['=' expr] ';' ;
func (p *Parser) parseVarDeclRest(typ ast.TypeLabel, nameTok *Token) *ast.VarDecl {
	decl := &ast.VarDecl{
		Type: typ,
		Name: &ast.Identifier{ASTBase: p.baseOn(nameTok.Span), Name: nameTok.Value},
	}

	if p.has(TOK_LBRACKET) {
		p.next()

		lenTok := p.want(TOK_INTLIT)
		n, err := strconv.Atoi(lenTok.Value)
		if err != nil || n <= 0 {
			p.error(lenTok.Span, "array length must be a positive integer")
		}

		decl.ArrayLen = n
		p.want(TOK_RBRACKET)
	}

	if p.has(TOK_ASSIGN) {
		if decl.ArrayLen > 0 {
			p.error(p.tok.Span, "array variables cannot be initialized")
		}

		p.next()
		decl.Init = p.parseExpr()
	}

	p.want(TOK_SEMI)

	decl.ASTBase = p.baseOver(typ.Span)
	return decl
}

// type_label := 'int' | 'double' | 'char' | 'string' | 'bool' | 'void' ;
func (p *Parser) parseTypeLabel() ast.TypeLabel {
	if !isTypeKeyword(p.tok.Kind) {
		p.reject()
	}

	tok := p.tok
	p.next()

	return ast.TypeLabel{Name: tok.Value, Span: tok.Span}
}
