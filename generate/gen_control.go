package generate

import (
	"sort"

	"subc/ast"
	"subc/report"
)

// genIf generates an if statement.
func (g *Generator) genIf(is *ast.IfStmt) {
	endLabel := g.newLabel()

	g.genExpr(is.Cond)

	if is.Else == nil {
		g.m.emitBranch("ifeq", endLabel)
		g.genStmt(is.Then)
	} else {
		falseLabel := g.newLabel()
		g.m.emitBranch("ifeq", falseLabel)
		g.genStmt(is.Then)
		g.m.emitBranch("goto", endLabel)

		g.m.placeLabel(falseLabel)
		g.genStmt(is.Else)
	}

	g.m.placeLabel(endLabel)
}

// genWhile generates a while loop.
func (g *Generator) genWhile(ws *ast.WhileStmt) {
	topLabel := g.newLabel()
	exitLabel := g.newLabel()

	g.m.placeLabel(topLabel)
	g.genExpr(ws.Cond)
	g.m.emitBranch("ifeq", exitLabel)

	g.genStmt(ws.Body)
	g.m.emitBranch("goto", topLabel)

	g.m.placeLabel(exitLabel)
}

// genFor generates a for loop.  The control expression branches to the body
// when it holds and falls through to a jump out of the loop otherwise.
func (g *Generator) genFor(fs *ast.ForStmt) {
	topLabel := g.newLabel()
	bodyLabel := g.newLabel()
	exitLabel := g.newLabel()

	g.genStmt(fs.Init)

	g.m.placeLabel(topLabel)
	if fs.Cond.IsComparison() {
		g.genCompareBranch(fs.Cond, bodyLabel)
	} else {
		g.genExpr(fs.Cond)
		g.m.emitBranch("ifne", bodyLabel)
	}

	g.m.emitBranch("goto", exitLabel)

	g.m.placeLabel(bodyLabel)
	g.genStmt(fs.Body)
	g.genStmt(fs.Incr)
	g.m.emitBranch("goto", topLabel)

	g.m.placeLabel(exitLabel)
}

// genSwitch generates a switch statement.  The branches are placed in source
// order: a branch without a `break` falls through into the next one and the
// last one falls through into the default branch.
func (g *Generator) genSwitch(ss *ast.SwitchStmt) {
	g.genExpr(ss.Selector)

	branchLabels := make([]string, len(ss.Branches))
	var cases []switchCase
	for i, branch := range ss.Branches {
		branchLabels[i] = g.newLabel()

		for _, constant := range branch.Constants {
			cases = append(cases, switchCase{
				key:   switchKey(g.notes.ValueOf(constant)),
				label: branchLabels[i],
			})
		}
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].key < cases[j].key
	})

	defaultLabel := g.newLabel()
	breakLabel := g.newLabel()
	g.m.emitLookupSwitch(cases, defaultLabel)

	for i, branch := range ss.Branches {
		g.m.placeLabel(branchLabels[i])

		for _, stmt := range branch.Stmts {
			g.genStmt(stmt)
		}

		if branch.Break {
			g.m.emitBranch("goto", breakLabel)
		}
	}

	g.m.placeLabel(defaultLabel)
	if ss.Default != nil {
		for _, stmt := range ss.Default.Stmts {
			g.genStmt(stmt)
		}
	}

	g.m.placeLabel(breakLabel)
}

// switchKey returns the lookupswitch key of a case constant value.
func switchKey(value interface{}) int {
	switch v := value.(type) {
	case int:
		return v
	case rune:
		return int(v)
	case bool:
		if v {
			return 1
		}

		return 0
	}

	report.ReportICE("invalid case constant value: %v", value)
	return 0
}
