package walk

import (
	"subc/ast"
	"subc/report"
	"subc/symtab"
	"subc/types"
)

// Annotations holds the results of semantic analysis out of band from the
// syntax tree.  Every table is keyed by node identity and every entry is
// written exactly once by the walker: the code generator only reads them.
type Annotations struct {
	types   map[ast.NodeID]*types.Type
	symbols map[ast.NodeID]*symtab.Symbol
	values  map[ast.NodeID]interface{}
}

// newAnnotations creates a new empty set of annotations.
func newAnnotations() *Annotations {
	return &Annotations{
		types:   make(map[ast.NodeID]*types.Type),
		symbols: make(map[ast.NodeID]*symtab.Symbol),
		values:  make(map[ast.NodeID]interface{}),
	}
}

// setType records the type of an expression-bearing node.
func (an *Annotations) setType(node ast.Node, typ *types.Type) {
	if _, ok := an.types[node.ID()]; ok {
		report.ReportICE("type of node %d annotated twice", node.ID())
	}

	an.types[node.ID()] = typ
}

// setSymbol records the symbol a name-bearing node declares or refers to.
func (an *Annotations) setSymbol(node ast.Node, sym *symtab.Symbol) {
	if _, ok := an.symbols[node.ID()]; ok {
		report.ReportICE("symbol of node %d annotated twice", node.ID())
	}

	an.symbols[node.ID()] = sym
}

// setValue records the compile-time value of a literal or constant node.
func (an *Annotations) setValue(node ast.Node, value interface{}) {
	if _, ok := an.values[node.ID()]; ok {
		report.ReportICE("value of node %d annotated twice", node.ID())
	}

	an.values[node.ID()] = value
}

// -----------------------------------------------------------------------------

// TypeOf returns the type annotated on a node.  A missing annotation is an
// internal compiler error.
func (an *Annotations) TypeOf(node ast.Node) *types.Type {
	typ, ok := an.types[node.ID()]
	if !ok {
		report.ReportICE("missing type annotation on node %d", node.ID())
	}

	return typ
}

// SymbolOf returns the symbol annotated on a node.  A missing annotation is an
// internal compiler error.
func (an *Annotations) SymbolOf(node ast.Node) *symtab.Symbol {
	sym, ok := an.symbols[node.ID()]
	if !ok {
		report.ReportICE("missing symbol annotation on node %d", node.ID())
	}

	return sym
}

// ValueOf returns the value annotated on a node.  A missing annotation is an
// internal compiler error.
func (an *Annotations) ValueOf(node ast.Node) interface{} {
	value, ok := an.values[node.ID()]
	if !ok {
		report.ReportICE("missing value annotation on node %d", node.ID())
	}

	return value
}

// HasValue returns whether a node has a compile-time value.
func (an *Annotations) HasValue(node ast.Node) bool {
	_, ok := an.values[node.ID()]
	return ok
}

// Len returns the number of entries in each table: types, symbols, and values.
func (an *Annotations) Len() (int, int, int) {
	return len(an.types), len(an.symbols), len(an.values)
}
