package generate

import (
	"subc/symtab"
	"subc/types"
)

// emitData emits the allocation of the structured data of a scope before the
// code of its owner runs.  Arrays are created and stored in their variables.
// Local scalars, including the return variable of a routine, are set to
// their default values so that every slot is assigned before it is read.
// Global scalars only need an explicit value if they are strings: static
// fields of primitive types already start out zeroed.
func (g *Generator) emitData(scope *symtab.Scope) {
	for _, sym := range scope.SortedEntries() {
		if sym.Kind != symtab.KindVariable || sym.Type == types.Void {
			continue
		}

		switch {
		case sym.Type.Form == types.FormArray:
			g.pushInt(sym.Type.ElemCount)

			if elemType, primitive := newArrayType(sym.Type.ElemType); primitive {
				g.emit("newarray", elemType)
			} else {
				g.emit("anewarray", elemType)
			}
		case sym.HasSlot() || sym.Type == types.String:
			g.pushDefault(sym.Type)
		default:
			continue
		}

		g.storeSymbol(sym)
	}
}
