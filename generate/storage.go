package generate

import (
	"fmt"
	"strconv"
	"strings"

	"subc/report"
	"subc/symtab"
	"subc/types"
)

// loadSymbol pushes the value stored by a variable or parameter.  Globals are
// read from their static field.
func (g *Generator) loadSymbol(sym *symtab.Symbol) {
	if sym.HasSlot() {
		g.emitLocal(localPrefix(sym.Type)+"load", sym.Slot)
	} else {
		g.emit("getstatic", g.fieldRef(sym.Name, sym.Type.Descriptor()))
	}
}

// storeSymbol pops a value into the storage of a variable or parameter.
func (g *Generator) storeSymbol(sym *symtab.Symbol) {
	if sym.HasSlot() {
		g.emitLocal(localPrefix(sym.Type)+"store", sym.Slot)
	} else {
		g.emit("putstatic", g.fieldRef(sym.Name, sym.Type.Descriptor()))
	}
}

// emitLocal emits an instruction accessing a local variable slot, using the
// short form for the first four slots.
func (g *Generator) emitLocal(op string, slot int) {
	if slot <= 3 {
		g.emit(fmt.Sprintf("%s_%d", op, slot))
	} else {
		g.emit(op, slot)
	}
}

// -----------------------------------------------------------------------------

// pushValue pushes a compile-time constant value.
func (g *Generator) pushValue(value interface{}) {
	switch v := value.(type) {
	case int:
		g.pushInt(v)
	case rune:
		g.pushInt(int(v))
	case bool:
		if v {
			g.emit("iconst_1")
		} else {
			g.emit("iconst_0")
		}
	case float32:
		g.pushReal(v)
	case string:
		g.emit("ldc", `"`+v+`"`)
	default:
		report.ReportICE("cannot push constant of type %T", value)
	}
}

// pushInt pushes an integer constant using the shortest instruction.
func (g *Generator) pushInt(n int) {
	switch {
	case -1 <= n && n <= 5:
		if n == -1 {
			g.emit("iconst_m1")
		} else {
			g.emit(fmt.Sprintf("iconst_%d", n))
		}
	case -128 <= n && n <= 127:
		g.emit("bipush", n)
	case -32768 <= n && n <= 32767:
		g.emit("sipush", n)
	default:
		g.emit("ldc", n)
	}
}

// pushReal pushes a real constant.
func (g *Generator) pushReal(f float32) {
	switch f {
	case 0:
		g.emit("fconst_0")
	case 1:
		g.emit("fconst_1")
	case 2:
		g.emit("fconst_2")
	default:
		text := strconv.FormatFloat(float64(f), 'f', -1, 32)
		if !strings.ContainsRune(text, '.') {
			text += ".0"
		}

		g.emit("ldc", text)
	}
}

// pushDefault pushes the value storage of the given type holds before it is
// first assigned.
func (g *Generator) pushDefault(typ *types.Type) {
	switch typ {
	case types.Real:
		g.emit("fconst_0")
	case types.String:
		g.emit("ldc", `""`)
	default:
		g.emit("iconst_0")
	}
}
