package generate

import (
	"fmt"
	"strings"
)

// method is the instruction buffer of a single method being generated.  It
// counts the operand stack effect of every instruction it is given.
type method struct {
	// The header directive of the method: eg. `.method private static f(I)I`.
	header string

	// The `.var` directives describing the local variables of the method.
	vars []string

	// The instruction and label lines of the method body.
	body []string

	stack *stackCounter

	// The number of local variable slots the method uses.
	locals int
}

func newMethod(header string, locals int) *method {
	return &method{header: header, stack: newStackCounter(), locals: locals}
}

// declareVar adds a `.var` directive for a local variable.
func (m *method) declareVar(slot int, name, desc string) {
	m.vars = append(m.vars, fmt.Sprintf(".var %d is %s %s", slot, name, desc))
}

// emit appends an instruction to the method.
func (m *method) emit(op string, operands ...interface{}) {
	var operand string
	if len(operands) > 0 {
		strs := make([]string, len(operands))
		for i, o := range operands {
			strs[i] = fmt.Sprint(o)
		}

		operand = strings.Join(strs, " ")
	}

	pop, push := effectOf(op, operand)
	m.stack.apply(op, pop, push)

	if operand == "" {
		m.body = append(m.body, "\t"+op)
	} else {
		m.body = append(m.body, "\t"+op+" "+operand)
	}

	if _, ok := terminators[op]; ok {
		m.stack.terminate()
	}
}

// emitBranch appends a branch instruction to the given label.
func (m *method) emitBranch(op, label string) {
	m.emit(op, label)
	m.stack.jumpTo(label)
}

// switchCase is a single key of a lookupswitch.
type switchCase struct {
	key   int
	label string
}

// emitLookupSwitch appends a lookupswitch dispatching on the given keys which
// must be sorted in ascending order.
func (m *method) emitLookupSwitch(cases []switchCase, defaultLabel string) {
	m.emit("lookupswitch")

	for _, c := range cases {
		m.body = append(m.body, fmt.Sprintf("\t  %d: %s", c.key, c.label))
		m.stack.jumpTo(c.label)
	}

	m.body = append(m.body, "\t  default: "+defaultLabel)
	m.stack.jumpTo(defaultLabel)
}

// placeLabel places a label before the next instruction.
func (m *method) placeLabel(label string) {
	m.body = append(m.body, label+":")
	m.stack.place(label)
}

// blank appends an empty line to separate sections of the body.
func (m *method) blank() {
	m.body = append(m.body, "")
}

// -----------------------------------------------------------------------------

// writeTo writes the complete method, including its resource directives.
func (m *method) writeTo(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(m.header)
	sb.WriteString("\n")

	if len(m.vars) > 0 {
		sb.WriteString("\n")
		for _, v := range m.vars {
			sb.WriteString(v)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	for _, line := range m.body {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "\n.limit locals %d\n", m.locals)
	fmt.Fprintf(sb, ".limit stack %d\n", m.stack.max)
	sb.WriteString(".end method\n")
}
