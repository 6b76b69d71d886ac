package generate

import (
	"strings"

	"subc/report"
)

// stackCounter simulates the depth of the JVM operand stack over the
// instructions of one method.  Depths are counted in words: longs and doubles
// take two.  The depth at every branch target is recorded so that code placed
// after an unconditional transfer resumes at the depth its label is reached
// with.
type stackCounter struct {
	depth, max int

	// The depth at which each label is reached.
	targets map[string]int

	// Whether the instruction being counted can be reached by falling through
	// from the previous one.
	reachable bool
}

func newStackCounter() *stackCounter {
	return &stackCounter{targets: make(map[string]int), reachable: true}
}

// apply applies the effect of an instruction popping pop words and pushing
// push words.
func (sc *stackCounter) apply(op string, pop, push int) {
	if sc.depth < pop {
		report.ReportICE("operand stack underflow: `%s` pops %d words at depth %d", op, pop, sc.depth)
	}

	sc.depth += push - pop
	if sc.depth > sc.max {
		sc.max = sc.depth
	}
}

// jumpTo records a jump to the given label at the current depth.
func (sc *stackCounter) jumpTo(label string) {
	if depth, ok := sc.targets[label]; ok && depth != sc.depth {
		report.ReportICE("label %s reached at depths %d and %d", label, depth, sc.depth)
	}

	sc.targets[label] = sc.depth
}

// terminate marks the end of a straight-line sequence: the next instruction is
// only reachable through a label.
func (sc *stackCounter) terminate() {
	sc.reachable = false
}

// place records the placement of a label in the instruction sequence.
func (sc *stackCounter) place(label string) {
	if depth, ok := sc.targets[label]; ok {
		if sc.reachable && depth != sc.depth {
			report.ReportICE("label %s reached at depths %d and %d", label, depth, sc.depth)
		}

		sc.depth = depth
	} else {
		sc.targets[label] = sc.depth
	}

	sc.reachable = true
}

// -----------------------------------------------------------------------------

// simpleEffects maps the mnemonics of instructions with a fixed stack effect
// to the number of words they pop and push.
var simpleEffects = map[string][2]int{
	"aconst_null": {0, 1},
	"iconst_m1":   {0, 1},
	"iconst_0":    {0, 1},
	"iconst_1":    {0, 1},
	"iconst_2":    {0, 1},
	"iconst_3":    {0, 1},
	"iconst_4":    {0, 1},
	"iconst_5":    {0, 1},
	"fconst_0":    {0, 1},
	"fconst_1":    {0, 1},
	"fconst_2":    {0, 1},
	"bipush":      {0, 1},
	"sipush":      {0, 1},
	"ldc":         {0, 1},
	"ldc2_w":      {0, 2},

	"iload":  {0, 1},
	"fload":  {0, 1},
	"aload":  {0, 1},
	"lload":  {0, 2},
	"istore": {1, 0},
	"fstore": {1, 0},
	"astore": {1, 0},
	"lstore": {2, 0},

	"iaload":  {2, 1},
	"faload":  {2, 1},
	"baload":  {2, 1},
	"caload":  {2, 1},
	"aaload":  {2, 1},
	"iastore": {3, 0},
	"fastore": {3, 0},
	"bastore": {3, 0},
	"castore": {3, 0},
	"aastore": {3, 0},

	"iadd": {2, 1},
	"isub": {2, 1},
	"imul": {2, 1},
	"idiv": {2, 1},
	"irem": {2, 1},
	"iand": {2, 1},
	"ior":  {2, 1},
	"ixor": {2, 1},
	"ineg": {1, 1},
	"fadd": {2, 1},
	"fsub": {2, 1},
	"fmul": {2, 1},
	"fdiv": {2, 1},
	"fneg": {1, 1},
	"i2f":  {1, 1},

	"fcmpg": {2, 1},
	"fcmpl": {2, 1},

	"ifeq":      {1, 0},
	"ifne":      {1, 0},
	"iflt":      {1, 0},
	"ifle":      {1, 0},
	"ifgt":      {1, 0},
	"ifge":      {1, 0},
	"if_icmpeq": {2, 0},
	"if_icmpne": {2, 0},
	"if_icmplt": {2, 0},
	"if_icmple": {2, 0},
	"if_icmpgt": {2, 0},
	"if_icmpge": {2, 0},
	"goto":      {0, 0},

	"dup":    {1, 2},
	"dup_x1": {2, 3},
	"dup2":   {2, 4},
	"swap":   {2, 2},
	"pop":    {1, 0},

	"new":       {0, 1},
	"newarray":  {1, 1},
	"anewarray": {1, 1},

	"ireturn":      {1, 0},
	"freturn":      {1, 0},
	"areturn":      {1, 0},
	"return":       {0, 0},
	"lookupswitch": {1, 0},
}

// terminators lists the instructions after which control never falls through.
var terminators = map[string]struct{}{
	"goto":         {},
	"ireturn":      {},
	"freturn":      {},
	"areturn":      {},
	"return":       {},
	"lookupswitch": {},
}

// effectOf returns the number of words popped and pushed by an instruction.
func effectOf(op, operand string) (int, int) {
	// Short forms of the local variable instructions: eg. `iload_2`.
	if i := strings.IndexByte(op, '_'); i > 0 && len(op) == i+2 && '0' <= op[i+1] && op[i+1] <= '3' {
		switch base := op[:i]; base {
		case "iload", "fload", "aload", "lload", "istore", "fstore", "astore", "lstore":
			effect := simpleEffects[base]
			return effect[0], effect[1]
		}
	}

	if effect, ok := simpleEffects[op]; ok {
		return effect[0], effect[1]
	}

	switch op {
	case "getstatic":
		return 0, fieldSize(fieldDescriptor(operand))
	case "putstatic":
		return fieldSize(fieldDescriptor(operand)), 0
	case "invokestatic", "invokevirtual", "invokespecial":
		args, ret := methodSizes(operand)
		if op != "invokestatic" {
			args++
		}

		return args, ret
	}

	report.ReportICE("no stack effect known for `%s`", op)
	return 0, 0
}

// fieldDescriptor returns the descriptor of a field reference operand of the
// form `Class/name desc`.
func fieldDescriptor(operand string) string {
	return operand[strings.LastIndexByte(operand, ' ')+1:]
}

// methodSizes returns the total size in words of the parameters and the size
// of the result of a method reference operand of the form
// `Class/name(params)result`.
func methodSizes(operand string) (int, int) {
	lparen := strings.IndexByte(operand, '(')
	rparen := strings.LastIndexByte(operand, ')')
	if lparen < 0 || rparen < lparen {
		report.ReportICE("malformed method reference: `%s`", operand)
	}

	params := operand[lparen+1 : rparen]
	args := 0
	for len(params) > 0 {
		n := descriptorLen(params)
		args += fieldSize(params[:n])
		params = params[n:]
	}

	return args, fieldSize(operand[rparen+1:])
}

// descriptorLen returns the length of the field descriptor at the start of a
// sequence of descriptors.
func descriptorLen(descs string) int {
	n := 0
	for descs[n] == '[' {
		n++
	}

	if descs[n] == 'L' {
		return n + strings.IndexByte(descs[n:], ';') + 1
	}

	return n + 1
}

// fieldSize returns the size in words of a value of a field descriptor.
func fieldSize(desc string) int {
	switch desc {
	case "V":
		return 0
	case "J", "D":
		return 2
	default:
		return 1
	}
}
