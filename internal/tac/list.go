package tac

import "fmt"

// Instr is one three-address instruction: an opcode with up to two source
// operands and one result, plus ParamCount (used only by CALL). Matches
// spec.md §3's TAC instruction and original_source/tac.h's TACInstr.
type Instr struct {
	Op         Op
	Arg1       *Operand
	Arg2       *Operand
	Result     *Operand
	ParamCount int

	Next *Instr // singly-linked, insertion order (spec.md §3)
}

// List is the singly-linked, insertion-ordered TAC sequence of spec.md §3:
// head, tail, a monotonically growing temp counter, and a label counter.
// Two lists exist per Compilation: the freshly lowered list and the
// optimized list produced by internal/optimize.
type List struct {
	Head *Instr
	Tail *Instr

	tempCount  int
	labelCount int
}

// NewList returns an empty TAC list.
func NewList() *List {
	return &List{}
}

// Append adds instr to the end of the list.
func (l *List) Append(instr *Instr) {
	if l.Tail == nil {
		l.Head = instr
		l.Tail = instr
		return
	}
	l.Tail.Next = instr
	l.Tail = instr
}

// Emit is a convenience constructor + append in one call.
func (l *List) Emit(op Op, arg1, arg2, result *Operand) *Instr {
	instr := &Instr{Op: op, Arg1: arg1, Arg2: arg2, Result: result}
	l.Append(instr)
	return instr
}

// NewTemp generates a fresh temporary operand "tN" and advances the counter.
// spec.md §3: "the name of a temporary uniquely identifies its single
// defining instruction" — callers must emit exactly one instruction whose
// Result is the returned operand before calling NewTemp again for reuse of
// the same purpose.
func (l *List) NewTemp() Operand {
	name := fmt.Sprintf("t%d", l.tempCount)
	l.tempCount++
	return Operand{Kind: KindTemp, Name: name}
}

// NewLabel generates a fresh label operand "LN".
func (l *List) NewLabel() Operand {
	name := fmt.Sprintf("L%d", l.labelCount)
	l.labelCount++
	return Operand{Kind: KindLabel, Name: name}
}

// Instructions flattens the linked list into a slice for callers (optimizer,
// codegen, tests) that prefer range-for iteration over manual Next-walking.
func (l *List) Instructions() []*Instr {
	out := make([]*Instr, 0, 32)
	for i := l.Head; i != nil; i = i.Next {
		out = append(out, i)
	}
	return out
}

// Len reports the number of instructions currently in the list.
func (l *List) Len() int {
	n := 0
	for i := l.Head; i != nil; i = i.Next {
		n++
	}
	return n
}

func opnd(o *Operand) string {
	if o == nil {
		return "-"
	}
	return o.Text()
}

// String renders one instruction in a human-readable "OP arg1, arg2 -> result"
// form, useful for debug dumps and test failure messages (not the textual
// pretty-printer spec.md excludes as out-of-scope — that's a product-facing
// IR formatter; this is a %v/test-assertion helper).
func (in *Instr) String() string {
	return fmt.Sprintf("%s %s, %s -> %s", in.Op, opnd(in.Arg1), opnd(in.Arg2), opnd(in.Result))
}
