package tac

import (
	"fmt"
	"strconv"
)

// OperandKind tags the five things a TAC operand can be: a literal of either
// scalar type, a user variable, a compiler-generated temporary, or a label.
// spec.md §9 prefers this over the original's raw strings re-parsed at
// codegen time ("isdigit(s[0])"); the textual form below is kept only as an
// output-only convenience for the MIPS emitter.
type OperandKind int

const (
	KindIntLit OperandKind = iota
	KindFloatLit
	KindVar
	KindTemp
	KindLabel
)

// Operand is one TAC argument or result slot.
type Operand struct {
	Kind      OperandKind
	IntVal    int
	FloatVal  float64
	FloatText string // decimal text, e.g. "1.500000"; always set for KindFloatLit
	Name      string // variable name, "tN", or "LN"
}

// IntLiteral builds an integer-literal operand.
func IntLiteral(v int) Operand {
	return Operand{Kind: KindIntLit, IntVal: v}
}

// FloatLiteral builds a float-literal operand. text is the decimal form
// (spec.md §4.B: "with a decimal point") codegen's .data section emits
// verbatim.
func FloatLiteral(v float64, text string) Operand {
	if text == "" {
		text = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return Operand{Kind: KindFloatLit, FloatVal: v, FloatText: text}
}

// Var builds a user-variable operand.
func Var(name string) Operand {
	return Operand{Kind: KindVar, Name: name}
}

// IsLiteral reports whether the operand is an integer or float literal (as
// opposed to a variable, temporary, or label).
func (o Operand) IsLiteral() bool {
	return o.Kind == KindIntLit || o.Kind == KindFloatLit
}

// IsTemp reports whether the operand names a compiler-generated temporary.
func (o Operand) IsTemp() bool {
	return o.Kind == KindTemp
}

// Text is the textual form of the operand: decimal digits for a literal,
// otherwise the variable/temp/label name. This is the only place this
// package re-derives a string form, and it exists solely for codegen and
// for human-readable dumps — never re-parsed back into a Kind.
func (o Operand) Text() string {
	switch o.Kind {
	case KindIntLit:
		return strconv.Itoa(o.IntVal)
	case KindFloatLit:
		return o.FloatText
	case KindVar, KindTemp, KindLabel:
		return o.Name
	default:
		return fmt.Sprintf("<bad operand kind %d>", o.Kind)
	}
}

func (o Operand) String() string { return o.Text() }
