package tac

//go:generate go run golang.org/x/tools/cmd/stringer -type=Op

// Op is the TAC opcode set of spec.md §3/§4.B, identical in shape to
// original_source/tac.h's TACOp enum plus the WRITE/WRITELN opcodes
// spec.md's statement-lowering rules name.
type Op int

const (
	ADD Op = iota
	SUB
	MUL
	DIV
	ASSIGN
	PRINT
	DECL

	FADD
	FSUB
	FMUL
	FDIV
	FPRINT
	DECL_FLOAT

	INT_TO_FLOAT
	FLOAT_TO_INT

	DECL_ARRAY
	STORE
	LOAD

	LABEL
	PARAM
	CALL
	RETURN
	FUNC_BEGIN
	FUNC_END

	IF_FALSE
	GOTO
	EQ
	NE
	LT
	LE
	GT
	GE

	AND
	OR
	NOT

	WRITE
	WRITELN
)
