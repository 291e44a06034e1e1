// Package codegen translates an optimized TAC list into MIPS32 assembly
// text, the final stage of spec.md §4.D. It is grounded directly on
// original_source/codegen.c: the same two-phase pre-scan/emit structure,
// the same scratch-register counters reset per instruction, the same
// float-literal .data pooling, and the same wrap-around "ran out of
// registers" behavior in place of real spilling.
package codegen

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/dustin/go-humanize"

	"mipsc/internal/ast"
	"mipsc/internal/compileerrors"
	"mipsc/internal/symtab"
	"mipsc/internal/tac"
)

const (
	intRegCount   = 10 // $t0-$t9
	floatRegCount = 12 // $f0,$f2,...,$f10 (single precision, even only)
)

type floatLiteral struct {
	label string
	text  string
}

// Generator owns one code-generation pass: its own re-initialized symbol
// table (spec.md §4.D deliberately does not reuse the lowering phase's
// table, matching the original's independent initSymTab() call), its
// register counters, and the accumulated float-literal pool.
type Generator struct {
	out  io.Writer
	syms *symtab.Table
	err  error

	intReg    int
	floatReg  int
	labelSeq  int
	warnedInt bool
	warnedFlt bool

	floats    []floatLiteral
	floatSeen map[string]string
}

// NewGenerator returns a Generator writing MIPS assembly text to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{out: w, syms: symtab.NewTable(), floatSeen: map[string]string{}}
}

// Generate runs the full pre-scan + emit pass defined by spec.md §4.D over
// list, writing MIPS32 assembly to w.
func Generate(w io.Writer, list *tac.List) error {
	g := NewGenerator(w)
	return g.Generate(list)
}

func (g *Generator) emitf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	if _, err := fmt.Fprintf(g.out, format, args...); err != nil {
		g.err = compileerrors.Wrap(compileerrors.IOFailure, err, "writing generated assembly")
	}
}

func (g *Generator) Generate(list *tac.List) error {
	stackSize := g.prescan(list)

	g.emitf(".data\n")
	g.emitf("newline: .asciiz \"\\n\"\n")
	for _, f := range g.floats {
		g.emitf("%s: .float %s\n", f.label, f.text)
	}

	g.emitf("\n.text\n")
	g.emitf(".globl main\n")
	g.emitf("main:\n")
	g.emitf("    # stack frame: %s\n", humanize.Bytes(uint64(stackSize)))
	g.emitf("    addi $sp, $sp, -%d\n", stackSize)

	for in := list.Head; in != nil; in = in.Next {
		g.intReg = 0
		g.floatReg = 0
		g.emitInstr(in)
	}

	g.emitf("\n    # exit\n")
	g.emitf("    addi $sp, $sp, %d\n", stackSize)
	g.emitf("    li $v0, 10\n")
	g.emitf("    syscall\n")

	return g.err
}

// prescan rebuilds g.syms from the DECL/DECL_FLOAT/DECL_ARRAY instructions
// in list, computes the total stack frame size, and collects every literal
// float operand into g.floats. Mirrors original_source/codegen.c's
// generateMIPS phase 1.
func (g *Generator) prescan(list *tac.List) int {
	stackSize := 0
	for in := list.Head; in != nil; in = in.Next {
		switch in.Op {
		case tac.DECL:
			g.syms.DeclareVar(in.Result.Name, ast.Int)
			stackSize += 4
		case tac.DECL_FLOAT:
			g.syms.DeclareVar(in.Result.Name, ast.Float)
			stackSize += 4
		case tac.DECL_ARRAY:
			length := in.Arg1.IntVal
			elemType := ast.ScalarType(in.Arg2.IntVal)
			g.syms.DeclareArray(in.Result.Name, elemType, length)
			stackSize += length * 4
		}
		g.findFloatLiteral(in.Arg1)
		g.findFloatLiteral(in.Arg2)
	}
	if stackSize%4 != 0 {
		stackSize += 4 - stackSize%4
	}
	stackSize += 8 // room for $ra and friends
	return stackSize
}

// findFloatLiteral registers o's text in the .data float pool if o is a
// literal float operand not shadowed by a declared variable of the same
// spelling. A variable named e.g. "3.5" cannot exist (the language's
// identifiers cannot start with a digit), so the declared-variable check
// here is a direct port of the original's defensive isVarDeclared guard
// rather than a reachable condition.
func (g *Generator) findFloatLiteral(o *tac.Operand) {
	if o == nil || o.Kind != tac.KindFloatLit {
		return
	}
	text := o.Text()
	if g.syms.IsDeclared(text) {
		return
	}
	if !strings.ContainsAny(text, ".e") {
		return
	}
	if _, ok := g.floatSeen[text]; ok {
		return
	}
	label := fmt.Sprintf("fl%d", len(g.floats))
	g.floatSeen[text] = label
	g.floats = append(g.floats, floatLiteral{label: label, text: text})
}

// --- Register allocation ---

func (g *Generator) nextIntReg() string {
	if g.intReg >= intRegCount {
		if !g.warnedInt {
			log.Printf("codegen: out of integer temp registers, wrapping to $t0 (no spilling)")
			g.warnedInt = true
		}
		g.intReg = 0
	}
	reg := fmt.Sprintf("$t%d", g.intReg)
	g.intReg++
	return reg
}

func (g *Generator) nextFloatReg() string {
	if g.floatReg >= floatRegCount {
		if !g.warnedFlt {
			log.Printf("codegen: out of float temp registers, wrapping to $f0 (no spilling)")
			g.warnedFlt = true
		}
		g.floatReg = 0
	}
	reg := fmt.Sprintf("$f%d", g.floatReg)
	g.floatReg += 2
	return reg
}

// --- Operand loading / storing ---

func (g *Generator) loadInt(o *tac.Operand) string {
	reg := g.nextIntReg()
	if o.Kind == tac.KindIntLit {
		g.emitf("    li %s, %d\n", reg, o.IntVal)
		return reg
	}
	offset := g.syms.OffsetOf(o.Name)
	g.emitf("    lw %s, %d($sp)\n", reg, offset)
	return reg
}

func (g *Generator) loadFloat(o *tac.Operand) string {
	reg := g.nextFloatReg()
	if o.Kind == tac.KindFloatLit {
		label, ok := g.floatSeen[o.Text()]
		if !ok {
			g.emitf("    # internal error: float literal %s missing from pre-scan\n", o.Text())
			return reg
		}
		g.emitf("    l.s %s, %s\n", reg, label)
		return reg
	}
	offset := g.syms.OffsetOf(o.Name)
	g.emitf("    l.s %s, %d($sp)\n", reg, offset)
	return reg
}

func (g *Generator) storeInt(reg, varName string) {
	g.emitf("    sw %s, %d($sp)\n", reg, g.syms.OffsetOf(varName))
}

func (g *Generator) storeFloat(reg, varName string) {
	g.emitf("    s.s %s, %d($sp)\n", reg, g.syms.OffsetOf(varName))
}

// --- Instruction emission ---

func (g *Generator) emitInstr(in *tac.Instr) {
	switch in.Op {
	case tac.DECL, tac.DECL_FLOAT, tac.DECL_ARRAY:
		g.emitf("    # (declaration: %s)\n", in.Result.Name)

	case tac.ADD:
		g.emitIntArith("add", in)
	case tac.SUB:
		g.emitIntArith("sub", in)
	case tac.MUL:
		g.emitMulDiv("mult", in)
	case tac.DIV:
		g.emitMulDiv("div", in)

	case tac.FADD:
		g.emitFloatArith("add.s", in)
	case tac.FSUB:
		g.emitFloatArith("sub.s", in)
	case tac.FMUL:
		g.emitFloatArith("mul.s", in)
	case tac.FDIV:
		g.emitFloatArith("div.s", in)

	case tac.INT_TO_FLOAT:
		r1 := g.loadInt(in.Arg1)
		res := g.nextFloatReg()
		g.emitf("    mtc1 %s, %s\n", r1, res)
		g.emitf("    cvt.s.w %s, %s\n", res, res)
		g.storeFloat(res, in.Result.Name)

	case tac.FLOAT_TO_INT:
		r1 := g.loadFloat(in.Arg1)
		tmp := g.nextFloatReg()
		res := g.nextIntReg()
		g.emitf("    trunc.w.s %s, %s\n", tmp, r1)
		g.emitf("    mfc1 %s, %s\n", res, tmp)
		g.storeInt(res, in.Result.Name)

	case tac.ASSIGN:
		if g.syms.TypeOf(in.Result.Name) == ast.Float {
			r1 := g.loadFloat(in.Arg1)
			g.storeFloat(r1, in.Result.Name)
		} else {
			r1 := g.loadInt(in.Arg1)
			g.storeInt(r1, in.Result.Name)
		}

	case tac.PRINT:
		r1 := g.loadInt(in.Arg1)
		g.emitf("    move $a0, %s\n", r1)
		g.emitf("    li $v0, 1\n")
		g.emitf("    syscall\n")
		g.emitNewline()

	case tac.FPRINT:
		r1 := g.loadFloat(in.Arg1)
		g.emitf("    mov.s $f12, %s\n", r1)
		g.emitf("    li $v0, 2\n")
		g.emitf("    syscall\n")
		g.emitNewline()

	case tac.WRITE:
		r1 := g.loadInt(in.Arg1)
		label := g.labelSeq
		g.labelSeq++
		g.emitf("    move $a0, %s\n", r1)
		g.emitf("    li $t9, 256\n")
		g.emitf("    blt $a0, $t9, write_char_%d\n", label)
		g.emitf("    li $v0, 1\n")
		g.emitf("    syscall\n")
		g.emitf("    j write_done_%d\n", label)
		g.emitf("write_char_%d:\n", label)
		g.emitf("    li $v0, 11\n")
		g.emitf("    syscall\n")
		g.emitf("write_done_%d:\n", label)

	case tac.WRITELN:
		g.emitNewline()

	case tac.EQ:
		g.emitRel("seq", in)
	case tac.NE:
		g.emitRel("sne", in)
	case tac.LT:
		g.emitRel("slt", in)
	case tac.LE:
		g.emitRel("sle", in)
	case tac.GT:
		g.emitRel("sgt", in)
	case tac.GE:
		g.emitRel("sge", in)

	case tac.AND:
		g.emitLogical("and", in)
	case tac.OR:
		g.emitLogical("or", in)

	case tac.NOT:
		r1 := g.loadInt(in.Arg1)
		res := g.nextIntReg()
		g.emitf("    seq %s, %s, $zero\n", res, r1)
		g.storeInt(res, in.Result.Name)

	case tac.IF_FALSE:
		r1 := g.loadInt(in.Arg1)
		g.emitf("    beqz %s, %s\n", r1, in.Result.Name)

	case tac.GOTO:
		g.emitf("    j %s\n", in.Result.Name)

	case tac.STORE:
		g.emitStore(in)
	case tac.LOAD:
		g.emitLoad(in)

	case tac.LABEL:
		g.emitf("%s:\n", in.Result.Name)

	case tac.FUNC_BEGIN:
		g.emitf("\n# function %s\n", in.Result.Name)
	case tac.FUNC_END:
		g.emitf("# end of function %s\n\n", in.Result.Name)

	case tac.PARAM:
		g.emitParam(in)

	case tac.CALL:
		g.emitf("    addi $sp, $sp, -4\n")
		g.emitf("    sw $ra, 0($sp)\n")
		g.emitf("    # call %s with %d argument(s)\n", in.Arg1.Name, in.ParamCount)
		g.emitf("    jal %s\n", in.Arg1.Name)
		g.emitf("    lw $ra, 0($sp)\n")
		g.emitf("    addi $sp, $sp, 4\n")
		g.emitf("    addi $sp, $sp, %d\n", in.ParamCount*4)
		g.emitf("    sw $v0, %d($sp)\n", g.syms.OffsetOf(in.Result.Name))

	case tac.RETURN:
		if in.Arg1 != nil {
			r := g.loadInt(in.Arg1)
			g.emitf("    move $v0, %s\n", r)
		}
		g.emitf("    jr $ra\n")

	default:
		g.emitf("    # unhandled opcode %s\n", in.Op)
	}
}

func (g *Generator) emitNewline() {
	g.emitf("    la $a0, newline\n")
	g.emitf("    li $v0, 4\n")
	g.emitf("    syscall\n")
}

func (g *Generator) emitIntArith(mnemonic string, in *tac.Instr) {
	r1 := g.loadInt(in.Arg1)
	r2 := g.loadInt(in.Arg2)
	res := g.nextIntReg()
	g.emitf("    %s %s, %s, %s\n", mnemonic, res, r1, r2)
	g.storeInt(res, in.Result.Name)
}

func (g *Generator) emitMulDiv(mnemonic string, in *tac.Instr) {
	r1 := g.loadInt(in.Arg1)
	r2 := g.loadInt(in.Arg2)
	res := g.nextIntReg()
	g.emitf("    %s %s, %s\n", mnemonic, r1, r2)
	g.emitf("    mflo %s\n", res)
	g.storeInt(res, in.Result.Name)
}

func (g *Generator) emitFloatArith(mnemonic string, in *tac.Instr) {
	r1 := g.loadFloat(in.Arg1)
	r2 := g.loadFloat(in.Arg2)
	res := g.nextFloatReg()
	g.emitf("    %s %s, %s, %s\n", mnemonic, res, r1, r2)
	g.storeFloat(res, in.Result.Name)
}

func (g *Generator) emitRel(mnemonic string, in *tac.Instr) {
	r1 := g.loadInt(in.Arg1)
	r2 := g.loadInt(in.Arg2)
	res := g.nextIntReg()
	g.emitf("    %s %s, %s, %s\n", mnemonic, res, r1, r2)
	g.storeInt(res, in.Result.Name)
}

func (g *Generator) emitLogical(mnemonic string, in *tac.Instr) {
	r1 := g.loadInt(in.Arg1)
	r2 := g.loadInt(in.Arg2)
	res := g.nextIntReg()
	g.emitf("    %s %s, %s, %s\n", mnemonic, res, r1, r2)
	g.emitf("    sltu %s, $zero, %s\n", res, res)
	g.storeInt(res, in.Result.Name)
}

// emitStore handles arr[index] = value, scaling the index by the word size
// and adding it to the array's base stack address (spec.md §4.D).
func (g *Generator) emitStore(in *tac.Instr) {
	idx := g.loadInt(in.Arg1)
	scaled := g.nextIntReg()
	g.emitf("    sll %s, %s, 2\n", scaled, idx)
	base := g.nextIntReg()
	g.emitf("    addi %s, $sp, %d\n", base, g.syms.OffsetOf(in.Result.Name))
	addr := g.nextIntReg()
	g.emitf("    add %s, %s, %s\n", addr, base, scaled)

	if g.syms.TypeOf(in.Result.Name) == ast.Float {
		val := g.loadFloat(in.Arg2)
		g.emitf("    s.s %s, 0(%s)\n", val, addr)
	} else {
		val := g.loadInt(in.Arg2)
		g.emitf("    sw %s, 0(%s)\n", val, addr)
	}
}

// emitLoad handles result = arr[index].
func (g *Generator) emitLoad(in *tac.Instr) {
	idx := g.loadInt(in.Arg2)
	scaled := g.nextIntReg()
	g.emitf("    sll %s, %s, 2\n", scaled, idx)
	base := g.nextIntReg()
	g.emitf("    addi %s, $sp, %d\n", base, g.syms.OffsetOf(in.Arg1.Name))
	addr := g.nextIntReg()
	g.emitf("    add %s, %s, %s\n", addr, base, scaled)

	if g.syms.TypeOf(in.Arg1.Name) == ast.Float {
		res := g.nextFloatReg()
		g.emitf("    l.s %s, 0(%s)\n", res, addr)
		g.storeFloat(res, in.Result.Name)
	} else {
		res := g.nextIntReg()
		g.emitf("    lw %s, 0(%s)\n", res, addr)
		g.storeInt(res, in.Result.Name)
	}
}

// emitParam pushes one call argument onto the stack. Parameters are always
// declared integer by lowering (spec.md §9); a float-typed variable or a
// literal float passed in its place still takes the float path so a
// mis-typed call argument doesn't silently truncate.
func (g *Generator) emitParam(in *tac.Instr) {
	var isFloat bool
	switch in.Arg1.Kind {
	case tac.KindFloatLit:
		isFloat = true
	case tac.KindVar, tac.KindTemp:
		isFloat = g.syms.IsDeclared(in.Arg1.Name) && g.syms.TypeOf(in.Arg1.Name) == ast.Float
	}

	if isFloat {
		r := g.loadFloat(in.Arg1)
		g.emitf("    addi $sp, $sp, -4\n")
		g.emitf("    s.s %s, 0($sp)\n", r)
		return
	}
	r := g.loadInt(in.Arg1)
	g.emitf("    addi $sp, $sp, -4\n")
	g.emitf("    sw %s, 0($sp)\n", r)
}
