package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsc/internal/optimize"
	"mipsc/internal/tac"
)

func TestConstantFoldingAdd(t *testing.T) {
	list := tac.NewList()
	left := tac.IntLiteral(2)
	right := tac.IntLiteral(3)
	result := list.NewTemp()
	list.Emit(tac.ADD, &left, &right, &result)
	value := result
	list.Emit(tac.PRINT, &value, nil, nil)

	out := optimize.Optimize(list)

	var folded *tac.Instr
	for in := out.Head; in != nil; in = in.Next {
		if in.Op == tac.PRINT {
			folded = in
		}
	}
	require.NotNil(t, folded)
	assert.Equal(t, tac.KindIntLit, folded.Arg1.Kind)
	assert.Equal(t, 5, folded.Arg1.IntVal)
}

func TestDivisionByZeroIsNotFolded(t *testing.T) {
	list := tac.NewList()
	left := tac.IntLiteral(4)
	right := tac.IntLiteral(0)
	result := list.NewTemp()
	list.Emit(tac.DIV, &left, &right, &result)
	value := result
	list.Emit(tac.PRINT, &value, nil, nil)

	out := optimize.Optimize(list)

	found := false
	for in := out.Head; in != nil; in = in.Next {
		if in.Op == tac.DIV {
			found = true
		}
	}
	assert.True(t, found, "division by zero must survive optimization unfolded")
}

func TestCopyPropagationThroughAssign(t *testing.T) {
	list := tac.NewList()
	lit := tac.IntLiteral(9)
	x := tac.Var("x")
	list.Emit(tac.ASSIGN, &lit, nil, &x)
	xRead := tac.Var("x")
	list.Emit(tac.PRINT, &xRead, nil, nil)

	out := optimize.Optimize(list)

	var printInstr *tac.Instr
	for in := out.Head; in != nil; in = in.Next {
		if in.Op == tac.PRINT {
			printInstr = in
		}
	}
	require.NotNil(t, printInstr)
	assert.Equal(t, tac.KindIntLit, printInstr.Arg1.Kind)
	assert.Equal(t, 9, printInstr.Arg1.IntVal)
}

func TestDeadTemporaryIsEliminated(t *testing.T) {
	list := tac.NewList()
	left := tac.Var("a")
	right := tac.Var("b")
	unused := list.NewTemp()
	list.Emit(tac.ADD, &left, &right, &unused)

	out := optimize.Optimize(list)

	assert.Equal(t, 0, out.Len())
}

func TestFloatArithmeticPassesThroughUnfolded(t *testing.T) {
	list := tac.NewList()
	left := tac.FloatLiteral(1.5, "1.5")
	right := tac.FloatLiteral(2.5, "2.5")
	result := list.NewTemp()
	list.Emit(tac.FADD, &left, &right, &result)
	value := result
	list.Emit(tac.FPRINT, &value, nil, nil)

	out := optimize.Optimize(list)

	ops := make([]tac.Op, 0)
	for in := out.Head; in != nil; in = in.Next {
		ops = append(ops, in.Op)
	}
	assert.Contains(t, ops, tac.FADD)
}
