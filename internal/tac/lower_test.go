package tac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsc/internal/ast"
	"mipsc/internal/symtab"
	"mipsc/internal/tac"
)

func opsOf(list *tac.List) []tac.Op {
	var ops []tac.Op
	for in := list.Head; in != nil; in = in.Next {
		ops = append(ops, in.Op)
	}
	return ops
}

func TestLowerVarDeclAndAssign(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.Assign{Name: "x", Value: &ast.IntLit{Value: 5}},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	assert.Equal(t, []tac.Op{tac.DECL, tac.ASSIGN}, opsOf(list))
}

func TestLowerMixedArithmeticInsertsIntToFloat(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "f", Type: ast.Float},
		&ast.Assign{Name: "f", Value: &ast.BinaryExpr{
			Op:    ast.Add,
			Left:  &ast.IntLit{Value: 1},
			Right: &ast.FloatLit{Value: 2.5, Text: "2.5"},
		}},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	assert.Contains(t, opsOf(list), tac.INT_TO_FLOAT)
	assert.Contains(t, opsOf(list), tac.FADD)
}

func TestLowerAssignCoercesFloatToInt(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "i", Type: ast.Int},
		&ast.Assign{Name: "i", Value: &ast.FloatLit{Value: 3.0, Text: "3.0"}},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	assert.Contains(t, opsOf(list), tac.FLOAT_TO_INT)
}

func TestLowerUndeclaredReferenceFails(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Assign{Name: "missing", Value: &ast.IntLit{Value: 1}},
	}}

	_, err := tac.Lower(prog, symtab.NewTable())
	require.Error(t, err)
}

func TestLowerIfWithElseEmitsTwoLabels(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.If{
			Cond: &ast.RelExpr{Op: ast.Gt, Left: &ast.VarRef{Name: "x"}, Right: &ast.IntLit{Value: 0}},
			Then: []ast.Stmt{&ast.Assign{Name: "x", Value: &ast.IntLit{Value: 1}}},
			Else: []ast.Stmt{&ast.Assign{Name: "x", Value: &ast.IntLit{Value: 2}}},
		},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	ops := opsOf(list)
	assert.Contains(t, ops, tac.IF_FALSE)
	assert.Contains(t, ops, tac.GOTO)

	labels := 0
	for in := list.Head; in != nil; in = in.Next {
		if in.Op == tac.LABEL {
			labels++
		}
	}
	assert.Equal(t, 2, labels)
}

func TestLowerWhileLoopHeadTestOrdering(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.While{
			Cond: &ast.RelExpr{Op: ast.Lt, Left: &ast.VarRef{Name: "x"}, Right: &ast.IntLit{Value: 10}},
			Body: []ast.Stmt{&ast.Assign{Name: "x", Value: &ast.VarRef{Name: "x"}}},
		},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	ops := opsOf(list)
	// decl, then label ... if_false ... goto ... label
	require.True(t, len(ops) >= 4)
	assert.Equal(t, tac.LABEL, ops[1])
}

func TestLowerFunctionDeclEmitsBeginEndAndParams(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.FuncDecl{
			Name:   "add",
			Params: []string{"a", "b"},
			Body: []ast.Stmt{
				&ast.Return{Value: &ast.BinaryExpr{Op: ast.Add, Left: &ast.VarRef{Name: "a"}, Right: &ast.VarRef{Name: "b"}}},
			},
		},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	ops := opsOf(list)
	assert.Equal(t, tac.FUNC_BEGIN, ops[0])
	assert.Equal(t, tac.LABEL, ops[1])
	assert.Equal(t, tac.DECL, ops[2])
	assert.Equal(t, tac.DECL, ops[3])
	assert.Equal(t, tac.FUNC_END, ops[len(ops)-1])
}

func TestLowerCallEmitsParamsThenCall(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "r", Type: ast.Int},
		&ast.Assign{Name: "r", Value: &ast.CallExpr{Name: "f", Args: []ast.Expr{
			&ast.IntLit{Value: 1}, &ast.IntLit{Value: 2},
		}}},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	ops := opsOf(list)
	assert.Equal(t, tac.PARAM, ops[1])
	assert.Equal(t, tac.PARAM, ops[2])
	assert.Equal(t, tac.CALL, ops[3])

	for in := list.Head; in != nil; in = in.Next {
		if in.Op == tac.CALL {
			assert.Equal(t, 2, in.ParamCount)
		}
	}
}

func TestLowerArrayStoreAndLoad(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ArrayDecl{Name: "a", Type: ast.Int, Length: 4},
		&ast.ArrayAssign{Name: "a", Index: &ast.IntLit{Value: 0}, Value: &ast.IntLit{Value: 7}},
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.Assign{Name: "x", Value: &ast.ArrayAccess{Name: "a", Index: &ast.IntLit{Value: 0}}},
	}}

	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)
	ops := opsOf(list)
	assert.Contains(t, ops, tac.STORE)
	assert.Contains(t, ops, tac.LOAD)
}
