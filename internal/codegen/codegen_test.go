package codegen_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsc/internal/ast"
	"mipsc/internal/codegen"
	"mipsc/internal/symtab"
	"mipsc/internal/tac"
)

func lowerAndGenerate(t *testing.T, prog *ast.Program) string {
	t.Helper()
	list, err := tac.Lower(prog, symtab.NewTable())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, codegen.Generate(&buf, list))
	return buf.String()
}

func TestGenerateEmitsStackFrameAndExit(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, ".globl main")
	assert.Contains(t, out, "main:")
	assert.Contains(t, out, "addi $sp, $sp, -")
	assert.Contains(t, out, "li $v0, 10")
}

func TestGenerateFloatLiteralGoesToDataSection(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "f", Type: ast.Float},
		&ast.Assign{Name: "f", Value: &ast.FloatLit{Value: 1.5, Text: "1.5"}},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, "fl0: .float 1.5")
	assert.Contains(t, out, "l.s")
}

func TestGenerateIntegerMultiplyUsesMultAndMflo(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.Assign{Name: "x", Value: &ast.BinaryExpr{
			Op:    ast.Mul,
			Left:  &ast.IntLit{Value: 2},
			Right: &ast.IntLit{Value: 3},
		}},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, "mult")
	assert.Contains(t, out, "mflo")
}

func TestGenerateArrayStoreScalesIndex(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.ArrayDecl{Name: "a", Type: ast.Int, Length: 4},
		&ast.ArrayAssign{Name: "a", Index: &ast.IntLit{Value: 1}, Value: &ast.IntLit{Value: 9}},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, "sll")
	assert.Contains(t, out, "sw")
}

func TestGenerateIfFalseBranchesToLabel(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.VarDecl{Name: "x", Type: ast.Int},
		&ast.If{
			Cond: &ast.RelExpr{Op: ast.Gt, Left: &ast.VarRef{Name: "x"}, Right: &ast.IntLit{Value: 0}},
			Then: []ast.Stmt{&ast.Assign{Name: "x", Value: &ast.IntLit{Value: 1}}},
		},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, "beqz")
	assert.True(t, strings.Contains(out, "L0:"))
}

func TestGenerateWriteEmitsCharIntBranch(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.Write{Value: &ast.IntLit{Value: 65}},
	}}

	out := lowerAndGenerate(t, prog)
	assert.Contains(t, out, "write_char_0")
	assert.Contains(t, out, "write_done_0")
}
