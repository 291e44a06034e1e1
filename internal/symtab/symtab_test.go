package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mipsc/internal/ast"
	"mipsc/internal/symtab"
)

func TestDeclareVarAssignsIncreasingOffsets(t *testing.T) {
	tab := symtab.NewTable()

	offX, err := tab.DeclareVar("x", ast.Int)
	require.NoError(t, err)
	offY, err := tab.DeclareVar("y", ast.Float)
	require.NoError(t, err)

	assert.Equal(t, 0, offX)
	assert.Equal(t, 4, offY)
	assert.Equal(t, 8, tab.NextOffset())
}

func TestDeclareArrayAllocatesLengthTimesFour(t *testing.T) {
	tab := symtab.NewTable()
	off, err := tab.DeclareArray("a", ast.Int, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
	assert.Equal(t, 40, tab.NextOffset())
	assert.True(t, tab.IsArray("a"))
	assert.Equal(t, 10, tab.ArrayLength("a"))
}

func TestDuplicateDeclarationInSameScopeFails(t *testing.T) {
	tab := symtab.NewTable()
	_, err := tab.DeclareVar("x", ast.Int)
	require.NoError(t, err)

	_, err = tab.DeclareVar("x", ast.Float)
	require.Error(t, err)
}

func TestShadowingInNestedScopeIsAllowed(t *testing.T) {
	tab := symtab.NewTable()
	_, err := tab.DeclareVar("x", ast.Int)
	require.NoError(t, err)

	tab.PushScope("inner")
	_, err = tab.DeclareVar("x", ast.Float)
	require.NoError(t, err)
	assert.Equal(t, ast.Float, tab.TypeOf("x"))

	tab.PopScope()
	assert.Equal(t, ast.Int, tab.TypeOf("x"))
}

func TestUndeclaredLookupFails(t *testing.T) {
	tab := symtab.NewTable()
	assert.False(t, tab.IsDeclared("missing"))
	assert.Equal(t, -1, tab.OffsetOf("missing"))
	require.Error(t, tab.Lookup("missing"))
}

func TestNamesReturnsSortedDeclaredIdentifiers(t *testing.T) {
	tab := symtab.NewTable()
	_, err := tab.DeclareVar("z", ast.Int)
	require.NoError(t, err)
	_, err = tab.DeclareVar("a", ast.Float)
	require.NoError(t, err)

	tab.PushScope("inner")
	_, err = tab.DeclareVar("m", ast.Int)
	require.NoError(t, err)
	tab.PopScope()

	assert.Equal(t, []string{"a", "m", "z"}, tab.Names())
}

func TestOffsetCounterIsSharedAcrossScopes(t *testing.T) {
	tab := symtab.NewTable()
	_, err := tab.DeclareVar("x", ast.Int)
	require.NoError(t, err)

	tab.PushScope("fn")
	offY, err := tab.DeclareVar("y", ast.Int)
	require.NoError(t, err)
	assert.Equal(t, 4, offY)
}
