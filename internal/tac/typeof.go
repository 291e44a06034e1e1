package tac

import (
	"mipsc/internal/ast"
	"mipsc/internal/compileerrors"
	"mipsc/internal/symtab"
)

// TypeOf is the type-determination oracle of spec.md §4.B: it mirrors
// expression lowering without emitting any instructions. int/float literal
// nodes return their obvious types; a variable returns its declared type;
// binary arithmetic returns Float if either operand is Float; array access
// returns the array's declared element type; relational/logical always
// return Int; a function call returns Int unconditionally — spec.md §9's
// named open question, kept as parity rather than guessed at.
func TypeOf(expr ast.Expr, syms *symtab.Table) ast.ScalarType {
	switch n := expr.(type) {
	case *ast.IntLit:
		return ast.Int
	case *ast.FloatLit:
		return ast.Float
	case *ast.VarRef:
		if !syms.IsDeclared(n.Name) {
			panic(compileerrors.UndeclaredRef(n.Name))
		}
		return syms.TypeOf(n.Name)
	case *ast.BinaryExpr:
		if TypeOf(n.Left, syms) == ast.Float || TypeOf(n.Right, syms) == ast.Float {
			return ast.Float
		}
		return ast.Int
	case *ast.RelExpr, *ast.LogicalExpr, *ast.UnaryExpr:
		return ast.Int
	case *ast.ArrayAccess:
		if !syms.IsDeclared(n.Name) {
			panic(compileerrors.UndeclaredRef(n.Name))
		}
		return syms.TypeOf(n.Name)
	case *ast.CallExpr:
		// spec.md §9: function return type is always assumed Int by the
		// oracle; a float-returning function's PRINT/FPRINT interaction is
		// unspecified by design, not a bug to fix here.
		return ast.Int
	default:
		panic(compileerrors.New(compileerrors.Internal, "TypeOf: unrecognized expression node %T", expr))
	}
}
