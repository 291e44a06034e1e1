// Lowering rules below mirror original_source/tac.c's generateTAC and
// generateTACExpr one-for-one (type-aware coercion insertion order,
// operand threading, label/param bookkeeping), re-expressed with a tagged
// Operand instead of the original's re-parsed strings (spec.md §9) and with
// Go's panic/recover standing in for the original's process-wide global
// error exit — the same pattern the teacher's own internal/parser uses
// (panic a structured error, recover once at the public entry point).
package tac

import (
	"mipsc/internal/ast"
	"mipsc/internal/compileerrors"
	"mipsc/internal/symtab"
)

// Lowerer walks an AST, emitting TAC into List and querying/declaring into
// Syms as it goes.
type Lowerer struct {
	List *List
	Syms *symtab.Table
}

// Lower runs spec.md §4.B's entry point over prog, returning the freshly
// generated (unoptimized) TAC list. A fatal lowering error (undeclared
// reference, duplicate declaration) is returned as an *compileerrors.CompileError;
// any other panic is not ours to handle and is re-raised.
func Lower(prog *ast.Program, syms *symtab.Table) (list *List, err error) {
	l := &Lowerer{List: NewList(), Syms: syms}
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*compileerrors.CompileError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range prog.Stmts {
		l.lowerStmt(stmt)
	}
	return l.List, nil
}

func fatal(err error) {
	if ce, ok := err.(*compileerrors.CompileError); ok {
		panic(ce)
	}
	panic(compileerrors.Wrap(compileerrors.Internal, err, "lowering failed"))
}

// --- Expression lowering ---

func (l *Lowerer) lowerExpr(e ast.Expr) Operand {
	switch n := e.(type) {
	case *ast.IntLit:
		return IntLiteral(n.Value)
	case *ast.FloatLit:
		return FloatLiteral(n.Value, n.Text)
	case *ast.VarRef:
		if !l.Syms.IsDeclared(n.Name) {
			panic(compileerrors.UndeclaredRef(n.Name))
		}
		return Var(n.Name)
	case *ast.BinaryExpr:
		return l.lowerBinary(n)
	case *ast.RelExpr:
		return l.lowerRel(n)
	case *ast.LogicalExpr:
		return l.lowerLogical(n)
	case *ast.UnaryExpr:
		return l.lowerUnary(n)
	case *ast.ArrayAccess:
		return l.lowerArrayAccess(n)
	case *ast.CallExpr:
		return l.lowerCall(n)
	default:
		panic(compileerrors.New(compileerrors.Internal, "lowerExpr: unrecognized expression node %T", e))
	}
}

func intOpFor(op ast.ArithOp) Op {
	switch op {
	case ast.Add:
		return ADD
	case ast.Sub:
		return SUB
	case ast.Mul:
		return MUL
	default:
		return DIV
	}
}

func floatOpFor(op ast.ArithOp) Op {
	switch op {
	case ast.Add:
		return FADD
	case ast.Sub:
		return FSUB
	case ast.Mul:
		return FMUL
	default:
		return FDIV
	}
}

func relOpFor(op ast.RelOp) Op {
	switch op {
	case ast.Eq:
		return EQ
	case ast.Ne:
		return NE
	case ast.Lt:
		return LT
	case ast.Le:
		return LE
	case ast.Gt:
		return GT
	default:
		return GE
	}
}

func logicalOpFor(op ast.LogicalOp) Op {
	if op == ast.And {
		return AND
	}
	return OR
}

func (l *Lowerer) lowerBinary(n *ast.BinaryExpr) Operand {
	leftType := TypeOf(n.Left, l.Syms)
	rightType := TypeOf(n.Right, l.Syms)

	left := l.lowerExpr(n.Left)
	right := l.lowerExpr(n.Right)

	isFloat := leftType == ast.Float || rightType == ast.Float
	if !isFloat {
		result := l.List.NewTemp()
		l.List.Emit(intOpFor(n.Op), &left, &right, &result)
		return result
	}

	if leftType == ast.Int {
		coerced := l.List.NewTemp()
		l.List.Emit(INT_TO_FLOAT, &left, nil, &coerced)
		left = coerced
	}
	if rightType == ast.Int {
		coerced := l.List.NewTemp()
		l.List.Emit(INT_TO_FLOAT, &right, nil, &coerced)
		right = coerced
	}
	result := l.List.NewTemp()
	l.List.Emit(floatOpFor(n.Op), &left, &right, &result)
	return result
}

func (l *Lowerer) lowerRel(n *ast.RelExpr) Operand {
	left := l.lowerExpr(n.Left)
	right := l.lowerExpr(n.Right)
	result := l.List.NewTemp()
	l.List.Emit(relOpFor(n.Op), &left, &right, &result)
	return result
}

func (l *Lowerer) lowerLogical(n *ast.LogicalExpr) Operand {
	left := l.lowerExpr(n.Left)
	right := l.lowerExpr(n.Right)
	result := l.List.NewTemp()
	l.List.Emit(logicalOpFor(n.Op), &left, &right, &result)
	return result
}

func (l *Lowerer) lowerUnary(n *ast.UnaryExpr) Operand {
	operand := l.lowerExpr(n.Operand)
	result := l.List.NewTemp()
	l.List.Emit(NOT, &operand, nil, &result)
	return result
}

func (l *Lowerer) lowerArrayAccess(n *ast.ArrayAccess) Operand {
	if !l.Syms.IsDeclared(n.Name) {
		panic(compileerrors.UndeclaredRef(n.Name))
	}
	index := l.lowerExpr(n.Index)
	name := Var(n.Name)
	result := l.List.NewTemp()
	l.List.Emit(LOAD, &name, &index, &result)
	return result
}

func (l *Lowerer) lowerCall(n *ast.CallExpr) Operand {
	paramCount := 0
	for _, arg := range n.Args {
		v := l.lowerExpr(arg)
		l.List.Emit(PARAM, &v, nil, nil)
		paramCount++
	}
	callee := Var(n.Name)
	result := l.List.NewTemp()
	instr := l.List.Emit(CALL, &callee, nil, &result)
	instr.ParamCount = paramCount
	return result
}

// coerce inserts INT_TO_FLOAT/FLOAT_TO_INT between an already-lowered
// operand of fromType and a destination of toType, returning the (possibly
// unchanged) operand to use at the destination. Shared by assignment and
// array-element assignment (spec.md §4.B, §8 boundary behavior).
func (l *Lowerer) coerce(v Operand, fromType, toType ast.ScalarType) Operand {
	if fromType == toType {
		return v
	}
	result := l.List.NewTemp()
	if toType == ast.Float {
		l.List.Emit(INT_TO_FLOAT, &v, nil, &result)
	} else {
		l.List.Emit(FLOAT_TO_INT, &v, nil, &result)
	}
	return result
}

// --- Statement lowering ---

func (l *Lowerer) lowerStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		l.lowerVarDecl(n)
	case *ast.ArrayDecl:
		l.lowerArrayDecl(n)
	case *ast.Assign:
		l.lowerAssign(n)
	case *ast.ArrayAssign:
		l.lowerArrayAssign(n)
	case *ast.Print:
		l.lowerPrint(n)
	case *ast.Write:
		v := l.lowerExpr(n.Value)
		l.List.Emit(WRITE, &v, nil, nil)
	case *ast.WriteLn:
		l.List.Emit(WRITELN, nil, nil, nil)
	case *ast.Seq:
		for _, st := range n.Stmts {
			l.lowerStmt(st)
		}
	case *ast.FuncDecl:
		l.lowerFuncDecl(n)
	case *ast.Return:
		l.lowerReturn(n)
	case *ast.If:
		l.lowerIf(n)
	case *ast.While:
		l.lowerWhile(n)
	default:
		panic(compileerrors.New(compileerrors.Internal, "lowerStmt: unrecognized statement node %T", s))
	}
}

func (l *Lowerer) lowerVarDecl(n *ast.VarDecl) {
	if _, err := l.Syms.DeclareVar(n.Name, n.Type); err != nil {
		fatal(err)
	}
	result := Var(n.Name)
	if n.Type == ast.Float {
		l.List.Emit(DECL_FLOAT, nil, nil, &result)
	} else {
		l.List.Emit(DECL, nil, nil, &result)
	}
}

func (l *Lowerer) lowerArrayDecl(n *ast.ArrayDecl) {
	if _, err := l.Syms.DeclareArray(n.Name, n.Type, n.Length); err != nil {
		fatal(err)
	}
	length := IntLiteral(n.Length)
	typeTag := IntLiteral(int(n.Type))
	result := Var(n.Name)
	l.List.Emit(DECL_ARRAY, &length, &typeTag, &result)
}

func (l *Lowerer) lowerAssign(n *ast.Assign) {
	if !l.Syms.IsDeclared(n.Name) {
		panic(compileerrors.UndeclaredRef(n.Name))
	}
	varType := l.Syms.TypeOf(n.Name)
	exprType := TypeOf(n.Value, l.Syms)
	rhs := l.lowerExpr(n.Value)
	rhs = l.coerce(rhs, exprType, varType)
	result := Var(n.Name)
	l.List.Emit(ASSIGN, &rhs, nil, &result)
}

func (l *Lowerer) lowerArrayAssign(n *ast.ArrayAssign) {
	if !l.Syms.IsDeclared(n.Name) {
		panic(compileerrors.UndeclaredRef(n.Name))
	}
	index := l.lowerExpr(n.Index)
	valType := TypeOf(n.Value, l.Syms)
	value := l.lowerExpr(n.Value)
	arrType := l.Syms.TypeOf(n.Name)
	value = l.coerce(value, valType, arrType)
	result := Var(n.Name)
	l.List.Emit(STORE, &index, &value, &result)
}

func (l *Lowerer) lowerPrint(n *ast.Print) {
	exprType := TypeOf(n.Value, l.Syms)
	v := l.lowerExpr(n.Value)
	if exprType == ast.Float {
		l.List.Emit(FPRINT, &v, nil, nil)
	} else {
		l.List.Emit(PRINT, &v, nil, nil)
	}
}

func (l *Lowerer) lowerReturn(n *ast.Return) {
	if n.Value != nil {
		v := l.lowerExpr(n.Value)
		l.List.Emit(RETURN, &v, nil, nil)
		return
	}
	l.List.Emit(RETURN, nil, nil, nil)
}

func (l *Lowerer) lowerIf(n *ast.If) {
	cond := l.lowerExpr(n.Cond)
	if len(n.Else) > 0 {
		lElse := l.List.NewLabel()
		lEnd := l.List.NewLabel()
		l.List.Emit(IF_FALSE, &cond, nil, &lElse)
		for _, st := range n.Then {
			l.lowerStmt(st)
		}
		l.List.Emit(GOTO, nil, nil, &lEnd)
		l.List.Emit(LABEL, nil, nil, &lElse)
		for _, st := range n.Else {
			l.lowerStmt(st)
		}
		l.List.Emit(LABEL, nil, nil, &lEnd)
		return
	}
	lEnd := l.List.NewLabel()
	l.List.Emit(IF_FALSE, &cond, nil, &lEnd)
	for _, st := range n.Then {
		l.lowerStmt(st)
	}
	l.List.Emit(LABEL, nil, nil, &lEnd)
}

func (l *Lowerer) lowerWhile(n *ast.While) {
	lHead := l.List.NewLabel()
	lEnd := l.List.NewLabel()
	l.List.Emit(LABEL, nil, nil, &lHead)
	cond := l.lowerExpr(n.Cond)
	l.List.Emit(IF_FALSE, &cond, nil, &lEnd)
	for _, st := range n.Body {
		l.lowerStmt(st)
	}
	l.List.Emit(GOTO, nil, nil, &lHead)
	l.List.Emit(LABEL, nil, nil, &lEnd)
}

func (l *Lowerer) lowerFuncDecl(n *ast.FuncDecl) {
	funcName := Var(n.Name)
	l.List.Emit(FUNC_BEGIN, nil, nil, &funcName)
	label := Operand{Kind: KindLabel, Name: n.Name}
	l.List.Emit(LABEL, nil, nil, &label)

	l.Syms.PushScope(n.Name)
	for _, p := range n.Params {
		// spec.md §9: parameters are always integer-typed regardless of
		// the caller-side expression type.
		if _, err := l.Syms.DeclareVar(p, ast.Int); err != nil {
			fatal(err)
		}
		paramResult := Var(p)
		l.List.Emit(DECL, nil, nil, &paramResult)
	}
	for _, st := range n.Body {
		l.lowerStmt(st)
	}
	l.Syms.PopScope()

	funcEnd := Var(n.Name)
	l.List.Emit(FUNC_END, nil, nil, &funcEnd)
}
