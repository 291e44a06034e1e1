// Package optimize implements the single-pass constant-folding,
// copy-propagation and dead-temporary-elimination optimizer of spec.md §4.C,
// grounded directly on original_source/tac.c's optimizeTAC: a forward scan
// maintaining a substitution table of resolved values, followed by a
// used-operand sweep that drops defining instructions for temporaries never
// read downstream.
package optimize

import "mipsc/internal/tac"

// substitution tracks the most recently folded or propagated value for a
// name, mirroring the original's linear VarValue table (last write wins,
// exactly like the original's reverse-scan-for-latest lookup).
type substitution map[string]tac.Operand

func (s substitution) resolve(o *tac.Operand) tac.Operand {
	if o == nil {
		return tac.Operand{}
	}
	if o.Kind == tac.KindVar || o.Kind == tac.KindTemp {
		if v, ok := s[o.Name]; ok {
			return v
		}
	}
	return *o
}

// Optimize runs the optimizer over list and returns a new, independent list.
// list itself is left untouched.
func Optimize(list *tac.List) *tac.List {
	out := tac.NewList()
	subs := substitution{}

	for in := list.Head; in != nil; in = in.Next {
		switch in.Op {
		case tac.ADD, tac.SUB, tac.MUL, tac.DIV:
			foldArith(in, subs, out)

		case tac.ASSIGN:
			value := subs.resolve(in.Arg1)
			subs[in.Result.Name] = value
			out.Emit(tac.ASSIGN, &value, nil, in.Result)

		case tac.PRINT, tac.WRITE:
			value := subs.resolve(in.Arg1)
			out.Emit(in.Op, &value, nil, nil)

		// Float arithmetic is passed through unfolded: spec.md §4.C folds
		// integer-literal arithmetic only.
		case tac.FADD, tac.FSUB, tac.FMUL, tac.FDIV:
			out.Emit(in.Op, in.Arg1, in.Arg2, in.Result)

		case tac.DECL, tac.DECL_FLOAT, tac.FUNC_BEGIN, tac.FUNC_END, tac.LABEL:
			out.Emit(in.Op, nil, nil, in.Result)

		case tac.FPRINT, tac.INT_TO_FLOAT, tac.FLOAT_TO_INT:
			out.Emit(in.Op, in.Arg1, nil, in.Result)

		case tac.WRITELN:
			out.Emit(tac.WRITELN, nil, nil, nil)

		case tac.DECL_ARRAY:
			out.Emit(tac.DECL_ARRAY, in.Arg1, in.Arg2, in.Result)

		case tac.LOAD, tac.STORE:
			out.Emit(in.Op, in.Arg1, in.Arg2, in.Result)

		case tac.PARAM, tac.RETURN:
			out.Emit(in.Op, in.Arg1, nil, nil)

		case tac.CALL:
			instr := out.Emit(tac.CALL, in.Arg1, nil, in.Result)
			instr.ParamCount = in.ParamCount

		case tac.IF_FALSE:
			out.Emit(tac.IF_FALSE, in.Arg1, nil, in.Result)

		case tac.GOTO:
			out.Emit(tac.GOTO, nil, nil, in.Result)

		case tac.EQ, tac.NE, tac.LT, tac.LE, tac.GT, tac.GE, tac.AND, tac.OR:
			out.Emit(in.Op, in.Arg1, in.Arg2, in.Result)

		case tac.NOT:
			out.Emit(tac.NOT, in.Arg1, nil, in.Result)

		default:
			out.Emit(in.Op, in.Arg1, in.Arg2, in.Result)
		}
	}

	return eliminateDeadTemps(out)
}

// foldArith resolves both operands through the substitution table and, if
// both resolve to integer literals, folds the operation at compile time
// (recording the folded value for downstream propagation) instead of
// emitting it. Division by zero is never folded — it is left as a runtime
// division so codegen's (and eventually the emulator's) trap behavior
// applies (spec.md §4.C invariant).
func foldArith(in *tac.Instr, subs substitution, out *tac.List) {
	left := subs.resolve(in.Arg1)
	right := subs.resolve(in.Arg2)

	if left.Kind == tac.KindIntLit && right.Kind == tac.KindIntLit {
		if in.Op == tac.DIV && right.IntVal == 0 {
			out.Emit(tac.DIV, &left, &right, in.Result)
			return
		}
		var folded int
		switch in.Op {
		case tac.ADD:
			folded = left.IntVal + right.IntVal
		case tac.SUB:
			folded = left.IntVal - right.IntVal
		case tac.MUL:
			folded = left.IntVal * right.IntVal
		case tac.DIV:
			folded = left.IntVal / right.IntVal
		}
		value := tac.IntLiteral(folded)
		subs[in.Result.Name] = value
		out.Emit(tac.ASSIGN, &value, nil, in.Result)
		return
	}

	out.Emit(in.Op, &left, &right, in.Result)
}

// eliminateDeadTemps drops instructions whose Result is a temporary that no
// later instruction's Arg1/Arg2 reads, mirroring the original's single
// used-name sweep over the already-optimized list.
func eliminateDeadTemps(list *tac.List) *tac.List {
	used := map[string]bool{}
	for in := list.Head; in != nil; in = in.Next {
		if in.Arg1 != nil {
			used[in.Arg1.Name] = true
		}
		if in.Arg2 != nil {
			used[in.Arg2.Name] = true
		}
	}

	out := tac.NewList()
	for in := list.Head; in != nil; in = in.Next {
		if in.Result != nil && in.Result.Kind == tac.KindTemp && !used[in.Result.Name] {
			continue
		}
		out.Append(&tac.Instr{Op: in.Op, Arg1: in.Arg1, Arg2: in.Arg2, Result: in.Result, ParamCount: in.ParamCount})
	}
	return out
}
