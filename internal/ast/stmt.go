package ast

// Stmt is a statement node: something lowered for its side effects only.
type Stmt interface {
	Accept(v StmtVisitor) interface{}
}

// VarDecl declares a scalar variable, e.g. int x; or float f;.
type VarDecl struct {
	Name string
	Type ScalarType
}

func (n *VarDecl) Accept(v StmtVisitor) interface{} { return v.VisitVarDecl(n) }

// ArrayDecl declares a one-dimensional array, e.g. int a[4];. Length must be
// a positive integer (parser contract, spec.md §6).
type ArrayDecl struct {
	Name   string
	Type   ScalarType
	Length int
}

func (n *ArrayDecl) Accept(v StmtVisitor) interface{} { return v.VisitArrayDecl(n) }

// Assign assigns to a previously declared scalar variable, e.g. x = expr;.
type Assign struct {
	Name  string
	Value Expr
}

func (n *Assign) Accept(v StmtVisitor) interface{} { return v.VisitAssign(n) }

// ArrayAssign assigns to one element of a previously declared array, e.g.
// a[i] = expr;.
type ArrayAssign struct {
	Name  string
	Index Expr
	Value Expr
}

func (n *ArrayAssign) Accept(v StmtVisitor) interface{} { return v.VisitArrayAssign(n) }

// Print prints one expression's value, type-dispatched at lowering time to
// PRINT (integer) or FPRINT (float).
type Print struct {
	Value Expr
}

func (n *Print) Accept(v StmtVisitor) interface{} { return v.VisitPrint(n) }

// Write writes one expression's value with no trailing newline; codegen's
// runtime character-vs-integer heuristic applies (spec.md §4.D, §9).
type Write struct {
	Value Expr
}

func (n *Write) Accept(v StmtVisitor) interface{} { return v.VisitWrite(n) }

// WriteLn writes a trailing newline only.
type WriteLn struct{}

func (n *WriteLn) Accept(v StmtVisitor) interface{} { return v.VisitWriteLn(n) }

// Seq is a statement sequence. spec.md's Data Model describes this as a
// left-leaning cons list; a slice is the Go-idiomatic equivalent that
// preserves the same order and ownership invariant (children owned by
// their parent, no sharing) without a hand-rolled linked list.
type Seq struct {
	Stmts []Stmt
}

func (n *Seq) Accept(v StmtVisitor) interface{} { return v.VisitSeq(n) }

// FuncDecl declares a first-order function. Parameters are by-value and
// untyped at the AST layer (spec.md §9: the type oracle always assumes
// integer parameters regardless of call-site expression type).
type FuncDecl struct {
	Name   string
	Params []string
	Body   []Stmt
}

func (n *FuncDecl) Accept(v StmtVisitor) interface{} { return v.VisitFuncDecl(n) }

// Return returns from the enclosing function. Value is nil for a bare
// `return;` with no expression.
type Return struct {
	Value Expr
}

func (n *Return) Accept(v StmtVisitor) interface{} { return v.VisitReturn(n) }

// If is an if/if-else statement. Else is nil for a no-else if.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (n *If) Accept(v StmtVisitor) interface{} { return v.VisitIf(n) }

// While is a head-tested loop.
type While struct {
	Cond Expr
	Body []Stmt
}

func (n *While) Accept(v StmtVisitor) interface{} { return v.VisitWhile(n) }

// StmtVisitor dispatches over the statement node set.
type StmtVisitor interface {
	VisitVarDecl(n *VarDecl) interface{}
	VisitArrayDecl(n *ArrayDecl) interface{}
	VisitAssign(n *Assign) interface{}
	VisitArrayAssign(n *ArrayAssign) interface{}
	VisitPrint(n *Print) interface{}
	VisitWrite(n *Write) interface{}
	VisitWriteLn(n *WriteLn) interface{}
	VisitSeq(n *Seq) interface{}
	VisitFuncDecl(n *FuncDecl) interface{}
	VisitReturn(n *Return) interface{}
	VisitIf(n *If) interface{}
	VisitWhile(n *While) interface{}
}

// Program is the AST root the core consumes: a top-level statement sequence
// that may interleave global declarations, global statements, and function
// declarations, exactly as spec.md §6 describes the parser's output.
type Program struct {
	Stmts []Stmt
}
