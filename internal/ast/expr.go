package ast

// Expr is an expression node: something that lowers to an operand.
type Expr interface {
	Accept(v ExprVisitor) interface{}
}

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	Value int
}

func (n *IntLit) Accept(v ExprVisitor) interface{} { return v.VisitIntLit(n) }

// FloatLit is a float literal, e.g. 3.14. Text carries the decimal form the
// parser saw (always containing a '.' or exponent) so codegen's float-literal
// matching can compare textual operands without reformatting.
type FloatLit struct {
	Value float64
	Text  string
}

func (n *FloatLit) Accept(v ExprVisitor) interface{} { return v.VisitFloatLit(n) }

// VarRef is a reference to a previously declared scalar or array element's
// containing variable, e.g. x.
type VarRef struct {
	Name string
}

func (n *VarRef) Accept(v ExprVisitor) interface{} { return v.VisitVarRef(n) }

// BinaryExpr is an integer/float arithmetic expression, e.g. a + b.
type BinaryExpr struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Accept(v ExprVisitor) interface{} { return v.VisitBinaryExpr(n) }

// RelExpr is a relational expression, e.g. a < b. Always yields Int (0 or 1).
type RelExpr struct {
	Op    RelOp
	Left  Expr
	Right Expr
}

func (n *RelExpr) Accept(v ExprVisitor) interface{} { return v.VisitRelExpr(n) }

// LogicalExpr is a logical expression, e.g. a && b. Always yields Int (0 or 1).
type LogicalExpr struct {
	Op    LogicalOp
	Left  Expr
	Right Expr
}

func (n *LogicalExpr) Accept(v ExprVisitor) interface{} { return v.VisitLogicalExpr(n) }

// UnaryExpr is a unary expression, e.g. !a. Always yields Int (0 or 1).
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (n *UnaryExpr) Accept(v ExprVisitor) interface{} { return v.VisitUnaryExpr(n) }

// ArrayAccess reads one element of a previously declared array, e.g. a[i].
type ArrayAccess struct {
	Name  string
	Index Expr
}

func (n *ArrayAccess) Accept(v ExprVisitor) interface{} { return v.VisitArrayAccess(n) }

// CallExpr invokes a previously declared function, e.g. f(a, b). Args is the
// argument list lowered left to right.
type CallExpr struct {
	Name string
	Args []Expr
}

func (n *CallExpr) Accept(v ExprVisitor) interface{} { return v.VisitCallExpr(n) }

// ExprVisitor dispatches over the expression node set. Every concrete Expr
// type above has exactly one corresponding method, so a new node kind is a
// compile error here until every visitor implements it (the exhaustive-match
// discipline spec.md's Design Notes ask for in place of virtual dispatch).
type ExprVisitor interface {
	VisitIntLit(n *IntLit) interface{}
	VisitFloatLit(n *FloatLit) interface{}
	VisitVarRef(n *VarRef) interface{}
	VisitBinaryExpr(n *BinaryExpr) interface{}
	VisitRelExpr(n *RelExpr) interface{}
	VisitLogicalExpr(n *LogicalExpr) interface{}
	VisitUnaryExpr(n *UnaryExpr) interface{}
	VisitArrayAccess(n *ArrayAccess) interface{}
	VisitCallExpr(n *CallExpr) interface{}
}
