// Package ast defines the tagged-variant AST node set the core consumes.
// The parser that builds these nodes is out of scope for this module; the
// node shapes themselves are the core's input contract.
package ast

//go:generate go run golang.org/x/tools/cmd/stringer -type=ScalarType

// ScalarType is the two-value type tag spec.md's Data Model calls for.
// There is no void, string, bool, or struct member: the source language has
// exactly two scalar types.
type ScalarType int

const (
	Int ScalarType = iota
	Float
)

// ArithOp names the four integer/float arithmetic operators.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
)

// RelOp names the six relational operators. Results are always Int (0 or 1).
type RelOp int

const (
	Eq RelOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// LogicalOp names the two binary logical operators.
type LogicalOp int

const (
	And LogicalOp = iota
	Or
)

// UnaryOp names the one unary operator the source language supports.
type UnaryOp int

const (
	Not UnaryOp = iota
)
