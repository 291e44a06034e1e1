// Package compilation drives one AST-to-assembly pipeline run, wiring
// internal/tac, internal/optimize and internal/codegen together the way
// internal/compiler.Compiler wires the teacher's parser and bytecode
// packages: a small struct built with a constructor, one method per pipeline
// stage, plus a Run convenience that chains all of them.
package compilation

import (
	"io"

	"github.com/google/uuid"

	"mipsc/internal/ast"
	"mipsc/internal/codegen"
	"mipsc/internal/optimize"
	"mipsc/internal/symtab"
	"mipsc/internal/tac"
)

// Compilation carries one compile's state end to end. ID exists purely to
// correlate this run's log lines and diagnostics when many compilations run
// concurrently (e.g. a batch driver compiling several source files in
// parallel goroutines) — no pipeline stage branches on it.
type Compilation struct {
	ID   uuid.UUID
	Syms *symtab.Table

	Raw       *tac.List
	Optimized *tac.List
}

// New starts a fresh compilation with an empty symbol table.
func New() *Compilation {
	return &Compilation{ID: uuid.New(), Syms: symtab.NewTable()}
}

// Lower runs AST-to-TAC lowering (spec.md §4.B), populating Syms and Raw.
func (c *Compilation) Lower(prog *ast.Program) error {
	list, err := tac.Lower(prog, c.Syms)
	if err != nil {
		return err
	}
	c.Raw = list
	return nil
}

// Optimize runs the single-pass optimizer (spec.md §4.C) over Raw,
// populating Optimized. Lower must have run first.
func (c *Compilation) Optimize() {
	c.Optimized = optimize.Optimize(c.Raw)
}

// Generate writes MIPS assembly for the most refined TAC list available —
// Optimized if Optimize has run, otherwise Raw, since code generation does
// not require optimization to have happened first (spec.md §8).
func (c *Compilation) Generate(w io.Writer) error {
	list := c.Optimized
	if list == nil {
		list = c.Raw
	}
	return codegen.Generate(w, list)
}

// Run chains the whole pipeline: lower, optimize, generate.
func (c *Compilation) Run(prog *ast.Program, w io.Writer) error {
	if err := c.Lower(prog); err != nil {
		return err
	}
	c.Optimize()
	return c.Generate(w)
}
