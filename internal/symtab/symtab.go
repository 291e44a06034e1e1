// Package symtab implements the scope-chained symbol table of spec.md §4.A:
// a djb2-hashed, 257-bucket-per-scope table with a flat, monotonically
// increasing stack-offset counter shared across every scope in one
// compilation. Grounded on original_source/symtab.c's hash-table-per-scope
// design; re-architected per spec.md §9 ("Global mutable state") as a
// struct instance (Table) owned by one internal/compilation.Compilation,
// rather than the original's process-wide statics.
package symtab

import (
	"golang.org/x/exp/slices"

	"mipsc/internal/ast"
	"mipsc/internal/compileerrors"
)

const bucketCount = 257

// entry is one declared identifier: name, scalar type, stack offset,
// array-ness, and array length (0 for scalars). Mirrors spec.md §3's Symbol.
type entry struct {
	name      string
	typ       ast.ScalarType
	offset    int
	isArray   bool
	arrayLen  int
	next      *entry // same-bucket chain
}

// scope is one hash-bucket table plus a parent link (spec.md §3's Scope
// frame).
type scope struct {
	name    string
	buckets [bucketCount]*entry
	parent  *scope
}

// Table is one compilation's symbol table: a scope stack plus the shared
// offset counter. Symbol records outlive PopScope (spec.md §9's documented
// hazard, kept as parity): allFrames retains every scope ever pushed so a
// debug dump (Names) can still walk a popped frame, while scopes holds only
// the live chain that name resolution (Lookup, TypeOf, OffsetOf) traverses.
type Table struct {
	scopes     []*scope
	allFrames  []*scope
	nextOffset int
}

// NewTable builds a fresh table with a single "global" root scope, replacing
// the original's package-level init().
func NewTable() *Table {
	t := &Table{}
	t.pushFrame("global")
	return t
}

func (t *Table) pushFrame(name string) *scope {
	s := &scope{name: name}
	if len(t.scopes) > 0 {
		s.parent = t.scopes[len(t.scopes)-1]
	}
	t.scopes = append(t.scopes, s)
	t.allFrames = append(t.allFrames, s)
	return s
}

// PushScope enters a new lexical scope, e.g. on function entry.
func (t *Table) PushScope(name string) {
	t.pushFrame(name)
}

// PopScope exits the current scope. The popped frame's records remain
// reachable through allFrames (spec.md §9), but Lookup no longer walks it
// once it's off the live chain.
func (t *Table) PopScope() {
	if len(t.scopes) > 1 {
		t.scopes = t.scopes[:len(t.scopes)-1]
	}
}

func djb2(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint32(s[i])
	}
	return h % bucketCount
}

func (s *scope) lookupLocal(name string) *entry {
	for e := s.buckets[djb2(name)]; e != nil; e = e.next {
		if e.name == name {
			return e
		}
	}
	return nil
}

func (t *Table) current() *scope {
	return t.scopes[len(t.scopes)-1]
}

// declare inserts a new entry in the current scope only, allocating size
// bytes from the shared offset counter. Returns compileerrors.Duplicate if
// the name already exists in the current scope.
func (t *Table) declare(name string, typ ast.ScalarType, isArray bool, arrayLen, size int) (int, error) {
	cur := t.current()
	if cur.lookupLocal(name) != nil {
		return -1, compileerrors.DuplicateDecl(name)
	}
	offset := t.nextOffset
	e := &entry{name: name, typ: typ, offset: offset, isArray: isArray, arrayLen: arrayLen}
	b := djb2(name)
	e.next = cur.buckets[b]
	cur.buckets[b] = e
	t.nextOffset += size
	return offset, nil
}

// DeclareVar allocates 4 bytes for a new scalar variable.
func (t *Table) DeclareVar(name string, typ ast.ScalarType) (int, error) {
	return t.declare(name, typ, false, 0, 4)
}

// DeclareArray allocates length*4 bytes for a new array. length must be a
// positive integer (parser contract, spec.md §6).
func (t *Table) DeclareArray(name string, typ ast.ScalarType, length int) (int, error) {
	return t.declare(name, typ, true, length, length*4)
}

// lookup walks the live scope chain innermost-outward, returning the first
// matching entry, or ok=false if name is not declared anywhere reachable.
func (t *Table) lookup(name string) (*entry, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if e := t.scopes[i].lookupLocal(name); e != nil {
			return e, true
		}
	}
	return nil, false
}

// IsDeclared reports whether name resolves through the live scope chain.
func (t *Table) IsDeclared(name string) bool {
	_, ok := t.lookup(name)
	return ok
}

// TypeOf returns the declared scalar type of name. TypeOf on an undeclared
// name returns Int; it reports no error, so a caller that needs to tell the
// two apart checks IsDeclared first.
func (t *Table) TypeOf(name string) ast.ScalarType {
	if e, ok := t.lookup(name); ok {
		return e.typ
	}
	return ast.Int
}

// OffsetOf returns the stack offset of name, or -1 if it is not declared
// (spec.md §4.A's sentinel).
func (t *Table) OffsetOf(name string) int {
	if e, ok := t.lookup(name); ok {
		return e.offset
	}
	return -1
}

// IsArray reports whether name was declared with DeclareArray.
func (t *Table) IsArray(name string) bool {
	if e, ok := t.lookup(name); ok {
		return e.isArray
	}
	return false
}

// ArrayLength returns the declared length of an array, or 0 for a scalar or
// an undeclared name.
func (t *Table) ArrayLength(name string) int {
	if e, ok := t.lookup(name); ok {
		return e.arrayLen
	}
	return 0
}

// Lookup returns a compileerrors.Undeclared error when name cannot be
// resolved, matching spec.md §4.B's "fatal error at lookup time" semantics.
func (t *Table) Lookup(name string) error {
	if !t.IsDeclared(name) {
		return compileerrors.UndeclaredRef(name)
	}
	return nil
}

// NextOffset reports the shared offset counter's current value, i.e. the
// total bytes allocated so far across every scope.
func (t *Table) NextOffset() int {
	return t.nextOffset
}

// Names returns every identifier ever declared in this table, live or
// popped (allFrames, spec.md §9), sorted for stable diagnostic output.
func (t *Table) Names() []string {
	names := make([]string, 0)
	for _, s := range t.allFrames {
		for _, bucket := range s.buckets {
			for e := bucket; e != nil; e = e.next {
				names = append(names, e.name)
			}
		}
	}
	slices.Sort(names)
	return names
}
