package zcursor

import (
	"fmt"
	"strings"
)

// Kind identifies which JSON production begins at a cursor's current
// position: one of String, Number, Object, Array or Literal.
type Kind int8

const (
	KindString Kind = iota
	KindNumber
	KindObject
	KindArray
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindLiteral:
		return "Literal"
	default:
		return "<unknown kind>"
	}
}

// parent is the capability a nested cursor holds on its enclosing context.
// Every container (Array, Object, Document, MultiDocument) implements it so
// that any of them can parent a child of any of the five value kinds,
// breaking the mutual-reference cycle a concrete parent type would create.
type parent interface {
	// setRemaining advances the input cursor to a new position and, for a
	// container parent, clears its outstanding-child guard.
	setRemaining(remaining []byte)
	// breadcrumb appends this cursor's name to trail and forwards the call
	// up the parent chain, building a diagnostic path leaf-to-root.
	breadcrumb(trail []string) []string
}

// activeGuard enforces the single-active-child invariant at runtime: a
// container must not be asked for another child while a previously returned
// child cursor has not finished. It is the one flag a container keeps for
// this — there is no separate per-element status to fall out of sync with it.
type activeGuard struct {
	active bool
}

func (g *activeGuard) enter(self parent, verb string) {
	if g.active {
		trail := self.breadcrumb(nil)
		panic(fmt.Sprintf(
			"zcursor: %s while a previously returned value is still outstanding (%s) — call Finish or fully drain it first",
			verb, strings.Join(trail, " > "),
		))
	}
	g.active = true
}

func (g *activeGuard) release(self parent) {
	if !g.active {
		trail := self.breadcrumb(nil)
		panic(fmt.Sprintf("zcursor: internal: no outstanding child to release (%s)", strings.Join(trail, " > ")))
	}
	g.active = false
}
