package zcursor

import "fmt"

// Any is a cursor over a JSON value of unknown kind until inspected. It is a
// tagged struct rather than an interface: exactly one of its five accessor
// methods will succeed, decided by Kind, and the corresponding concrete
// cursor is constructed lazily on first access so that inspecting Kind alone
// never allocates a child cursor that goes unused.
type Any struct {
	parent    parent
	kind      Kind
	remaining []byte

	str *String
	num *Number
	obj *Object
	arr *Array
	lit *Literal
}

func newAny(p parent, kind Kind, remaining []byte) *Any {
	return &Any{parent: p, kind: kind, remaining: remaining}
}

// Kind reports which JSON production this value is, without constructing a
// child cursor.
func (a *Any) Kind() Kind { return a.kind }

// String returns the String cursor if this value is a JSON string.
func (a *Any) String() (*String, bool) {
	if a.kind != KindString {
		return nil, false
	}
	if a.str == nil {
		a.str = newString(a.parent, a.remaining)
	}
	return a.str, true
}

// Number returns the Number cursor if this value is a JSON number.
func (a *Any) Number() (*Number, bool) {
	if a.kind != KindNumber {
		return nil, false
	}
	if a.num == nil {
		a.num = newNumber(a.parent, a.remaining)
	}
	return a.num, true
}

// Object returns the Object cursor if this value is a JSON object.
func (a *Any) Object() (*Object, bool) {
	if a.kind != KindObject {
		return nil, false
	}
	if a.obj == nil {
		a.obj = newObject(a.parent, a.remaining)
	}
	return a.obj, true
}

// Array returns the Array cursor if this value is a JSON array.
func (a *Any) Array() (*Array, bool) {
	if a.kind != KindArray {
		return nil, false
	}
	if a.arr == nil {
		a.arr = newArray(a.parent, a.remaining)
	}
	return a.arr, true
}

// Literal returns the Literal cursor if this value is a JSON literal
// (true, false or null).
func (a *Any) Literal() (*Literal, bool) {
	if a.kind != KindLiteral {
		return nil, false
	}
	if a.lit == nil {
		a.lit = newLiteral(a.parent, a.remaining)
	}
	return a.lit, true
}

// Finish parses and discards the value regardless of its kind, so the parent
// can continue — the generic "skip this subtree" operation every container's
// own Finish uses internally when the caller abandons an element.
func (a *Any) Finish() error {
	var err error
	switch a.kind {
	case KindString:
		c, _ := a.String()
		err = c.Finish()
	case KindNumber:
		c, _ := a.Number()
		err = c.Finish()
	case KindObject:
		c, _ := a.Object()
		err = c.Finish()
	case KindArray:
		c, _ := a.Array()
		err = c.Finish()
	case KindLiteral:
		c, _ := a.Literal()
		err = c.Finish()
	default:
		panic("zcursor: internal: Any holds an invalid kind")
	}
	if err != nil {
		return &AnyError{Kind: a.kind, err: err}
	}
	return nil
}

// AnyError wraps whatever leaf error a skipped or inspected Any produced,
// tagged with the kind that failed.
type AnyError struct {
	Kind Kind
	err  error
}

func (e *AnyError) Error() string {
	return fmt.Sprintf("zcursor: failed to parse a JSON %s: %v", e.Kind, e.err)
}

// Unwrap exposes the concrete leaf error (*StringError, *NumberError,
// *LiteralError, *ArrayError or *ObjectError) to errors.As/errors.Is.
func (e *AnyError) Unwrap() error { return e.err }
