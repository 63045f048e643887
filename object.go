package zcursor

import "fmt"

// ObjectErrorKind identifies the grammar position an object parse failed at.
type ObjectErrorKind int8

const (
	// ObjectUnexpectedEnd means input ended before the closing brace.
	ObjectUnexpectedEnd ObjectErrorKind = iota
	// ObjectExpectedName means a character other than '"' or '}' appeared
	// where a member name (or the closing brace) was expected.
	ObjectExpectedName
	// ObjectInvalidName means the member name's string body failed to parse.
	ObjectInvalidName
	// ObjectExpectedColon means ':' did not follow a member name.
	ObjectExpectedColon
	// ObjectInvalidElement means a character could not begin any value
	// production where a member's value was expected.
	ObjectInvalidElement
	// ObjectExpectedCommaOrEnd means a character other than ',' or '}'
	// followed a completed member.
	ObjectExpectedCommaOrEnd
	// ObjectTrailingComma means a ',' was immediately followed by '}'.
	ObjectTrailingComma
)

// ObjectError is returned when parsing an Object cursor fails.
type ObjectError struct {
	Kind ObjectErrorKind
	// C is the offending rune; valid for ExpectedName, ExpectedColon,
	// InvalidElement, and ExpectedCommaOrEnd.
	C rune
	// OrEnd reports whether '}' would also have been admissible at this
	// position; valid for ExpectedName.
	OrEnd bool
	// err wraps the underlying StringError when Kind == ObjectInvalidName.
	err error
}

func (e *ObjectError) Error() string {
	switch e.Kind {
	case ObjectUnexpectedEnd:
		return "zcursor: unexpected end of JSON input inside an object"
	case ObjectExpectedName:
		if e.OrEnd {
			return fmt.Sprintf("zcursor: invalid character (%q) in JSON object (expected a member name or '}')", e.C)
		}
		return fmt.Sprintf("zcursor: invalid character (%q) in JSON object (expected a member name)", e.C)
	case ObjectInvalidName:
		return fmt.Sprintf("zcursor: invalid member name in JSON object: %v", e.err)
	case ObjectExpectedColon:
		return fmt.Sprintf("zcursor: invalid character (%q) in JSON object (expected ':')", e.C)
	case ObjectInvalidElement:
		return fmt.Sprintf("zcursor: invalid character (%q) in JSON object (expected a value)", e.C)
	case ObjectExpectedCommaOrEnd:
		return fmt.Sprintf("zcursor: invalid character (%q) in JSON object (expected ',' or '}')", e.C)
	case ObjectTrailingComma:
		return "zcursor: trailing comma in JSON object"
	default:
		return "zcursor: invalid JSON object"
	}
}

// Unwrap exposes the wrapped StringError for ObjectInvalidName.
func (e *ObjectError) Unwrap() error { return e.err }

// objectState enumerates the grammar positions of the object machine.
type objectState int8

const (
	// objectIn means the machine is between members; postcomma records
	// whether a comma was just consumed.
	objectIn objectState = iota
	objectElement
	objectEnd
)

type objectMachine struct {
	state     objectState
	postcomma bool
}

// Object is a cursor over a JSON object value.
type Object struct {
	parent    parent
	remaining []byte
	machine   objectMachine
	guard     activeGuard
}

func newObject(p parent, remaining []byte) *Object {
	return &Object{parent: p, remaining: remaining}
}

func (o *Object) setRemaining(remaining []byte) {
	o.remaining = remaining
	o.guard.release(o)
}

func (o *Object) breadcrumb(trail []string) []string {
	return o.parent.breadcrumb(append(trail, "Object"))
}

// Next advances the object, parsing the next member's name, and returns a
// cursor for its value, along with that name, or (nil, nil, nil) once the
// object is exhausted (the closing brace was reached). Calling Next again
// while a previously returned value is still outstanding is a
// stack-discipline violation and panics.
func (o *Object) Next() (name ParsedString, value *Any, err error) {
	if o.guard.active {
		panic(fmt.Sprintf("zcursor: Object.Next called while a previously returned value is still outstanding (%s) — call Finish or fully drain it first",
			joinBreadcrumb(o.breadcrumb(nil))))
	}

	remaining := skipWhitespace(o.remaining)

	switch o.machine.state {
	case objectIn:
		if len(remaining) == 0 {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectUnexpectedEnd}
		}
		if remaining[0] == '}' {
			if o.machine.postcomma {
				return ParsedString{}, nil, &ObjectError{Kind: ObjectTrailingComma}
			}
			o.end(remaining[1:])
			return ParsedString{}, nil, nil
		}
		if remaining[0] != '"' {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectExpectedName, C: rune(remaining[0]), OrEnd: !o.machine.postcomma}
		}

		nameCursor := newString(memberNameParent{o}, remaining[1:])
		parsedName, err := nameCursor.Get()
		if err != nil {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectInvalidName, err: err}
		}

		remaining = skipWhitespace(o.remaining)
		if len(remaining) == 0 {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectUnexpectedEnd}
		}
		if remaining[0] != ':' {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectExpectedColon, C: rune(remaining[0])}
		}
		remaining = skipWhitespace(remaining[1:])

		if len(remaining) == 0 {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectUnexpectedEnd}
		}
		kind, ok := classifyStart(remaining[0])
		if !ok {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectInvalidElement, C: rune(remaining[0])}
		}

		child := remaining
		if !kind.keepFirst() {
			child = child[1:]
		}

		o.guard.enter(o, "Object.Next")
		o.machine.state = objectElement
		o.remaining = child
		return parsedName, newAny(o, kind, child), nil

	case objectEnd:
		return ParsedString{}, nil, nil

	default: // objectElement: decide the next separator
		if len(remaining) == 0 {
			return ParsedString{}, nil, &ObjectError{Kind: ObjectUnexpectedEnd}
		}
		switch remaining[0] {
		case '}':
			o.end(remaining[1:])
			return ParsedString{}, nil, nil
		case ',':
			o.remaining = remaining[1:]
			o.machine.state = objectIn
			o.machine.postcomma = true
			return o.Next()
		default:
			return ParsedString{}, nil, &ObjectError{Kind: ObjectExpectedCommaOrEnd, C: rune(remaining[0])}
		}
	}
}

// end marks the object exhausted and hands the remaining input back to this
// object's own parent, completing the ownership transfer the closing brace
// triggers — symmetric with the leaf cursors' setRemaining call on Get.
func (o *Object) end(remaining []byte) {
	o.remaining = remaining
	o.machine.state = objectEnd
	o.parent.setRemaining(remaining)
}

// Finish drains every remaining member, discarding them, so the parent can
// continue.
func (o *Object) Finish() error {
	for {
		_, value, err := o.Next()
		if err != nil {
			return err
		}
		if value == nil {
			return nil
		}
		if err := value.Finish(); err != nil {
			return err
		}
	}
}

// memberNameParent adapts an Object into the parent a member-name String
// cursor needs, without disturbing the Object's own activeGuard: a member
// name is read synchronously inside Next and never escapes as a cursor the
// caller could hold onto, so the single-active-leaf guard does not apply to it.
type memberNameParent struct {
	o *Object
}

func (m memberNameParent) setRemaining(remaining []byte) { m.o.remaining = remaining }

func (m memberNameParent) breadcrumb(trail []string) []string {
	return m.o.breadcrumb(trail)
}
