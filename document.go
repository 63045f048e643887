package zcursor

import "fmt"

// DocumentErrorKind identifies why a Document parse failed.
type DocumentErrorKind int8

const (
	// DocumentUnexpectedEnd means the input was empty or all whitespace.
	DocumentUnexpectedEnd DocumentErrorKind = iota
	// DocumentInvalidValue means the input's first non-whitespace character
	// did not begin any JSON value production.
	DocumentInvalidValue
	// DocumentTrailingContent means non-whitespace content followed the
	// document's single value.
	DocumentTrailingContent
)

// DocumentError is returned when parsing a Document fails at the top level.
// A failure while parsing the value itself surfaces as the leaf production's
// own error type instead (e.g. *ObjectError).
type DocumentError struct {
	Kind DocumentErrorKind
	// C is the offending rune; valid for InvalidValue and TrailingContent.
	C rune
}

func (e *DocumentError) Error() string {
	switch e.Kind {
	case DocumentUnexpectedEnd:
		return "zcursor: empty JSON document"
	case DocumentInvalidValue:
		return fmt.Sprintf("zcursor: invalid character (%q) at the start of a JSON document", e.C)
	case DocumentTrailingContent:
		return fmt.Sprintf("zcursor: unexpected trailing content (%q) after a JSON document's value", e.C)
	default:
		return "zcursor: invalid JSON document"
	}
}

type documentState int8

const (
	documentBeforeValue documentState = iota
	documentInValue
	documentAfterValue
)

// Document drives a parse of exactly one JSON value, optionally surrounded
// by whitespace, from a buffer the caller owns for the Document's whole
// lifetime.
type Document struct {
	remaining []byte
	state     documentState
	guard     activeGuard
}

// NewDocument constructs a Document over json. json is never copied; every
// cursor and parsed view produced from it is a subslice of the same backing
// array.
func NewDocument(json []byte) *Document {
	return &Document{remaining: json}
}

func (d *Document) setRemaining(remaining []byte) {
	d.remaining = remaining
	d.state = documentAfterValue
	d.guard.release(d)
}

func (d *Document) breadcrumb(trail []string) []string {
	return append(trail, "Document")
}

// Next returns the document's single value on first call. Every subsequent
// call skips trailing whitespace and checks what follows: once input is
// exhausted it returns (nil, nil), but any remaining non-whitespace
// character is a DocumentTrailingContent error, even if the caller never
// calls Finish.
func (d *Document) Next() (*Any, error) {
	if d.guard.active {
		panic(fmt.Sprintf("zcursor: Document.Next called while a previously returned value is still outstanding (%s) — call Finish or fully drain it first",
			joinBreadcrumb(d.breadcrumb(nil))))
	}

	if d.state == documentAfterValue {
		remaining := skipWhitespace(d.remaining)
		d.remaining = remaining
		if len(remaining) == 0 {
			return nil, nil
		}
		return nil, &DocumentError{Kind: DocumentTrailingContent, C: rune(remaining[0])}
	}

	remaining := skipWhitespace(d.remaining)
	if len(remaining) == 0 {
		return nil, &DocumentError{Kind: DocumentUnexpectedEnd}
	}

	kind, ok := classifyStart(remaining[0])
	if !ok {
		return nil, &DocumentError{Kind: DocumentInvalidValue, C: rune(remaining[0])}
	}

	child := remaining
	if !kind.keepFirst() {
		child = child[1:]
	}

	d.guard.enter(d, "Document.Next")
	d.state = documentInValue
	d.remaining = child
	return newAny(d, kind, child), nil
}

// Finish parses (and discards) the document's value if it has not already
// been retrieved, then verifies nothing but whitespace remains.
func (d *Document) Finish() error {
	if d.state == documentBeforeValue {
		value, err := d.Next()
		if err != nil {
			return err
		}
		if value != nil {
			if err := value.Finish(); err != nil {
				return err
			}
		}
	}

	_, err := d.Next()
	return err
}
