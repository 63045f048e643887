package zcursor

import "fmt"

// MultiDocumentErrorKind identifies why a MultiDocument parse failed.
type MultiDocumentErrorKind int8

const (
	// MultiDocumentInvalidValue means a non-whitespace character between
	// values did not begin any JSON value production.
	MultiDocumentInvalidValue MultiDocumentErrorKind = iota
)

// MultiDocumentError is returned when parsing a MultiDocument fails at the
// top level. A failure while parsing one of the values themselves surfaces
// as the leaf production's own error type instead.
type MultiDocumentError struct {
	Kind MultiDocumentErrorKind
	// C is the offending rune.
	C rune
}

func (e *MultiDocumentError) Error() string {
	switch e.Kind {
	case MultiDocumentInvalidValue:
		return fmt.Sprintf("zcursor: invalid character (%q) between JSON values", e.C)
	default:
		return "zcursor: invalid JSON value stream"
	}
}

// MultiDocument drives a parse of zero or more whitespace-separated JSON
// values from a single buffer — e.g. a stream of JSON Lines-style records
// concatenated without an enclosing array. Unlike Document, reaching end of
// input between values is not an error: it simply ends the stream.
type MultiDocument struct {
	remaining []byte
	guard     activeGuard
}

// NewMultiDocument constructs a MultiDocument over json. json is never copied.
func NewMultiDocument(json []byte) *MultiDocument {
	return &MultiDocument{remaining: json}
}

func (m *MultiDocument) setRemaining(remaining []byte) {
	m.remaining = remaining
	m.guard.release(m)
}

func (m *MultiDocument) breadcrumb(trail []string) []string {
	return append(trail, "MultiDocument")
}

// Next returns a cursor for the stream's next value, or (nil, nil) once
// input is exhausted. Calling Next again while a previously returned value
// is still outstanding is a stack-discipline violation and panics.
func (m *MultiDocument) Next() (*Any, error) {
	if m.guard.active {
		panic(fmt.Sprintf("zcursor: MultiDocument.Next called while a previously returned value is still outstanding (%s) — call Finish or fully drain it first",
			joinBreadcrumb(m.breadcrumb(nil))))
	}

	remaining := skipWhitespace(m.remaining)
	m.remaining = remaining
	if len(remaining) == 0 {
		return nil, nil
	}

	kind, ok := classifyStart(remaining[0])
	if !ok {
		return nil, &MultiDocumentError{Kind: MultiDocumentInvalidValue, C: rune(remaining[0])}
	}

	child := remaining
	if !kind.keepFirst() {
		child = child[1:]
	}

	m.guard.enter(m, "MultiDocument.Next")
	m.remaining = child
	return newAny(m, kind, child), nil
}

// Finish drains every remaining value in the stream, discarding them.
func (m *MultiDocument) Finish() error {
	for {
		value, err := m.Next()
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
