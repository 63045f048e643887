package zcursor

import "fmt"

// LiteralErrorKind identifies why recognizing a literal (true/false/null) failed.
type LiteralErrorKind int8

const (
	// LiteralUnexpectedEnd means input ended mid-literal.
	LiteralUnexpectedEnd LiteralErrorKind = iota
	// LiteralUnexpectedCharacter means a character didn't match any of the
	// three literal spellings at the current position.
	LiteralUnexpectedCharacter
)

// LiteralError is returned when parsing a Literal cursor fails.
type LiteralError struct {
	Kind LiteralErrorKind
	// C is the offending rune; valid for UnexpectedCharacter.
	C rune
}

func (e *LiteralError) Error() string {
	switch e.Kind {
	case LiteralUnexpectedEnd:
		return "zcursor: unexpected end of JSON input while reading a literal"
	case LiteralUnexpectedCharacter:
		return fmt.Sprintf("zcursor: invalid character (%q) in JSON literal", e.C)
	default:
		return "zcursor: invalid JSON literal"
	}
}

// ParsedLiteral identifies which of the three JSON literals was recognized.
type ParsedLiteral int8

const (
	LiteralTrue ParsedLiteral = iota
	LiteralFalse
	LiteralNull
)

// AsBool reports the literal's boolean value; ok is false for LiteralNull.
func (p ParsedLiteral) AsBool() (value bool, ok bool) {
	switch p {
	case LiteralTrue:
		return true, true
	case LiteralFalse:
		return false, true
	default:
		return false, false
	}
}

// IsNull reports whether the literal is null.
func (p ParsedLiteral) IsNull() bool { return p == LiteralNull }

// String returns the literal exactly as it appears in JSON: "true", "false" or "null".
func (p ParsedLiteral) String() string {
	switch p {
	case LiteralTrue:
		return "true"
	case LiteralFalse:
		return "false"
	case LiteralNull:
		return "null"
	default:
		return "<invalid literal>"
	}
}

// literalState walks the single recognized spelling's remaining characters,
// one state per character already matched. Every caller has already skipped
// whitespace before dispatching to Literal, so there's no separate
// whitespace-acceptance path in the start state.
type literalState int8

const (
	literalT literalState = iota
	literalTr
	literalTru
	literalF
	literalFa
	literalFal
	literalFals
	literalN
	literalNu
	literalNul
)

// literalStep describes one character of a literal spelling: the character
// expected next, the state to advance to, and — on the final character — the
// literal it completes.
type literalStep struct {
	state literalState
	want  byte
	next  literalState
	done  ParsedLiteral
	final bool
}

var literalSteps = map[literalState]literalStep{
	literalT:    {state: literalT, want: 'r', next: literalTr},
	literalTr:   {state: literalTr, want: 'u', next: literalTru},
	literalTru:  {state: literalTru, want: 'e', final: true, done: LiteralTrue},
	literalF:    {state: literalF, want: 'a', next: literalFa},
	literalFa:   {state: literalFa, want: 'l', next: literalFal},
	literalFal:  {state: literalFal, want: 's', next: literalFals},
	literalFals: {state: literalFals, want: 'e', final: true, done: LiteralFalse},
	literalN:    {state: literalN, want: 'u', next: literalNu},
	literalNu:   {state: literalNu, want: 'l', next: literalNul},
	literalNul:  {state: literalNul, want: 'l', final: true, done: LiteralNull},
}

// startLiteralState maps a literal's first (already-consumed, kept-first)
// character to its initial recognition state.
func startLiteralState(c byte) (literalState, bool) {
	switch c {
	case 't':
		return literalT, true
	case 'f':
		return literalF, true
	case 'n':
		return literalN, true
	default:
		return 0, false
	}
}

// Literal is a cursor over a JSON literal value: true, false or null.
type Literal struct {
	parent    parent
	remaining []byte

	done   bool
	result ParsedLiteral
	err    error
}

func newLiteral(p parent, remaining []byte) *Literal {
	return &Literal{parent: p, remaining: remaining}
}

func (l *Literal) setRemaining(remaining []byte) { l.remaining = remaining }

func (l *Literal) breadcrumb(trail []string) []string {
	return l.parent.breadcrumb(append(trail, "Literal"))
}

// Get recognizes the literal and returns which one it was.
//
// Get is idempotent, caching its outcome the same way String.Get does, so
// Finish is safe to call after the caller already retrieved the value.
func (l *Literal) Get() (ParsedLiteral, error) {
	if l.done {
		return l.result, l.err
	}
	l.done = true

	remaining := l.remaining
	if len(remaining) == 0 {
		l.err = &LiteralError{Kind: LiteralUnexpectedEnd}
		return 0, l.err
	}

	state, ok := startLiteralState(remaining[0])
	if !ok {
		l.err = &LiteralError{Kind: LiteralUnexpectedCharacter, C: rune(remaining[0])}
		return 0, l.err
	}

	i := 1
	for {
		step := literalSteps[state]

		if i >= len(remaining) {
			l.err = &LiteralError{Kind: LiteralUnexpectedEnd}
			return 0, l.err
		}
		if remaining[i] != step.want {
			l.err = &LiteralError{Kind: LiteralUnexpectedCharacter, C: rune(remaining[i])}
			return 0, l.err
		}
		i++

		if step.final {
			l.parent.setRemaining(remaining[i:])
			l.result = step.done
			return l.result, nil
		}
		state = step.next
	}
}

// Finish recognizes the literal, discarding the result, so the parent can continue.
func (l *Literal) Finish() error {
	_, err := l.Get()
	return err
}
