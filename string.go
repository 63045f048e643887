package zcursor

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// StringErrorKind identifies the grammar position a string parse failed at.
type StringErrorKind int8

const (
	// StringUnexpectedEnd means the JSON string ended before the closing quote.
	StringUnexpectedEnd StringErrorKind = iota
	// StringInvalidEscape means an invalid character followed a backslash.
	StringInvalidEscape
	// StringInvalidUnicodeEscape means a non-hex character appeared in a \u escape.
	StringInvalidUnicodeEscape
	// StringMissingHighSurrogate means a low surrogate appeared with no preceding high surrogate.
	StringMissingHighSurrogate
	// StringMissingLowSurrogate means a high surrogate was not followed by a low surrogate escape.
	StringMissingLowSurrogate
	// StringInvalidLowSurrogate means the escape after a high surrogate was not a valid low surrogate.
	StringInvalidLowSurrogate
)

// StringError is returned when parsing a String cursor's body fails. It
// carries the minimum context needed to reproduce the rejection.
type StringError struct {
	Kind StringErrorKind
	// C is the offending rune; valid for InvalidEscape and InvalidUnicodeEscape.
	C rune
	// Low is the low surrogate value found; valid for MissingHighSurrogate
	// and InvalidLowSurrogate.
	Low uint16
	// High is the high surrogate value found; valid for MissingLowSurrogate
	// and InvalidLowSurrogate.
	High uint16
}

func (e *StringError) Error() string {
	switch e.Kind {
	case StringUnexpectedEnd:
		return "zcursor: unexpected end of JSON string (missing closing quote)"
	case StringInvalidEscape:
		return fmt.Sprintf("zcursor: invalid escape character (%q) in JSON string", e.C)
	case StringInvalidUnicodeEscape:
		return fmt.Sprintf("zcursor: invalid character (%q) in unicode escape in JSON string", e.C)
	case StringMissingHighSurrogate:
		return fmt.Sprintf("zcursor: found a low surrogate (\\u%04x) not prefixed with a high surrogate", e.Low)
	case StringMissingLowSurrogate:
		return fmt.Sprintf("zcursor: found a high surrogate (\\u%04x) not followed by a low surrogate", e.High)
	case StringInvalidLowSurrogate:
		return fmt.Sprintf("zcursor: invalid low surrogate (\\u%04x) after a high surrogate (\\u%04x)", e.Low, e.High)
	default:
		return "zcursor: invalid JSON string"
	}
}

// escapeMachine recognizes one escape sequence: a shorthand (\", \\, \/, \b,
// \f, \n, \r, \t), a \uXXXX unicode escape, or a \uXXXX\uXXXX surrogate pair.
type escapeMachine struct {
	inSurrogate bool
	high        uint16 // valid when inSurrogate
	low         lowSurrogateMachine
	inUnicode   bool
	n           uint16
	digits      uint8
}

// lowSurrogateMachine recognizes the second half of a surrogate pair:
// exactly "\", "u", then four hex digits.
type lowSurrogateMachine struct {
	sawBackslash bool
	sawU         bool
	low          uint16
	digits       uint8
}

func hexDigit(c rune) (uint16, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint16(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint16(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint16(c-'A') + 10, true
	default:
		return 0, false
	}
}

// apply feeds one rune to the low-surrogate half of a surrogate pair. On the
// fourth hex digit it either returns the decoded scalar or rejects the pair.
func (m lowSurrogateMachine) apply(c rune, high uint16) (done bool, decoded rune, next lowSurrogateMachine, err error) {
	switch {
	case !m.sawBackslash:
		if c != '\\' {
			return false, 0, m, &StringError{Kind: StringMissingLowSurrogate, High: high}
		}
		return false, 0, lowSurrogateMachine{sawBackslash: true}, nil

	case !m.sawU:
		if c != 'u' {
			return false, 0, m, &StringError{Kind: StringMissingLowSurrogate, High: high}
		}
		return false, 0, lowSurrogateMachine{sawBackslash: true, sawU: true}, nil

	default:
		digit, ok := hexDigit(c)
		if !ok {
			return false, 0, m, &StringError{Kind: StringInvalidUnicodeEscape, C: c}
		}
		low := (m.low << 4) | digit

		if m.digits == 3 {
			if low < 0xdc00 || low >= 0xe000 {
				return false, 0, m, &StringError{Kind: StringInvalidLowSurrogate, High: high, Low: low}
			}
			codePoint := 0x10000 + (uint32(high-0xd800) << 10) + uint32(low-0xdc00)
			return true, rune(codePoint), lowSurrogateMachine{}, nil
		}

		next = lowSurrogateMachine{sawBackslash: true, sawU: true, low: low, digits: m.digits + 1}
		return false, 0, next, nil
	}
}

// apply feeds one rune to the escape machine. On completion it returns the
// decoded scalar; string.Get discards it (it only needs the raw slice),
// while ParsedString's Chars iterator uses it to decode lazily.
func (m escapeMachine) apply(c rune) (done bool, decoded rune, next escapeMachine, err error) {
	if m.inSurrogate {
		done, decoded, low, err := m.low.apply(c, m.high)
		if err != nil {
			return false, 0, m, err
		}
		if done {
			return true, decoded, escapeMachine{}, nil
		}
		m.low = low
		return false, 0, m, nil
	}

	if m.inUnicode {
		digit, ok := hexDigit(c)
		if !ok {
			return false, 0, m, &StringError{Kind: StringInvalidUnicodeEscape, C: c}
		}
		n := (m.n << 4) | digit

		if m.digits == 3 {
			if n < 0xd800 || n > 0xdfff {
				return true, rune(n), escapeMachine{}, nil
			}
			if n >= 0xdc00 {
				return false, 0, m, &StringError{Kind: StringMissingHighSurrogate, Low: n}
			}
			return false, 0, escapeMachine{inSurrogate: true, high: n}, nil
		}

		return false, 0, escapeMachine{inUnicode: true, n: n, digits: m.digits + 1}, nil
	}

	switch c {
	case '"', '\\', '/':
		return true, c, escapeMachine{}, nil
	case 'b':
		return true, '\b', escapeMachine{}, nil
	case 'f':
		return true, '\f', escapeMachine{}, nil
	case 'n':
		return true, '\n', escapeMachine{}, nil
	case 'r':
		return true, '\r', escapeMachine{}, nil
	case 't':
		return true, '\t', escapeMachine{}, nil
	case 'u':
		return false, 0, escapeMachine{inUnicode: true}, nil
	default:
		return false, 0, m, &StringError{Kind: StringInvalidEscape, C: c}
	}
}

// String is a cursor over a JSON string value.
type String struct {
	parent    parent
	remaining []byte

	done   bool
	result ParsedString
	err    error
}

func newString(p parent, remaining []byte) *String {
	return &String{parent: p, remaining: remaining}
}

func (s *String) setRemaining(remaining []byte) { s.remaining = remaining }

func (s *String) breadcrumb(trail []string) []string {
	return s.parent.breadcrumb(append(trail, "String"))
}

// Get parses the string body and returns a view over it. The surrounding
// quotation marks are excluded from the view; escape sequences are not
// evaluated eagerly — use ParsedString.Chars or ParsedString.Escaped for that.
//
// Get is idempotent: the first call advances the parent and caches the
// outcome, and every later call (including one reached through Finish)
// simply replays it, so a caller that already consumed the value and a
// generic traversal helper that unconditionally finishes it afterward don't
// race over the parent's stack-discipline guard.
func (s *String) Get() (ParsedString, error) {
	if s.done {
		return s.result, s.err
	}
	s.done = true

	remaining := s.remaining
	var inEscape bool
	var esc escapeMachine

	i := 0
	for i < len(remaining) {
		c, size := utf8.DecodeRune(remaining[i:])

		if !inEscape {
			switch c {
			case '"':
				raw := remaining[:i]
				s.parent.setRemaining(remaining[i+size:])
				s.result = newParsedString(raw)
				return s.result, nil
			case '\\':
				inEscape = true
				esc = escapeMachine{}
			}
		} else {
			done, _, next, err := esc.apply(c)
			if err != nil {
				s.err = err
				return ParsedString{}, err
			}
			if done {
				inEscape = false
			} else {
				esc = next
			}
		}

		i += size
	}

	s.err = &StringError{Kind: StringUnexpectedEnd}
	return ParsedString{}, s.err
}

// Finish parses the string body, discarding the result, so the parent can
// continue.
func (s *String) Finish() error {
	_, err := s.Get()
	return err
}

// ParsedString is a view over the raw (still-escaped) bytes between a JSON
// string's quotation marks. No heap allocation is required to obtain it;
// escapes are decoded lazily on demand.
type ParsedString struct {
	raw []byte
}

func newParsedString(raw []byte) ParsedString {
	return ParsedString{raw: raw}
}

// Raw returns the unescaped (i.e. not-yet-decoded) slice between the
// quotation marks, exactly as it appeared in the source JSON.
func (p ParsedString) Raw() []byte { return p.raw }

// IsEmpty reports whether the string body is empty.
func (p ParsedString) IsEmpty() bool { return len(p.raw) == 0 }

// Chars returns an iterator over the decoded (escape-evaluated) runes of the
// string. It decodes lazily; no heap allocation is required to construct it.
func (p ParsedString) Chars() *Chars {
	return &Chars{remaining: p.raw}
}

// Escaped collects the fully-decoded string into an owned Go string. Unlike
// Chars, this does allocate — it is the explicit opt-in point for callers
// who need a contiguous decoded buffer.
func (p ParsedString) Escaped() string {
	var b strings.Builder
	b.Grow(len(p.raw))
	for c := range p.Chars().Seq() {
		b.WriteRune(c)
	}
	return b.String()
}

// Equal reports whether p and other decode to the same character sequence.
func (p ParsedString) Equal(other ParsedString) bool {
	a, b := p.Chars(), other.Chars()
	for {
		ar, aok := a.Next()
		br, bok := b.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if ar != br {
			return false
		}
	}
}

// EqualString reports whether p decodes to exactly s.
func (p ParsedString) EqualString(s string) bool {
	chars := p.Chars()
	for _, r := range s {
		got, ok := chars.Next()
		if !ok || got != r {
			return false
		}
	}
	_, more := chars.Next()
	return !more
}

// Chars is a lazy iterator over the decoded runes of a ParsedString.
type Chars struct {
	remaining []byte
}

// Next returns the next decoded rune, or ok == false once exhausted. It
// panics if the underlying bytes contain a malformed escape — which cannot
// happen for a ParsedString obtained from a successful String.Get, since
// Get already validated every escape while locating the closing quote.
func (c *Chars) Next() (rune, bool) {
	if len(c.remaining) == 0 {
		return 0, false
	}

	r, size := utf8.DecodeRune(c.remaining)
	c.remaining = c.remaining[size:]

	if r != '\\' {
		return r, true
	}

	var esc escapeMachine
	for len(c.remaining) > 0 {
		next, nsize := utf8.DecodeRune(c.remaining)
		c.remaining = c.remaining[nsize:]

		done, decoded, m, err := esc.apply(next)
		if err != nil {
			panic(fmt.Sprintf("zcursor: internal: invalid escape in an already-validated string: %v", err))
		}
		if done {
			return decoded, true
		}
		esc = m
	}

	panic("zcursor: internal: ran out of characters mid-escape in an already-validated string")
}

// Seq adapts Next into an iter.Seq for `for c := range chars.Seq()`.
func (c *Chars) Seq() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, ok := c.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}
