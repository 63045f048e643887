package zcursor

// classifyStart maps a lookahead byte to the JSON production it begins, if
// any. It only needs to look at a single byte because every JSON value
// production is unambiguous from its first character.
func classifyStart(c byte) (Kind, bool) {
	switch {
	case c == '"':
		return KindString, true
	case c == '-' || (c >= '0' && c <= '9'):
		return KindNumber, true
	case c == '{':
		return KindObject, true
	case c == '[':
		return KindArray, true
	case c == 't' || c == 'f' || c == 'n':
		return KindLiteral, true
	default:
		return 0, false
	}
}

// keepFirst reports whether a container must retain its lookahead byte for
// the child's own machine to see, rather than consuming it as structural
// punctuation. Number and Literal productions carry their first character as
// payload; String/Object/Array consume an opening delimiter that carries none.
func (k Kind) keepFirst() bool {
	return k == KindNumber || k == KindLiteral
}

// isWhitespace implements the strict JSON whitespace class (RFC 8259 section
// 2): space, tab, newline and carriage return only, not the broader Unicode
// whitespace class a generic "is whitespace" predicate would accept.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
