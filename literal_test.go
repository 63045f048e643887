package zcursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralGet(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      ParsedLiteral
		wantAfter string
	}{
		{name: "true", input: "true", want: LiteralTrue},
		{name: "false", input: "false", want: LiteralFalse},
		{name: "null", input: "null", want: LiteralNull},
		{name: "leaves trailing input", input: "true, false", want: LiteralTrue, wantAfter: ", false"},
		{name: "stops before a delimiter", input: "null]", want: LiteralNull, wantAfter: "]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &testParent{name: "root"}
			l := newLiteral(p, []byte(tc.input))

			got, err := l.Get()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantAfter, string(p.remaining))
		})
	}
}

func TestLiteralGetErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  LiteralErrorKind
	}{
		{name: "empty", input: "", kind: LiteralUnexpectedEnd},
		{name: "bad first character", input: "xyz", kind: LiteralUnexpectedCharacter},
		{name: "truncated true", input: "tru", kind: LiteralUnexpectedEnd},
		{name: "truncated false", input: "fal", kind: LiteralUnexpectedEnd},
		{name: "truncated null", input: "nu", kind: LiteralUnexpectedEnd},
		{name: "misspelled true", input: "trux", kind: LiteralUnexpectedCharacter},
		{name: "misspelled null", input: "nulx", kind: LiteralUnexpectedCharacter},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &testParent{name: "root"}
			l := newLiteral(p, []byte(tc.input))

			_, err := l.Get()
			require.Error(t, err)

			var litErr *LiteralError
			require.True(t, errors.As(err, &litErr))
			assert.Equal(t, tc.kind, litErr.Kind)
		})
	}
}

func TestParsedLiteralAccessors(t *testing.T) {
	value, ok := LiteralTrue.AsBool()
	assert.True(t, ok)
	assert.True(t, value)

	value, ok = LiteralFalse.AsBool()
	assert.True(t, ok)
	assert.False(t, value)

	_, ok = LiteralNull.AsBool()
	assert.False(t, ok)

	assert.True(t, LiteralNull.IsNull())
	assert.False(t, LiteralTrue.IsNull())

	assert.Equal(t, "true", LiteralTrue.String())
	assert.Equal(t, "false", LiteralFalse.String())
	assert.Equal(t, "null", LiteralNull.String())
}

func TestLiteralFinish(t *testing.T) {
	p := &testParent{name: "root"}
	l := newLiteral(p, []byte("false}rest"))
	require.NoError(t, l.Finish())
	assert.Equal(t, "}rest", string(p.remaining))
}
