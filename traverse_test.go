package zcursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachArray(t *testing.T) {
	doc := NewDocument([]byte(`[1, 2, 3]`))
	v, err := doc.Next()
	require.NoError(t, err)
	arr, ok := v.Array()
	require.True(t, ok)

	var sum int64
	err = ForEach(arr, func(v *Any) error {
		n, ok := v.Number()
		require.True(t, ok)
		parsed, err := n.Get()
		if err != nil {
			return err
		}
		i, ok := parsed.AsInt64()
		require.True(t, ok)
		sum += i
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)
}

func TestForEachArrayPropagatesCallbackError(t *testing.T) {
	doc := NewDocument([]byte(`[1, 2, 3]`))
	v, err := doc.Next()
	require.NoError(t, err)
	arr, ok := v.Array()
	require.True(t, ok)

	sentinel := errors.New("stop")
	var visited int
	err = ForEach(arr, func(v *Any) error {
		visited++
		if visited == 2 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, visited)
}

func TestFoldArray(t *testing.T) {
	doc := NewDocument([]byte(`[1, 2, 3, 4]`))
	v, err := doc.Next()
	require.NoError(t, err)
	arr, ok := v.Array()
	require.True(t, ok)

	product, err := Fold(arr, int64(1), func(acc int64, v *Any) (int64, error) {
		n, _ := v.Number()
		parsed, err := n.Get()
		if err != nil {
			return acc, err
		}
		i, _ := parsed.AsInt64()
		return acc * i, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(24), product)
}

func TestFindArray(t *testing.T) {
	doc := NewDocument([]byte(`[1, 2, 3, 4]`))
	v, err := doc.Next()
	require.NoError(t, err)
	arr, ok := v.Array()
	require.True(t, ok)

	match, ok, err := Find(arr, func(v *Any) (bool, error) {
		n, _ := v.Number()
		parsed, err := n.Get()
		if err != nil {
			return false, err
		}
		i, _ := parsed.AsInt64()
		return i == 3, nil
	})
	require.NoError(t, err)
	require.True(t, ok)

	n, _ := match.Number()
	parsed, err := n.Get()
	require.NoError(t, err)
	assert.Equal(t, "3", parsed.String())
}

func TestFindArrayNoMatch(t *testing.T) {
	doc := NewDocument([]byte(`[1, 2]`))
	v, err := doc.Next()
	require.NoError(t, err)
	arr, ok := v.Array()
	require.True(t, ok)

	_, ok, err = Find(arr, func(v *Any) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForEachMemberObject(t *testing.T) {
	doc := NewDocument([]byte(`{"a": 1, "b": 2, "c": 3}`))
	v, err := doc.Next()
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)

	names := map[string]int64{}
	err = ForEachMember(obj, func(name ParsedString, v *Any) error {
		n, _ := v.Number()
		parsed, perr := n.Get()
		if perr != nil {
			return perr
		}
		i, _ := parsed.AsInt64()
		names[name.Escaped()] = i
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 1, "b": 2, "c": 3}, names)
}

func TestFoldMembersObject(t *testing.T) {
	doc := NewDocument([]byte(`{"a": 1, "b": 2, "c": 3}`))
	v, err := doc.Next()
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)

	sum, err := FoldMembers(obj, int64(0), func(acc int64, name ParsedString, v *Any) (int64, error) {
		n, _ := v.Number()
		parsed, err := n.Get()
		if err != nil {
			return acc, err
		}
		i, _ := parsed.AsInt64()
		return acc + i, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)
}

func TestFindMemberObject(t *testing.T) {
	doc := NewDocument([]byte(`{"a": 1, "b": 2}`))
	v, err := doc.Next()
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)

	name, match, ok, err := FindMember(obj, func(name ParsedString, v *Any) (bool, error) {
		return name.EqualString("b"), nil
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, name.EqualString("b"))

	n, _ := match.Number()
	parsed, err := n.Get()
	require.NoError(t, err)
	assert.Equal(t, "2", parsed.String())
}

func TestForEachValueMultiDocument(t *testing.T) {
	m := NewMultiDocument([]byte(`1 2 3`))

	var sum int64
	err := ForEachValue(m, func(v *Any) error {
		n, _ := v.Number()
		parsed, err := n.Get()
		if err != nil {
			return err
		}
		i, _ := parsed.AsInt64()
		sum += i
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), sum)
}

func TestFoldValuesMultiDocument(t *testing.T) {
	m := NewMultiDocument([]byte(`"a" "b" "c"`))

	concat, err := FoldValues(m, "", func(acc string, v *Any) (string, error) {
		s, _ := v.String()
		parsed, err := s.Get()
		if err != nil {
			return acc, err
		}
		return acc + parsed.Escaped(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", concat)
}

func TestFindValueMultiDocument(t *testing.T) {
	m := NewMultiDocument([]byte(`1 2 3`))

	match, ok, err := FindValue(m, func(v *Any) (bool, error) {
		n, _ := v.Number()
		parsed, err := n.Get()
		if err != nil {
			return false, err
		}
		i, _ := parsed.AsInt64()
		return i == 2, nil
	})
	require.NoError(t, err)
	require.True(t, ok)
	n, _ := match.Number()
	parsed, err := n.Get()
	require.NoError(t, err)
	assert.Equal(t, "2", parsed.String())
}
