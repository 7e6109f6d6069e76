package kvstream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeAll(t *testing.T, s *Stream[string, *List[string]]) []Record[string, *List[string]] {
	t.Helper()
	var out []Record[string, *List[string]]
	for {
		r, ok, err := s.Pull()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func TestMergeThreeWay(t *testing.T) {
	merged := NewMerge(
		NewStream[string, string](newSliceSource(rec("1", "x"))),
		NewStream[string, string](newSliceSource(rec("1", "y"), rec("2", "z"))),
		NewStream[string, string](newSliceSource(rec("2", "w"))),
	)

	got := mergeAll(t, merged)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Key)
	assert.Equal(t, []string{"x", "y"}, got[0].Value.Items)
	assert.Equal(t, "2", got[1].Key)
	assert.Equal(t, []string{"z", "w"}, got[1].Value.Items)
	assert.True(t, merged.AtEnd())
}

func TestMergeKeysNonDecreasing(t *testing.T) {
	merged := NewMerge(
		NewStream[string, string](newSliceSource(rec("a", "1"), rec("c", "2"), rec("e", "3"))),
		NewStream[string, string](newSliceSource(rec("b", "4"), rec("c", "5"))),
		NewStream[string, string](newSliceSource(rec("a", "6"), rec("f", "7"))),
	)

	got := mergeAll(t, merged)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Key, got[i].Key)
	}
	assert.Equal(t, []string{"a", "b", "c", "e", "f"}, func() []string {
		keys := make([]string, 0, len(got))
		for _, r := range got {
			keys = append(keys, r.Key)
		}
		return keys
	}())
}

func TestMergeValuesInInputOrder(t *testing.T) {
	merged := NewMerge(
		NewStream[string, string](newSliceSource(rec("k", "first"))),
		NewStream[string, string](newSliceSource(rec("k", "second"))),
		NewStream[string, string](newSliceSource(rec("k", "third"))),
	)

	got := mergeAll(t, merged)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"first", "second", "third"}, got[0].Value.Items)
}

func TestMergeSingleInput(t *testing.T) {
	merged := NewMerge(
		NewStream[string, string](newSliceSource(rec("a", "1"), rec("b", "2"))),
	)

	got := mergeAll(t, merged)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"1"}, got[0].Value.Items)
	assert.Equal(t, []string{"2"}, got[1].Value.Items)
}

func TestMergeNoInputsPanics(t *testing.T) {
	assert.Panics(t, func() { NewMerge[string, string]() })
}

func TestMergeRewindRewindsEveryInput(t *testing.T) {
	merged := NewMerge(
		NewStream[string, string](newSliceSource(rec("a", "1"), rec("c", "2"))),
		NewStream[string, string](newSliceSource(rec("b", "3"))),
	)

	first := mergeAll(t, merged)
	require.NoError(t, merged.Rewind())
	second := mergeAll(t, merged)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Key, second[i].Key)
		assert.Equal(t, first[i].Value.Items, second[i].Value.Items)
	}
}

// joiner collects values into a single delimited string.
type joiner struct {
	parts []string
}

func (j *joiner) Append(v string) { j.parts = append(j.parts, v) }

func TestMergeWithInjectedContainer(t *testing.T) {
	merged := NewMergeWith(
		func() *joiner { return new(joiner) },
		NewStream[string, string](newSliceSource(rec("k", "a"), rec("l", "c"))),
		NewStream[string, string](newSliceSource(rec("k", "b"))),
	)

	got, ok, err := merged.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "k", got.Key)
	assert.Equal(t, "a b", strings.Join(got.Value.parts, " "))
}
