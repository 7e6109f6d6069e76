package kvstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueFirstSeenWins(t *testing.T) {
	s := NewUnique(NewStream[string, string](newSliceSource(
		rec("a", "1"), rec("a", "2"), rec("b", "3"), rec("b", "4"), rec("b", "5"), rec("c", "6"),
	)))

	got := pullAll(t, s)
	assert.Equal(t, []Record[string, string]{
		rec("a", "1"), rec("b", "3"), rec("c", "6"),
	}, got)
}

func TestUniqueIdempotentOnUniqueInput(t *testing.T) {
	input := []Record[string, string]{rec("a", "1"), rec("b", "2"), rec("c", "3")}

	s := NewUnique(NewStream[string, string](newSliceSource(input...)))
	got := pullAll(t, s)
	assert.Equal(t, input, got)
}

func TestUniqueEmptyInput(t *testing.T) {
	s := NewUnique(NewStream[string, string](newSliceSource[string]()))

	assert.True(t, s.AtEnd())
	_, ok, err := s.Pull()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUniqueRewindDelegates(t *testing.T) {
	s := NewUnique(NewStream[string, string](newSliceSource(
		rec("a", "1"), rec("a", "2"), rec("b", "3"),
	)))

	first := pullAll(t, s)
	require.NoError(t, s.Rewind())
	second := pullAll(t, s)
	assert.Equal(t, first, second)
}

func TestUniqueSupportsOwnPushback(t *testing.T) {
	s := NewUnique(NewStream[string, string](newSliceSource(
		rec("a", "1"), rec("a", "2"), rec("b", "3"),
	)))

	first, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, s.Pushback())
	again, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, again)
}
