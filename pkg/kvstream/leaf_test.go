package kvstream

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafScalarAndSequence(t *testing.T) {
	s := NewLeaf(strings.NewReader("alpha 1 2\nbeta 3\n"))

	first, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alpha", first.Key)
	seq, isSeq := first.Value.Sequence()
	require.True(t, isSeq)
	assert.Equal(t, []string{"1", "2"}, seq)

	second, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "beta", second.Key)
	scalar, isScalar := second.Value.Scalar()
	require.True(t, isScalar)
	assert.Equal(t, "3", scalar)

	_, ok, err = s.Pull()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, s.AtEnd())
}

func TestLeafKeyOnlyLine(t *testing.T) {
	s := NewLeaf(strings.NewReader("solo\n"))

	got, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "solo", got.Key)
	assert.True(t, got.Value.IsAbsent())
}

func TestLeafRunsOfWhitespace(t *testing.T) {
	s := NewLeaf(strings.NewReader("key\t\t a   b\n"))

	got, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "key", got.Key)
	seq, _ := got.Value.Sequence()
	assert.Equal(t, []string{"a", "b"}, seq)
}

func TestLeafFieldlessLineEndsSource(t *testing.T) {
	s := NewLeaf(strings.NewReader("a 1\n\nb 2\n"))

	first, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", first.Key)

	// The blank line is end of source, not a record.
	_, ok, err = s.Pull()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, s.AtEnd())
}

func TestLeafEmptyInput(t *testing.T) {
	s := NewLeaf(strings.NewReader(""))
	assert.True(t, s.AtEnd())

	_, ok, err := s.Pull()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLeafRewind(t *testing.T) {
	s := NewLeaf(strings.NewReader("a 1\nb 2\n"))

	first, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = s.Pull()
	require.NoError(t, err)

	require.NoError(t, s.Rewind())
	again, ok, err := s.Pull()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, again)
}

func TestLeafRewindClosedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("a 1\n"), 0o644))

	file, err := os.Open(path)
	require.NoError(t, err)

	s := NewLeaf(file)
	_, _, err = s.Pull()
	require.NoError(t, err)

	require.NoError(t, file.Close())
	err = s.Rewind()
	require.Error(t, err)
	assert.True(t, IsUsage(err))
}
