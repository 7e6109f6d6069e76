package protocol

import (
	"io"
	"strings"

	"github.com/keyline-data/keyline/pkg/kvstream"
	"github.com/keyline-data/keyline/utils"
)

// assemble builds the stream stack for one input file: a leaf stream,
// optionally pre-wrapped so its keys are unique (diff requires that).
// fold groups duplicate keys and concatenates their fields; unique
// keeps the first record per key.
func assemble(rs io.ReadSeeker, fold, unique bool) *kvstream.Stream[string, kvstream.Value] {
	leaf := kvstream.NewLeaf(rs)
	switch {
	case fold:
		return kvstream.NewStream[string, kvstream.Value](&regrouped{
			inner: kvstream.NewFolded(leaf),
		})
	case unique:
		return kvstream.NewUnique(leaf)
	default:
		return leaf
	}
}

// regrouped flattens a folded stream's value groups back into single
// leaf-shaped values, so one diff path serves folded and plain inputs.
type regrouped struct {
	inner *kvstream.Stream[string, []kvstream.Value]
}

func (g *regrouped) Read() (kvstream.Record[string, kvstream.Value], bool, error) {
	rec, ok, err := g.inner.Pull()
	if err != nil || !ok {
		return kvstream.Record[string, kvstream.Value]{}, false, err
	}

	fields := []string{}
	for _, value := range rec.Value {
		fields = append(fields, value.Fields()...)
	}

	out := kvstream.Record[string, kvstream.Value]{Key: rec.Key}
	switch len(fields) {
	case 0:
		out.Value = kvstream.AbsentValue()
	case 1:
		out.Value = kvstream.ScalarValue(fields[0])
	default:
		out.Value = kvstream.SequenceValue(fields...)
	}

	return out, true, nil
}

func (g *regrouped) AtEnd() bool { return g.inner.AtEnd() }

func (g *regrouped) Rewind() error { return g.inner.Rewind() }

// ignoredKey reports whether key matches any of the configured
// prefixes.
func ignoredKey(key string, prefixes []string) bool {
	_, found := utils.ArrayContains(prefixes, func(prefix string) bool {
		return strings.HasPrefix(key, prefix)
	})
	return found
}

// renderValue formats a value for row output, "-" when absent.
func renderValue(value kvstream.Value, present bool) string {
	if !present || value.IsAbsent() {
		return "-"
	}
	return value.String()
}
