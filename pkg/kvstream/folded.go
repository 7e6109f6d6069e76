package kvstream

import "cmp"

// folded groups runs of equal keys into one record whose value is the
// ordered collection of the run's values.
type folded[K cmp.Ordered, V any] struct {
	inner *Stream[K, V]
}

// NewFolded wraps inner, which must be sorted, grouping adjacent equal
// keys. The output value is always a slice, even for a single-record
// group. The returned stream takes ownership of inner.
func NewFolded[K cmp.Ordered, V any](inner *Stream[K, V]) *Stream[K, []V] {
	return NewStream[K, []V](&folded[K, V]{inner: inner})
}

func (f *folded[K, V]) Read() (Record[K, []V], bool, error) {
	candidate, ok, err := f.inner.Pull()
	if err != nil || !ok {
		return Record[K, []V]{}, false, err
	}

	group := []V{candidate.Value}
	for {
		next, ok, err := f.inner.Pull()
		if err != nil {
			return Record[K, []V]{}, false, err
		}
		if !ok {
			return Record[K, []V]{Key: candidate.Key, Value: group}, true, nil
		}

		if next.Key != candidate.Key {
			if err := f.inner.Pushback(); err != nil {
				return Record[K, []V]{}, false, err
			}
			return Record[K, []V]{Key: candidate.Key, Value: group}, true, nil
		}

		group = append(group, next.Value)
	}
}

func (f *folded[K, V]) AtEnd() bool { return f.inner.AtEnd() }

func (f *folded[K, V]) Rewind() error { return f.inner.Rewind() }
