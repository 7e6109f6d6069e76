package kvstream

import "cmp"

// unique drops records whose key equals the previous record's key. The
// first record seen for a key wins.
type unique[K cmp.Ordered, V any] struct {
	inner *Stream[K, V]
}

// NewUnique wraps inner, which must be sorted, so that each key is
// yielded at most once. The returned stream takes ownership of inner.
func NewUnique[K cmp.Ordered, V any](inner *Stream[K, V]) *Stream[K, V] {
	return NewStream[K, V](&unique[K, V]{inner: inner})
}

func (u *unique[K, V]) Read() (Record[K, V], bool, error) {
	candidate, ok, err := u.inner.Pull()
	if err != nil || !ok {
		return Record[K, V]{}, false, err
	}

	for {
		next, ok, err := u.inner.Pull()
		if err != nil {
			return Record[K, V]{}, false, err
		}
		if !ok {
			return candidate, true, nil
		}

		if next.Key != candidate.Key {
			if err := u.inner.Pushback(); err != nil {
				return Record[K, V]{}, false, err
			}
			return candidate, true, nil
		}
		// Duplicate key, keep the candidate.
	}
}

func (u *unique[K, V]) AtEnd() bool { return u.inner.AtEnd() }

func (u *unique[K, V]) Rewind() error { return u.inner.Rewind() }
