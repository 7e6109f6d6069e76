package kvstream

import "cmp"

// Pair is one aligned row of a Diff walk: the key with the value each
// side holds for it, when present.
type Pair[K cmp.Ordered, V any] struct {
	Key     K
	Left    V
	Right   V
	InLeft  bool
	InRight bool
}

// InBoth reports whether both sides hold the key.
func (p Pair[K, V]) InBoth() bool { return p.InLeft && p.InRight }

// Diff walks two sorted streams as a full outer join, yielding one Pair
// per distinct key. Both inputs must yield strictly ascending, unique
// keys; pre-wrap with NewUnique or NewFolded when they do not.
//
// Diff exposes its own minimal surface instead of the Stream adapter:
// its output is a three-field Pair, not a key/value record, so neither
// pushback nor the filter list applies to it. Filtering belongs to the
// two input streams.
type Diff[K cmp.Ordered, V any] struct {
	left  *Stream[K, V]
	right *Stream[K, V]
}

// NewDiff pairs left and right. The Diff takes ownership of both.
func NewDiff[K cmp.Ordered, V any](left, right *Stream[K, V]) *Diff[K, V] {
	return &Diff[K, V]{left: left, right: right}
}

// Get returns the next aligned pair. ok is false once both sides are
// exhausted.
func (d *Diff[K, V]) Get() (Pair[K, V], bool, error) {
	left, leftOK, err := d.left.Pull()
	if err != nil {
		return Pair[K, V]{}, false, err
	}
	right, rightOK, err := d.right.Pull()
	if err != nil {
		return Pair[K, V]{}, false, err
	}

	switch {
	case !leftOK && !rightOK:
		return Pair[K, V]{}, false, nil

	case !rightOK:
		return Pair[K, V]{Key: left.Key, Left: left.Value, InLeft: true}, true, nil

	case !leftOK:
		return Pair[K, V]{Key: right.Key, Right: right.Value, InRight: true}, true, nil

	case left.Key < right.Key:
		if err := d.right.Pushback(); err != nil {
			return Pair[K, V]{}, false, err
		}
		return Pair[K, V]{Key: left.Key, Left: left.Value, InLeft: true}, true, nil

	case left.Key > right.Key:
		if err := d.left.Pushback(); err != nil {
			return Pair[K, V]{}, false, err
		}
		return Pair[K, V]{Key: right.Key, Right: right.Value, InRight: true}, true, nil

	default:
		return Pair[K, V]{Key: left.Key, Left: left.Value, Right: right.Value, InLeft: true, InRight: true}, true, nil
	}
}

// Each calls visit for every aligned pair until both sides are
// exhausted. A non-nil error from visit stops the walk.
func (d *Diff[K, V]) Each(visit func(Pair[K, V]) error) error {
	for {
		pair, ok, err := d.Get()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := visit(pair); err != nil {
			return err
		}
	}
}

// Rewind rewinds both sides.
func (d *Diff[K, V]) Rewind() error {
	if err := d.left.Rewind(); err != nil {
		return err
	}
	return d.right.Rewind()
}
