// Package kvstream implements composable pull-based iterators over
// key/value sequences sorted by ascending key: a leaf stream reading
// whitespace-delimited text records, decorators for de-duplication and
// key grouping, a k-way merge and a pairwise full-outer-join diff.
//
// Every stream yields keys in non-decreasing order and carries at most
// one pushed-back record; combinators rely on both to reason about
// correctness. Streams are synchronous and single-consumer.
package kvstream

import "cmp"

// Record is one key/value pair produced by a stream.
type Record[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Source produces raw records in non-decreasing key order.
type Source[K cmp.Ordered, V any] interface {
	// Read consumes and returns the next record. ok is false once the
	// source is exhausted; Read must not be called again after that
	// without an intervening Rewind.
	Read() (rec Record[K, V], ok bool, err error)
	// AtEnd reports whether no more records remain.
	AtEnd() bool
	// Rewind repositions the source to its first record.
	Rewind() error
}

// Filter decides whether a record is visited during Each. Filters apply
// to bulk iteration only, never to raw Pull.
type Filter[K cmp.Ordered, V any] func(key K, value V) bool

// Stream composes the shared sorted-stream capabilities over a Source:
// one level of pushback, an ordered filter list and bulk iteration.
type Stream[K cmp.Ordered, V any] struct {
	src        Source[K, V]
	pending    Record[K, V]
	hasPending bool
	last       Record[K, V]
	hasLast    bool
	filters    []Filter[K, V]
}

// NewStream wraps src with the shared stream capabilities. The stream
// takes exclusive ownership of src for its lifetime.
func NewStream[K cmp.Ordered, V any](src Source[K, V]) *Stream[K, V] {
	return &Stream[K, V]{src: src}
}

// Pull returns the next record. A pending pushback is re-delivered
// first; otherwise the source is read. ok is false at end of stream.
func (s *Stream[K, V]) Pull() (Record[K, V], bool, error) {
	if s.hasPending {
		s.hasPending = false
		s.last, s.hasLast = s.pending, true
		return s.last, true, nil
	}

	if s.src.AtEnd() {
		return Record[K, V]{}, false, nil
	}

	rec, ok, err := s.src.Read()
	if err != nil || !ok {
		return Record[K, V]{}, false, err
	}

	s.last, s.hasLast = rec, true
	return rec, true, nil
}

// Pushback shelves the record most recently delivered by Pull so the
// next Pull re-delivers it. At most one record may be pending: a second
// Pushback without an intervening Pull is a usage error, as is a
// Pushback before anything was pulled.
func (s *Stream[K, V]) Pushback() error {
	if s.hasPending {
		return ErrPushbackPending.New("a record is already pushed back")
	}
	if !s.hasLast {
		return ErrNothingPulled.New("no record has been pulled")
	}

	s.pending, s.hasPending = s.last, true
	s.hasLast = false
	return nil
}

// AtEnd reports whether the stream is exhausted. A pending pushback
// counts as a remaining record.
func (s *Stream[K, V]) AtEnd() bool {
	return !s.hasPending && s.src.AtEnd()
}

// Rewind resets iteration to the start, discarding any pending
// pushback.
func (s *Stream[K, V]) Rewind() error {
	s.hasPending = false
	s.hasLast = false
	return s.src.Rewind()
}

// WithFilter appends predicates to the stream's filter list and returns
// the stream for chaining.
func (s *Stream[K, V]) WithFilter(filters ...Filter[K, V]) *Stream[K, V] {
	s.filters = append(s.filters, filters...)
	return s
}

// Each pulls every remaining record and visits those admitted by all
// filters, in order. It consumes the stream; a non-nil error from visit
// stops the walk.
func (s *Stream[K, V]) Each(visit func(key K, value V) error) error {
	for {
		rec, ok, err := s.Pull()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !s.admit(rec) {
			continue
		}
		if err := visit(rec.Key, rec.Value); err != nil {
			return err
		}
	}
}

func (s *Stream[K, V]) admit(rec Record[K, V]) bool {
	for _, filter := range s.filters {
		if !filter(rec.Key, rec.Value) {
			return false
		}
	}
	return true
}

// Diff pairs the stream, as the left side, with right.
func (s *Stream[K, V]) Diff(right *Stream[K, V]) *Diff[K, V] {
	return NewDiff(s, right)
}
