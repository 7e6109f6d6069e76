package kvstream

import "cmp"

// Appender is the capability a merge container needs: collect the
// values carried by records sharing the round's minimum key, in input
// order.
type Appender[V any] interface {
	Append(v V)
}

// List is the default merge container, an append-only ordered sequence.
type List[V any] struct {
	Items []V
}

func (l *List[V]) Append(v V) {
	l.Items = append(l.Items, v)
}

// merge performs a k-way merge over sorted inputs. Each round pulls one
// record from every live input, yields the minimum key with the values
// of all inputs holding it, and pushes every greater record back onto
// its own input. O(k) work per output record, one pending record per
// input, no other buffering.
type merge[K cmp.Ordered, V any, A Appender[V]] struct {
	inputs  []*Stream[K, V]
	collect func() A
}

type scoreEntry[K cmp.Ordered, V any] struct {
	idx int
	rec Record[K, V]
}

// NewMergeWith merges the sorted inputs, collecting each output key's
// values into a fresh container from collect. inputs must be non-empty.
func NewMergeWith[K cmp.Ordered, V any, A Appender[V]](collect func() A, inputs ...*Stream[K, V]) *Stream[K, A] {
	if len(inputs) == 0 {
		panic("kvstream: merge needs at least one input")
	}
	return NewStream[K, A](&merge[K, V, A]{inputs: inputs, collect: collect})
}

// NewMerge merges the sorted inputs into *List containers.
func NewMerge[K cmp.Ordered, V any](inputs ...*Stream[K, V]) *Stream[K, *List[V]] {
	return NewMergeWith(func() *List[V] { return new(List[V]) }, inputs...)
}

func (m *merge[K, V, A]) Read() (Record[K, A], bool, error) {
	board := make([]scoreEntry[K, V], 0, len(m.inputs))
	for idx, input := range m.inputs {
		rec, ok, err := input.Pull()
		if err != nil {
			return Record[K, A]{}, false, err
		}
		if !ok {
			continue
		}
		board = append(board, scoreEntry[K, V]{idx: idx, rec: rec})
	}

	if len(board) == 0 {
		return Record[K, A]{}, false, nil
	}

	minKey := board[0].rec.Key
	for _, entry := range board[1:] {
		if entry.rec.Key < minKey {
			minKey = entry.rec.Key
		}
	}

	out := m.collect()
	for _, entry := range board {
		if entry.rec.Key == minKey {
			out.Append(entry.rec.Value)
			continue
		}
		// Not this round's key, re-offer it on the next one.
		if err := m.inputs[entry.idx].Pushback(); err != nil {
			return Record[K, A]{}, false, err
		}
	}

	return Record[K, A]{Key: minKey, Value: out}, true, nil
}

func (m *merge[K, V, A]) AtEnd() bool {
	for _, input := range m.inputs {
		if !input.AtEnd() {
			return false
		}
	}
	return true
}

func (m *merge[K, V, A]) Rewind() error {
	var firstErr error
	for _, input := range m.inputs {
		if err := input.Rewind(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
