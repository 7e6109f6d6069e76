package kvstream

import (
	"bufio"
	"io"
	"strings"
)

// leaf reads whitespace-delimited records from a line-oriented source.
// One line is one record: the first field is the key, the remaining
// fields form the value (none = absent, one = scalar, more = sequence).
// A line with no fields signals end of source.
//
// The leaf keeps one line of lookahead so AtEnd can be answered without
// consuming a record.
type leaf struct {
	rs      io.ReadSeeker
	scanner *bufio.Scanner
	next    string
	ready   bool
	done    bool
	err     error
}

// NewLeaf returns a stream over an already-open line source. Keys must
// arrive in non-decreasing order; the stream does not sort. The caller
// keeps ownership of rs and is responsible for releasing it.
func NewLeaf(rs io.ReadSeeker) *Stream[string, Value] {
	return NewStream[string, Value](&leaf{
		rs:      rs,
		scanner: bufio.NewScanner(rs),
	})
}

func (l *leaf) advance() {
	if l.ready || l.done {
		return
	}

	if !l.scanner.Scan() {
		l.done = true
		l.err = l.scanner.Err()
		return
	}

	line := l.scanner.Text()
	if strings.TrimSpace(line) == "" {
		// A line lacking any field ends the source.
		l.done = true
		return
	}

	l.next, l.ready = line, true
}

func (l *leaf) AtEnd() bool {
	l.advance()
	// A pending scan error is not "end": Read must surface it.
	return !l.ready && l.err == nil
}

func (l *leaf) Read() (Record[string, Value], bool, error) {
	l.advance()
	if l.err != nil {
		return Record[string, Value]{}, false, l.err
	}
	if !l.ready {
		return Record[string, Value]{}, false, nil
	}

	l.ready = false
	fields := strings.Fields(l.next)

	rec := Record[string, Value]{Key: fields[0]}
	switch len(fields) {
	case 1:
		rec.Value = AbsentValue()
	case 2:
		rec.Value = ScalarValue(fields[1])
	default:
		rec.Value = SequenceValue(fields[1:]...)
	}

	return rec, true, nil
}

func (l *leaf) Rewind() error {
	if _, err := l.rs.Seek(0, io.SeekStart); err != nil {
		return ErrRewind.Wrap(err, "line source cannot be repositioned")
	}

	l.scanner = bufio.NewScanner(l.rs)
	l.next, l.ready = "", false
	l.done = false
	l.err = nil
	return nil
}
