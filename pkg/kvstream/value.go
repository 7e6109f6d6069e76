package kvstream

import (
	"slices"
	"strings"
)

// ValueKind discriminates the payload shapes a leaf stream produces.
type ValueKind uint8

const (
	// KindAbsent is a record with a key and no value fields.
	KindAbsent ValueKind = iota
	// KindScalar is a single value field.
	KindScalar
	// KindSequence is two or more value fields, in input order.
	KindSequence
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is the tagged payload of a leaf record: absent, a scalar, or an
// ordered sequence of fields. Consumers switch on Kind instead of type
// asserting.
type Value struct {
	kind   ValueKind
	scalar string
	fields []string
}

// AbsentValue returns the empty payload.
func AbsentValue() Value {
	return Value{kind: KindAbsent}
}

// ScalarValue returns a single-field payload.
func ScalarValue(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// SequenceValue returns an ordered multi-field payload.
func SequenceValue(fields ...string) Value {
	return Value{kind: KindSequence, fields: fields}
}

// Kind returns the payload shape.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether the value carries no fields.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Scalar returns the single field of a scalar value.
func (v Value) Scalar() (string, bool) {
	return v.scalar, v.kind == KindScalar
}

// Sequence returns the fields of a sequence value.
func (v Value) Sequence() ([]string, bool) {
	return v.fields, v.kind == KindSequence
}

// Fields returns the payload as a field slice regardless of kind:
// empty for absent, one element for a scalar.
func (v Value) Fields() []string {
	switch v.kind {
	case KindScalar:
		return []string{v.scalar}
	case KindSequence:
		return v.fields
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and fields.
func (v Value) Equal(other Value) bool {
	return v.kind == other.kind && slices.Equal(v.Fields(), other.Fields())
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		return strings.Join(v.fields, " ")
	default:
		return ""
	}
}
