package kvstream

import "github.com/joomcode/errorx"

var (
	namespace = errorx.NewNamespace("kvstream")

	// TraitUsage marks errors caused by misuse of the stream protocol
	// rather than by the underlying data source.
	TraitUsage = errorx.RegisterTrait("usage")

	// ErrPushbackPending is returned by Pushback when a record is
	// already pending.
	ErrPushbackPending = namespace.NewType("pushback_pending", TraitUsage)

	// ErrNothingPulled is returned by Pushback when no record has been
	// delivered yet.
	ErrNothingPulled = namespace.NewType("nothing_pulled", TraitUsage)

	// ErrRewind is returned when a source cannot be repositioned, e.g.
	// because its underlying handle was already released.
	ErrRewind = namespace.NewType("rewind_failed", TraitUsage)
)

// IsUsage reports whether err is a stream protocol misuse.
func IsUsage(err error) bool {
	return errorx.HasTrait(err, TraitUsage)
}
