package errs

import "errors"

// Kind is the coarse classification reported to callers of the core.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindForbidden
	KindConflict
	KindInvalid
)

var kindNames = map[Kind]string{
	KindInternal:  "internal",
	KindNotFound:  "not_found",
	KindForbidden: "forbidden",
	KindConflict:  "conflict",
	KindInvalid:   "invalid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

// KindOf classifies err by the sentinel it wraps. Anything unrecognised,
// storage failures included, is Internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange),
		errors.Is(err, ErrValueIsRequired):
		return KindInvalid
	default:
		return KindInternal
	}
}
