package shape

import "errors"

// Shape errors.
// Callers should compare with errors.Is; returned errors are usually
// wrapped with the offending value.
var (
	// ErrUnknownShapeKind is returned when a kind is outside the supported set.
	// Well-formed callers never construct such a shape, so receiving this
	// error indicates a programming or data error.
	ErrUnknownShapeKind = errors.New("unknown shape kind")

	// ErrMissingHeight is returned when a trapezoid or rectangle is built
	// without a height.
	ErrMissingHeight = errors.New("missing height")

	// ErrMissingMinorBase is returned when a trapezoid is built without its
	// shorter parallel side.
	ErrMissingMinorBase = errors.New("missing minor base")

	// ErrNegativeDimension is returned when any dimension is below zero.
	ErrNegativeDimension = errors.New("invalid dimension: must be non-negative")
)
