package orm

import "errors"

var (
	// ErrUsage marks errors the operator fixes by re-invoking with different arguments.
	ErrUsage = errors.New("usage error")

	// ErrDimensionMismatch is returned when the channel buffers do not share one size.
	ErrDimensionMismatch = errors.New("channel dimensions differ")

	// ErrDecode wraps failures to open or decode a source image.
	ErrDecode = errors.New("could not load source image")
)
