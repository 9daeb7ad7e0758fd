package epoch

import "errors"

var (
	// ErrInvalidJDE indicates a Julian Ephemeris Date that is NaN or infinite.
	ErrInvalidJDE = errors.New("epoch: invalid julian ephemeris date")

	// ErrNegativePower indicates a negative exponent was requested.
	ErrNegativePower = errors.New("epoch: power must be non-negative")
)
