// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewAirports indicates a size parameter below the constructor's minimum.
	ErrTooFewAirports = errors.New("builder: too few airports")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor used without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a constructor that could not be applied,
	// e.g. a nil Constructor passed to Build.
	ErrConstructFailed = errors.New("builder: construction failed")
)
