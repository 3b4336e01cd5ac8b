// Package mapgenerr defines the status taxonomy every generator in
// pkg/mapgen returns, per spec §7: precondition violations return
// ErrInvalidConfig, allocation-shaped failures (Go has none, but the
// taxonomy is kept for interface parity with the rest of the library)
// return ErrMemory, and a nil required argument returns ErrNullParameter.
package mapgenerr

import "errors"

var (
	// ErrMemory signals an allocation failure. Go's allocator does not
	// fail the way the spec's C-shaped allocator can, but the sentinel is
	// kept so callers written against the taxonomy have something to
	// check for.
	ErrMemory = errors.New("mapgen: allocation failure")

	// ErrNullParameter signals a required argument was nil.
	ErrNullParameter = errors.New("mapgen: null parameter")

	// ErrInvalidConfig signals a precondition violation: non-positive
	// dimensions, min > max, or an out-of-range threshold.
	ErrInvalidConfig = errors.New("mapgen: invalid configuration")
)
