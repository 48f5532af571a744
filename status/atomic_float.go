package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its IEEE-754 bits; the zero value reads 0
type AtomicFloat struct {
	v atomic.Uint64
}

// Store replaces the gauge value
func (f *AtomicFloat) Store(val float64) {
	f.v.Store(math.Float64bits(val))
}

// Load returns the last stored value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.v.Load())
}
