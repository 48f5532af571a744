package status

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Runtime metric names
const (
	LoopFrames     = "loop.frames"
	LoopDispatched = "loop.dispatched"
	LoopFPS        = "loop.fps"
	ReaderEvents   = "reader.events"
	ReaderErrors   = "reader.errors"
	QueuePeak      = "queue.peak"
	SessionCleanup = "session.cleanups"
	SessionMouse   = "session.mouse"
	ViewKind       = "view.kind"
	RunID          = "run.id"
)

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as sorted key=value pairs for the shutdown log
func (r *Registry) Summary() string {
	var pairs []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		pairs = append(pairs, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		pairs = append(pairs, fmt.Sprintf("%s=%.1f", k, v.Load()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		pairs = append(pairs, k+"="+strconv.FormatBool(v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		pairs = append(pairs, k+"="+v.Load())
	})
	slices.Sort(pairs)
	return strings.Join(pairs, " ")
}
