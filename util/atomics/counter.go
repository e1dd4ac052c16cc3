package atomics

import "sync/atomic"

type Counter func() bool

// NewCounter returns a closure that atomically counts each call toward the given maximum. The closure returns
// false while the counter is still below the maximum and true once it has been reached, after which the count no
// longer advances. Increments use compare-and-swap so that concurrent callers never overshoot the maximum.
func NewCounter[T uint32 | uint64](maximum T) Counter {
	var counterFunc Counter

	switch typedMaximum := any(maximum).(type) {
	case uint32:
		counter := &atomic.Uint32{}
		counterFunc = func() bool {
			for currentValue := counter.Load(); currentValue < typedMaximum; currentValue = counter.Load() {
				if counter.CompareAndSwap(currentValue, currentValue+1) {
					return false
				}
			}

			return true
		}

	case uint64:
		counter := &atomic.Uint64{}
		counterFunc = func() bool {
			for currentValue := counter.Load(); currentValue < typedMaximum; currentValue = counter.Load() {
				if counter.CompareAndSwap(currentValue, currentValue+1) {
					return false
				}
			}

			return true
		}
	}

	return counterFunc
}
