// Package channels provides context-aware channel send and receive primitives along with a slot-based concurrency
// limiter.
package channels

import "context"

// Submit writes the given value to the channel, returning false if the context expires first.
func Submit[T any](ctx context.Context, channel chan<- T, value T) bool {
	select {
	case channel <- value:
		return true

	case <-ctx.Done():
		return false
	}
}

// Receive reads the next value from the channel. The second return value is false if the context expires or the
// channel is closed before a value arrives.
func Receive[T any](ctx context.Context, channel <-chan T) (T, bool) {
	var emptyT T

	select {
	case value, channelOpen := <-channel:
		if !channelOpen {
			return emptyT, false
		}

		return value, true

	case <-ctx.Done():
		return emptyT, false
	}
}
