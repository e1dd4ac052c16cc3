package channels_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tempnet-io/tempnet/util/channels"
)

const (
	expectedValue = 1
)

func TestSubmit(t *testing.T) {
	var (
		channel                      = make(chan int)
		wg                           = &sync.WaitGroup{}
		cancelCtx, cancelCtxDoneFunc = context.WithCancel(context.Background())
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		value, hasValue := channels.Receive(cancelCtx, channel)

		require.True(t, hasValue)
		require.Equal(t, expectedValue, value)
	}()

	// Should return true when the channel is successfully written to
	require.True(t, channels.Submit(cancelCtx, channel, expectedValue))

	// Should return false when the context has expired
	cancelCtxDoneFunc()
	require.False(t, channels.Submit(cancelCtx, channel, expectedValue))

	close(channel)
	wg.Wait()
}

func TestReceive(t *testing.T) {
	var (
		channel                      = make(chan int)
		wg                           = &sync.WaitGroup{}
		cancelCtx, cancelCtxDoneFunc = context.WithCancel(context.Background())
	)

	wg.Add(1)

	go func() {
		defer wg.Done()
		require.True(t, channels.Submit(cancelCtx, channel, expectedValue))
	}()

	// Should return true when the channel is successfully read from
	value, hasValue := channels.Receive(cancelCtx, channel)
	require.True(t, hasValue)
	require.Equal(t, expectedValue, value)

	// Should return false when the context has expired
	cancelCtxDoneFunc()

	_, hasValue = channels.Receive(cancelCtx, channel)
	require.False(t, hasValue)

	// Should return false when the readable channel is closed
	cancelCtx, cancelCtxDoneFunc = context.WithCancel(context.Background())
	defer cancelCtxDoneFunc()
	close(channel)

	_, hasValue = channels.Receive(cancelCtx, channel)
	require.False(t, hasValue)

	wg.Wait()
}

func TestConcurrencyLimiter(t *testing.T) {
	limiter := channels.NewConcurrencyLimiter(2)

	require.True(t, limiter.Acquire(context.Background()))
	require.True(t, limiter.Acquire(context.Background()))

	timeoutCtx, done := context.WithTimeout(context.Background(), time.Millisecond)
	defer done()

	require.False(t, limiter.Acquire(timeoutCtx))

	limiter.Release()
	require.True(t, limiter.Acquire(context.Background()))
}
