package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigforge/sigforge/pkg/async"
)

func TestGo(t *testing.T) {
	t.Parallel()

	t.Run("resolves with result", func(t *testing.T) {
		f := async.Go(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})
		got, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("resolves with error", func(t *testing.T) {
		wantErr := errors.New("boom")
		f := async.Go(context.Background(), "x", func(_ context.Context, _ string) (string, error) {
			return "", wantErr
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("pre-canceled context short-circuits", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		called := false
		f := async.Go(ctx, 0, func(context.Context, int) (int, error) {
			called = true
			return 1, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("returns before timeout", func(t *testing.T) {
		f := async.Go(context.Background(), 0, func(context.Context, int) (string, error) {
			return "done", nil
		})
		got, err := f.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, "done", got)
	})

	t.Run("times out on slow computation", func(t *testing.T) {
		block := make(chan struct{})
		defer close(block)
		f := async.Go(context.Background(), 0, func(context.Context, int) (string, error) {
			<-block
			return "late", nil
		})
		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	f := async.Go(context.Background(), 0, func(context.Context, int) (int, error) {
		<-block
		return 0, nil
	})
	assert.False(t, f.IsComplete())
	close(block)
	_, _ = f.Await()
	assert.True(t, f.IsComplete())
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := async.Resolved(7, nil)
	assert.True(t, f.IsComplete())
	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
