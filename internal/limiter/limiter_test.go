package limiter

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, New(0).Limit())
	assert.Equal(t, DefaultLimit, New(-3).Limit())
	assert.Equal(t, 7, New(7).Limit())
}

func TestLimiter_BoundsConcurrency(t *testing.T) {
	const (
		slots = 3
		units = 20
	)
	l := New(slots)

	var (
		current int64
		peak    int64
		wg      sync.WaitGroup
	)
	for range units {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Do(context.Background(), func(context.Context) error {
				n := atomic.AddInt64(&current, 1)
				for {
					p := atomic.LoadInt64(&peak)
					if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt64(&current, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, int64(slots))
	assert.Positive(t, peak)
}

func TestLimiter_Acquire_CancelledContext(t *testing.T) {
	l := New(1)

	held, err := l.Acquire(context.Background())
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	permit, err := l.Acquire(ctx)
	assert.Nil(t, permit)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPermit_ReleaseIsIdempotent(t *testing.T) {
	l := New(1)

	p, err := l.Acquire(context.Background())
	require.NoError(t, err)
	p.Release()
	p.Release()

	// a double release would have freed two slots
	first, err := l.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx)
	assert.Error(t, err)

	first.Release()
}

func TestPermit_NilRelease(t *testing.T) {
	var p *Permit
	assert.NotPanics(t, p.Release)
}

func TestLimiter_Do_ReleasesOnError(t *testing.T) {
	l := New(1)
	boom := errors.New("boom")

	err := l.Do(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, l.Do(ctx, func(context.Context) error { return nil }))
}
