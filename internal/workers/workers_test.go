// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnit = errors.New("unit failed")

// ── Pool ─────────────────────────────────────────────────────────────────────

func TestPool_Join_NoUnits(t *testing.T) {
	p := NewPool(context.Background(), logger.Nop())
	assert.NoError(t, p.Join("empty"))
}

func TestPool_Join_AllSucceed(t *testing.T) {
	p := NewPool(context.Background(), logger.Nop())

	var ran atomic.Int64
	for range 10 {
		p.Spawn(func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	assert.NoError(t, p.Join("ok"))
	assert.Equal(t, int64(10), ran.Load())
}

func TestPool_Join_CollectsEveryFailure(t *testing.T) {
	const (
		n = 12
		k = 5
	)
	p := NewPool(context.Background(), logger.Nop())

	var ran atomic.Int64
	for i := range n {
		p.Spawn(func(context.Context) error {
			ran.Add(1)
			if i < k {
				return fmt.Errorf("item %d: %w", i, errUnit)
			}
			return nil
		})
	}

	err := p.Join("solutions")
	require.Error(t, err)
	assert.Equal(t, int64(n), ran.Load(), "failures must not stop siblings")

	var poolErr *PoolError
	require.ErrorAs(t, err, &poolErr)
	assert.Equal(t, "solutions", poolErr.Label)
	assert.Len(t, poolErr.Errors(), k)
	assert.ErrorIs(t, err, errUnit)
	assert.Contains(t, err.Error(), "solutions: 5 error(s)")
}

func TestPool_Join_NestedErrorsKeepContext(t *testing.T) {
	outer := NewPool(context.Background(), logger.Nop())

	outer.Spawn(func(ctx context.Context) error {
		inner := NewPool(ctx, logger.Nop())
		inner.Spawn(func(context.Context) error { return fmt.Errorf("file a.go: %w", errUnit) })
		inner.Spawn(func(context.Context) error { return nil })
		if err := inner.Join("go/two-fer"); err != nil {
			return fmt.Errorf("backup go/two-fer: %w", err)
		}
		return nil
	})

	err := outer.Join("page 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnit)
	assert.Contains(t, err.Error(), "file a.go")
	assert.Contains(t, err.Error(), "go/two-fer")
}

func TestPool_Join_NestedPanicKeepsInnermostFault(t *testing.T) {
	outer := NewPool(context.Background(), logger.Nop())

	outer.Spawn(func(ctx context.Context) error {
		inner := NewPool(ctx, logger.Nop())
		inner.Spawn(func(context.Context) error { panic("inner invariant") })
		return inner.Join("inner")
	})

	defer func() {
		fault, ok := recover().(*UnitPanic)
		require.True(t, ok)
		assert.Equal(t, "inner invariant", fault.Value)
	}()

	_ = outer.Join("outer")
	t.Fatal("Join returned instead of panicking")
}

func TestPool_Join_PanicsWithUnitPanic(t *testing.T) {
	p := NewPool(context.Background(), logger.Nop())

	p.Spawn(func(context.Context) error { panic("broken invariant") })

	defer func() {
		r := recover()
		require.NotNil(t, r, "Join must re-panic")
		fault, ok := r.(*UnitPanic)
		require.True(t, ok, "panic value must be *UnitPanic, got %T", r)
		assert.Equal(t, "broken invariant", fault.Value)
		assert.NotEmpty(t, fault.Stack)
	}()

	_ = p.Join("panicky")
	t.Fatal("Join returned instead of panicking")
}

func TestPool_Panic_AbortsSiblings(t *testing.T) {
	p := NewPool(context.Background(), logger.Nop())

	var cancelled atomic.Bool
	p.Spawn(func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			cancelled.Store(true)
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return nil
		}
	})
	p.Spawn(func(context.Context) error { panic("boom") })

	assert.Panics(t, func() { _ = p.Join("abort") })

	require.Eventually(t, cancelled.Load, time.Second, 5*time.Millisecond)
}

func TestPool_Abort_FailsPendingUnits(t *testing.T) {
	p := NewPool(context.Background(), logger.Nop())
	p.Abort()

	p.Spawn(func(context.Context) error { return nil })

	err := p.Join("aborted")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPool_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPool(ctx, logger.Nop())

	started := make(chan struct{})
	p.Spawn(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	})

	<-started
	cancel()

	err := p.Join("cancelled")
	assert.ErrorIs(t, err, context.Canceled)
}
