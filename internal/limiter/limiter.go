// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter bounds the number of simultaneously outstanding remote
// calls and filesystem mutations of a backup run.
//
// A single Limiter is created per run and shared by every unit of work,
// whatever its nesting level. Callers acquire a Permit before each guarded
// operation and release it (usually deferred) on every exit path.
//
// A unit must never hold a Permit while waiting for other units that need
// one themselves: with N slots, N such waiters deadlock the run.
package limiter

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultLimit is the number of slots used when New is given a
// non-positive value.
const DefaultLimit = 4

// Limiter is a counting semaphore with a fixed number of slots.
type Limiter struct {
	sem   *semaphore.Weighted
	limit int
}

// New returns a Limiter with n slots, or DefaultLimit slots when n <= 0.
func New(n int) *Limiter {
	if n <= 0 {
		n = DefaultLimit
	}
	return &Limiter{
		sem:   semaphore.NewWeighted(int64(n)),
		limit: n,
	}
}

// Limit returns the number of slots.
func (l *Limiter) Limit() int {
	return l.limit
}

// Acquire blocks until a slot is available or ctx is done. On success the
// returned Permit must be released exactly once; extra Release calls are
// ignored.
func (l *Limiter) Acquire(ctx context.Context) (*Permit, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &Permit{release: func() { l.sem.Release(1) }}, nil
}

// Do runs fn while holding a slot.
func (l *Limiter) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	permit, err := l.Acquire(ctx)
	if err != nil {
		return err
	}
	defer permit.Release()

	return fn(ctx)
}

// Permit is a held slot of a Limiter.
type Permit struct {
	once    sync.Once
	release func()
}

// Release returns the slot to the Limiter. It is safe to call more than
// once and on a nil Permit.
func (p *Permit) Release() {
	if p == nil {
		return
	}
	p.once.Do(p.release)
}
