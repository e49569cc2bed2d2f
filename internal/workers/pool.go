// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/MKhiriev/go-exercism-backup/internal/logger"
)

// Unit is a piece of work run by a Pool. The context is cancelled when the
// pool is aborted.
type Unit func(ctx context.Context) error

// Pool runs units concurrently and collects their outcomes.
//
// A failing unit never stops its siblings. Join waits for every spawned
// unit and reports all failures at once in a *PoolError. A panic inside a
// unit is not a failure: it aborts the pool and is re-raised by Join in
// the caller's goroutine as a *UnitPanic.
//
// Spawn must not be called concurrently with or after Join.
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc
	log    *logger.Logger

	wg     sync.WaitGroup
	mu     sync.Mutex
	errs   []error
	faults chan *UnitPanic
}

// NewPool returns a Pool whose units observe ctx.
func NewPool(ctx context.Context, log *logger.Logger) *Pool {
	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		ctx:    ctx,
		cancel: cancel,
		log:    log,
		faults: make(chan *UnitPanic, 1),
	}
}

// Spawn starts unit in its own goroutine.
func (p *Pool) Spawn(unit Unit) {
	p.wg.Add(1)
	go p.run(unit)
}

func (p *Pool) run(unit Unit) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			// a nested pool re-panics with its own fault; keep the innermost one
			fault, ok := r.(*UnitPanic)
			if !ok {
				fault = &UnitPanic{Value: r, Stack: debug.Stack()}
			}
			p.log.Error().Interface("panic", fault.Value).Msg("unit panicked, aborting pool")
			select {
			case p.faults <- fault:
			default:
			}
			p.cancel()
		}
	}()

	if err := p.ctx.Err(); err != nil {
		p.record(fmt.Errorf("unit not started: %w", err))
		return
	}

	if err := unit(p.ctx); err != nil {
		p.record(err)
	}
}

func (p *Pool) record(err error) {
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
}

// Abort cancels every unit of the pool. Units not yet started fail with the
// cancellation error; running units see their context done.
func (p *Pool) Abort() {
	p.cancel()
}

// Join waits for all units and returns nil when none failed, or a
// *PoolError labelled with label holding every failure. If a unit panicked,
// Join aborts the remaining units and panics with the *UnitPanic.
func (p *Pool) Join(label string) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case fault := <-p.faults:
		p.cancel()
		panic(fault)
	case <-done:
	}

	select {
	case fault := <-p.faults:
		p.cancel()
		panic(fault)
	default:
	}

	p.cancel()

	p.mu.Lock()
	errs := p.errs
	p.errs = nil
	p.mu.Unlock()

	if len(errs) == 0 {
		return nil
	}
	return newPoolError(label, errs)
}
