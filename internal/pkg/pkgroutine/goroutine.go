package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic marks errors produced from a recovered task panic.
var ErrPanic = errors.New("pkgroutine: task panicked")

// Task is a unit of background work. It must return once ctx is done.
type Task func(ctx context.Context) error

// Manager runs named tasks with a bounded concurrency.
type Manager struct {
	mu   sync.Mutex
	errs []error
	wg   sync.WaitGroup
	sema chan struct{}
}

// NewManager creates a Manager that runs at most maxGoroutine tasks at a time.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{sema: make(chan struct{}, maxGoroutine)}
}

// Go starts task in its own goroutine once a slot is free.
// It returns false when ctx is done before the task could start.
func (g *Manager) Go(ctx context.Context, name string, task Task) bool {
	if ctx.Err() != nil {
		slog.WarnContext(ctx, "background task canceled before start", "task", name, "because", ctx.Err())
		return false
	}

	select {
	case g.sema <- struct{}{}:
	case <-ctx.Done():
		slog.WarnContext(ctx, "background task canceled before start", "task", name, "because", ctx.Err())
		return false
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() { <-g.sema }()
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "background task panicked",
					"task", name,
					"panic", fmt.Sprint(rvr),
					"stack", string(debug.Stack()),
				)
				g.record(fmt.Errorf("%s: %w: %v", name, ErrPanic, rvr))
			}
		}()

		slog.DebugContext(ctx, "background task started", "task", name)
		if err := task(ctx); err != nil {
			g.record(fmt.Errorf("%s: %w", name, err))
		}
	}()

	return true
}

func (g *Manager) record(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}

// Wait blocks until all started tasks finish and returns their joined errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}
