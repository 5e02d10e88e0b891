// Package bfs provides tunable options and error definitions
// for breadth-first search over an implicit state space.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrSpaceNil is returned if a nil Space is passed.
	ErrSpaceNil = errors.New("bfs: space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateBudget is returned when MaxStates states have been discovered
	// and the search still has work left.
	ErrStateBudget = errors.New("bfs: state budget exhausted")
)

// Space generates the state graph on demand.
//
// Expand calls emit once per successor of s and stops early when emit
// returns false, returning false itself in that case. Expand may emit the
// same backing buffer repeatedly as long as every emitted value is the
// intended successor at the moment of the call.
type Space[S any] interface {
	Key(s S) uint64
	Clone(s S) S
	Expand(s S, emit func(next S) bool) bool
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is first discovered, including the
	// start state at depth 0. Receives the state key and its depth.
	OnEnqueue func(key uint64, depth int)

	// OnDequeue is called immediately before a state is expanded.
	OnDequeue func(key uint64, depth int)

	// OnVisit is called when expanding a state. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(key uint64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, bounds the visited set. Discovering one more
	// state than this aborts with ErrStateBudget.
	MaxStates int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(uint64, int) {},
		OnDequeue: func(uint64, int) {},
		OnVisit:   func(uint64, int) error { return nil },
		MaxDepth:  0,
		MaxStates: 0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(key uint64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key uint64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(key uint64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of distinct states the search may record.
//
//	n > 0: at most n visited states
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// Result holds the outcome of a search:
//   - Found:    the goal key was reached (always false for Walk).
//   - Depth:    distance from the start to the goal, valid when Found.
//   - Enqueued: distinct states discovered, the start included.
//   - Expanded: states whose successors were generated.
type Result struct {
	Found    bool
	Depth    int
	Enqueued int
	Expanded int
}
