// Package bfs provides breadth-first search over an implicit state space,
// returning the unweighted shortest distance from a start state to a goal key.
//
// BFS explores states in increasing distance from the start,
// with optional hooks, depth limiting, and a visited-state budget.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a retained state with its key and BFS depth.
type queueItem[S any] struct {
	state S
	key   uint64
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S any] struct {
	space   Space[S]
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem[S]
	visited map[uint64]struct{}
	goal    uint64
	hasGoal bool
	res     Result
	err     error // set from inside emit, which cannot return an error
}

// Search runs breadth-first search from start until a generated state's key
// equals goal, applying any number of functional Options.
// A start state whose key already equals goal yields Depth 0.
// Returns ErrSpaceNil for a nil space, ErrOptionViolation for bad options,
// ErrStateBudget when MaxStates is exceeded, ctx.Err() on cancellation,
// or any user-supplied hook error. An exhausted space yields Found == false
// and a nil error.
func Search[S any](space Space[S], start S, goal uint64, opts ...Option) (Result, error) {
	w, err := newWalker(space, opts)
	if err != nil {
		return Result{}, err
	}
	w.goal, w.hasGoal = goal, true

	if space.Key(start) == goal {
		w.res.Found = true
		w.res.Enqueued = 1
		w.opts.OnEnqueue(goal, 0)

		return w.res, nil
	}

	return w.run(start)
}

// Walk traverses every state reachable from start (subject to MaxDepth and
// MaxStates) without a goal test. Combine with WithOnEnqueue to collect the
// depth of every reachable key.
func Walk[S any](space Space[S], start S, opts ...Option) (Result, error) {
	w, err := newWalker(space, opts)
	if err != nil {
		return Result{}, err
	}

	return w.run(start)
}

// newWalker resolves options and prepares an empty walker.
func newWalker[S any](space Space[S], opts []Option) (*walker[S], error) {
	if space == nil {
		return nil, ErrSpaceNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[S]{
		space:   space,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[S], 0, 64),
		visited: make(map[uint64]struct{}, 64),
	}, nil
}

// run seeds the queue with start and drives the main loop.
func (w *walker[S]) run(start S) (Result, error) {
	// The root is pre-marked visited so no successor can re-enqueue it.
	w.enqueue(w.space.Clone(start), w.space.Key(start), 0)
	if err := w.loop(); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// enqueue marks key visited at depth d, calls OnEnqueue,
// and adds the state to the queue.
func (w *walker[S]) enqueue(s S, key uint64, d int) {
	w.visited[key] = struct{}{}
	w.res.Enqueued++
	w.opts.OnEnqueue(key, d)
	w.queue = append(w.queue, queueItem[S]{state: s, key: key, depth: d})
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && item.depth+1 > w.opts.MaxDepth {
			continue
		}
		w.expand(item)
		if w.err != nil {
			return w.err
		}
		if w.res.Found {
			return nil
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue[0] = queueItem[S]{}
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)

	return item
}

// visit counts the expansion and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Expanded++
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
	}

	return nil
}

// expand generates successors of item, stopping at the goal or on budget
// exhaustion.
func (w *walker[S]) expand(item queueItem[S]) {
	next := item.depth + 1
	w.space.Expand(item.state, func(s S) bool {
		key := w.space.Key(s)
		if w.hasGoal && key == w.goal {
			w.res.Found = true
			w.res.Depth = next

			return false
		}
		if _, seen := w.visited[key]; seen {
			return true
		}
		if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
			w.err = fmt.Errorf("%w: %d states at depth %d", ErrStateBudget, len(w.visited), next)

			return false
		}
		w.enqueue(w.space.Clone(s), key, next)

		return true
	})
}
