// Package glasses defines the instance model, answers, options and sentinel
// errors shared by the container solvers.
package glasses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Unreachable is the external value reported when no operation sequence
// reaches the target.
const Unreachable = -1

// MaxCapacity is the largest container capacity accepted. Operation counts
// grow to about 2·(a + b), which stays within int64 below this bound.
const MaxCapacity int64 = 1 << 60

// Sentinel errors. The solvers themselves never fail on a valid instance;
// these are raised at the boundary (reader, Validate) or by search limits.
var (
	// ErrLengthMismatch indicates capacity and target vectors of different length.
	ErrLengthMismatch = errors.New("glasses: capacities and targets differ in length")

	// ErrTargetOutOfRange indicates a target below 0 or above its capacity.
	ErrTargetOutOfRange = errors.New("glasses: target outside [0, capacity]")

	// ErrInvalidCapacity indicates a capacity ≤ 0 where normalized input is
	// required, or one above MaxCapacity.
	ErrInvalidCapacity = errors.New("glasses: capacity must be positive")

	// ErrMalformedInput indicates an input stream that does not follow the
	// "n, then n capacity/target pairs" layout.
	ErrMalformedInput = errors.New("glasses: malformed input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("glasses: invalid option supplied")
)

// Method names the solver that produced an Answer.
type Method int

const (
	// MethodEmpty: no containers, or the target is already all-empty.
	MethodEmpty Method = iota
	// MethodPruned: rejected by the feasibility pre-check.
	MethodPruned
	// MethodTrivial: every target is empty or full.
	MethodTrivial
	// MethodClosedForm: two-container arithmetic solver.
	MethodClosedForm
	// MethodSearch: breadth-first search over the level space.
	MethodSearch
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodEmpty:
		return "empty"
	case MethodPruned:
		return "pruned"
	case MethodTrivial:
		return "trivial"
	case MethodClosedForm:
		return "closed-form"
	case MethodSearch:
		return "search"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Answer is the outcome of Solve.
//   - Reachable: false when no sequence of operations reaches the target.
//   - Ops:       minimum operation count, meaningful only when Reachable.
//   - Method:    which solver decided the instance.
//   - States:    distinct states the search recorded (0 unless Method is MethodSearch).
type Answer struct {
	Ops       int
	Reachable bool
	Method    Method
	States    int
}

// Value returns Ops, or Unreachable (-1) when the target cannot be reached.
func (a Answer) Value() int {
	if !a.Reachable {
		return Unreachable
	}

	return a.Ops
}

// Option configures Solve, SearchBFS and Distances via functional arguments.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// Ctx allows cancellation of the search phase.
	Ctx context.Context

	// MaxStates, if > 0, bounds the number of states the search may record.
	MaxStates int

	// Logger receives one debug record per dispatch decision.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no state
// budget and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxStates: 0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxStates bounds the search's visited set (0 = no limit).
// Negative values are recorded as ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithLogger routes dispatch diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
