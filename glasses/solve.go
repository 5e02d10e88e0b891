// Package glasses - dispatcher for the container solvers.
//
// Solve routes an instance to the cheapest solver that applies, in order of
// specificity:
//
//  1. no containers, or an all-empty target → 0
//  2. CanPossiblyReach fails              → unreachable
//  3. SolveIfTrivial applies              → number of full targets
//  4. exactly two containers              → SolveForTwo (closed form)
//  5. otherwise                           → SearchBFS
package glasses

import (
	"log/slog"
	"slices"
)

// Solve validates inst, normalizing away containers with capacity ≤ 0, and
// returns the minimum number of fill / empty / pour operations that turn the
// all-empty state into inst.Targets.
//
// Solve is a pure function of its inputs: inst is never modified and no state
// survives between calls.
//
// Errors: ErrLengthMismatch, ErrTargetOutOfRange and ErrOptionViolation for
// invalid input; bfs.ErrStateBudget and context errors from the search phase.
// An unreachable target is not an error: Answer.Reachable is false.
func Solve(inst Instance, opts ...Option) (Answer, error) {
	o, err := resolve(opts)
	if err != nil {
		return Answer{}, err
	}
	if len(inst.Capacities) != len(inst.Targets) {
		return Answer{}, inst.Validate()
	}
	in := inst.Normalize()
	if err = in.Validate(); err != nil {
		return Answer{}, err
	}
	caps, targets := in.Capacities, in.Targets
	log := o.Logger.With(slog.Int("containers", len(caps)))

	if len(caps) == 0 || allZero(targets) {
		log.Debug("target already satisfied")
		return Answer{Reachable: true, Method: MethodEmpty}, nil
	}
	if !CanPossiblyReach(caps, targets) {
		log.Debug("rejected by feasibility pre-check")
		return Answer{Method: MethodPruned}, nil
	}
	if ops, ok := SolveIfTrivial(caps, targets); ok {
		log.Debug("solved by boundary fills", slog.Int("ops", ops))
		return Answer{Ops: ops, Reachable: true, Method: MethodTrivial}, nil
	}

	if len(caps) == 2 {
		if ops, ok := SolveForTwo(caps[0], caps[1], targets[0], targets[1]); ok {
			log.Debug("solved in closed form", slog.Int("ops", ops))
			return Answer{Ops: ops, Reachable: true, Method: MethodClosedForm}, nil
		}
		// A feasible-looking pair with no closed-form strategy: trust search.
		log.Warn("closed form found no strategy, falling back to search",
			slog.Any("capacities", caps), slog.Any("targets", targets))
	}

	ans, err := search(caps, targets, o)
	if err != nil {
		return ans, err
	}
	log.Debug("solved by search",
		slog.Bool("reachable", ans.Reachable), slog.Int("ops", ans.Ops), slog.Int("states", ans.States))

	return ans, nil
}

// SolveValue is Solve reduced to the external contract: the operation count,
// or Unreachable.
func SolveValue(capacities, targets []int, opts ...Option) (int, error) {
	ans, err := Solve(Instance{Capacities: capacities, Targets: targets}, opts...)
	if err != nil {
		return 0, err
	}

	return ans.Value(), nil
}

func allZero(levels []int) bool {
	return !slices.ContainsFunc(levels, func(v int) bool { return v != 0 })
}
