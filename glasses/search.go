package glasses

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/glasses/bfs"
	"github.com/katalvlaran/glasses/fingerprint"
)

// levelSpace is the implicit state graph of a set of containers: states are
// level vectors, edges are single fill, empty or pour operations.
//
// Expand mutates the level vector it is given and restores every entry
// before returning, on every path including early stops, so the caller
// observes an unchanged vector.
type levelSpace struct {
	capacities []int
}

var _ bfs.Space[[]int] = levelSpace{}

// Key fingerprints a level vector.
func (s levelSpace) Key(levels []int) uint64 { return fingerprint.Of(levels) }

// Clone copies a level vector for retention in the queue.
func (s levelSpace) Clone(levels []int) []int { return slices.Clone(levels) }

// Expand emits, per container i, the empty and fill successors followed by
// every pour from i into another container.
func (s levelSpace) Expand(cur []int, emit func([]int) bool) bool {
	for i := range s.capacities {
		if !s.fillEmpty(i, cur, emit) {
			return false
		}
		if !s.pourFrom(i, cur, emit) {
			return false
		}
	}

	return true
}

// fillEmpty emits cur with container i emptied (unless already empty) and
// filled (unless already full).
func (s levelSpace) fillEmpty(i int, cur []int, emit func([]int) bool) bool {
	original := cur[i]
	if original != 0 {
		cur[i] = 0
		ok := emit(cur)
		cur[i] = original
		if !ok {
			return false
		}
	}
	if original != s.capacities[i] {
		cur[i] = s.capacities[i]
		ok := emit(cur)
		cur[i] = original
		if !ok {
			return false
		}
	}

	return true
}

// pourFrom emits cur after pouring container i into each other container j
// until i is empty or j is full. Nothing is emitted when i is empty or j full.
func (s levelSpace) pourFrom(i int, cur []int, emit func([]int) bool) bool {
	original := cur[i]
	if original == 0 {
		return true
	}
	for j := range s.capacities {
		if j == i || cur[j] == s.capacities[j] {
			continue
		}
		moved := min(original, s.capacities[j]-cur[j])
		cur[i] -= moved
		cur[j] += moved
		ok := emit(cur)
		cur[i] = original
		cur[j] -= moved
		if !ok {
			return false
		}
	}

	return true
}

// SearchBFS computes the minimum operation count by breadth-first search
// over level vectors, starting from all-empty. It applies to any number of
// containers and performs no pruning of its own, which makes it the
// reference the faster solvers are checked against.
//
// Visited states and the goal test use 64-bit fingerprints; a fingerprint
// collision would conflate two states. The state space is finite (at most
// Π(capacity[i]+1) states), so the search always terminates.
//
// Errors: ErrLengthMismatch / ErrTargetOutOfRange for invalid instances,
// ErrOptionViolation for bad options, bfs.ErrStateBudget when MaxStates is
// exceeded, and context errors on cancellation.
func SearchBFS(capacities, targets []int, opts ...Option) (Answer, error) {
	o, err := resolve(opts)
	if err != nil {
		return Answer{}, err
	}
	if err = (Instance{Capacities: capacities, Targets: targets}).Validate(); err != nil {
		return Answer{}, err
	}

	return search(capacities, targets, o)
}

// search runs the level-space BFS on a validated instance.
func search(capacities, targets []int, o Options) (Answer, error) {
	res, err := bfs.Search[[]int](
		levelSpace{capacities: capacities},
		make([]int, len(capacities)),
		fingerprint.Of(targets),
		bfs.WithContext(o.Ctx),
		bfs.WithMaxStates(o.MaxStates),
	)
	ans := Answer{Method: MethodSearch, States: res.Enqueued}
	if err != nil {
		return ans, err
	}
	ans.Reachable, ans.Ops = res.Found, res.Depth

	return ans, nil
}

// Distances walks every state reachable from all-empty and returns its
// minimum operation count keyed by fingerprint.Of(levels). Absent keys are
// unreachable. Intended for cross-validation on small capacities; the table
// holds one entry per reachable state.
func Distances(capacities []int, opts ...Option) (map[uint64]int, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	for i, c := range capacities {
		if c <= 0 {
			return nil, fmt.Errorf("%w: container %d has capacity %d", ErrInvalidCapacity, i, c)
		}
	}

	dist := make(map[uint64]int)
	_, err = bfs.Walk[[]int](
		levelSpace{capacities: capacities},
		make([]int, len(capacities)),
		bfs.WithContext(o.Ctx),
		bfs.WithMaxStates(o.MaxStates),
		bfs.WithOnEnqueue(func(key uint64, depth int) { dist[key] = depth }),
	)
	if err != nil {
		return nil, err
	}

	return dist, nil
}
