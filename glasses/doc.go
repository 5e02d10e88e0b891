// Package glasses computes the minimum number of operations that bring a set
// of capacity-bounded containers from all-empty to a target level vector.
//
// What
//
//   - Three operations, each counted once: fill (set a container to its
//     capacity), empty (set it to 0) and pour (move water from i to j until
//     i is empty or j is full).
//   - Solve answers one instance: the minimum count, or "unreachable".
//   - Only the count is produced, never the operation sequence.
//
// How
//
//	Solve dispatches to the cheapest applicable solver:
//	  - CanPossiblyReach: gcd and boundary-level necessary conditions.
//	  - SolveIfTrivial:   all targets empty or full → count the fills.
//	  - SolveForTwo:      two containers → number-theoretic closed form.
//	  - SearchBFS:        three or more → breadth-first search over level
//	                      vectors, keyed by 64-bit fingerprints.
//
// Input
//
//	ReadInstance parses "n" followed by n "capacity target" pairs and drops
//	containers with capacity ≤ 0.
//
// Fingerprints
//
//	The search treats equal fingerprints as equal states. This is an
//	accepted probabilistic risk; no exact-equality fallback exists.
//
// Complexity
//
//   - Pre-check, trivial case: O(n + log max capacity).
//   - Closed form:             O(log max(a, b)).
//   - Search:                  O(S · n²) with S ≤ Π(capacity[i]+1) states.
//
// Usage
//
//	ans, err := glasses.Solve(glasses.Instance{
//	    Capacities: []int{3, 5},
//	    Targets:    []int{3, 4},
//	})
//	if err != nil {
//	    // ErrLengthMismatch, ErrTargetOutOfRange, bfs.ErrStateBudget, ...
//	}
//	fmt.Println(ans.Value()) // 6
package glasses
