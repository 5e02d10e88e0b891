// Package bfs provides breadth-first search over an implicit state space,
// where states are generated on demand by a Space and identified by a 64-bit
// key, returning the unweighted shortest distance to a goal key.
//
// What
//
//   - Explore states in non-decreasing distance (operation count) from a
//     start state.
//   - Search stops as soon as a generated successor carries the goal key
//     (goal test on generation), reporting depth d+1.
//   - Walk performs the same traversal without a goal, which is how callers
//     build complete distance tables via the OnEnqueue hook.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a state is first discovered)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (during expansion; may abort with an error)
//   - Honors MaxDepth (d>0) and MaxStates (n>0) limits; 0 means "no limit".
//
// Keys
//
//	Visited membership and the goal test compare keys only. Two states with
//	equal keys are treated as the same state. Spaces choose the key function
//	and with it the collision trade-off.
//
// Buffers
//
//	Space.Expand may mutate a single scratch buffer and emit it repeatedly,
//	restoring it afterwards. The walker calls Space.Clone only for states
//	it keeps in the queue, so emitted values are never retained.
//
// Complexity (S = reachable states, B = successors per state)
//
//   - Time:   O(S · B · cost(Key))
//   - Memory: O(S) for the queue and visited set
//
// Usage
//
//	res, err := bfs.Search(space, start, goalKey,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxStates(1_000_000),
//	)
//	if err != nil {
//	    // ErrSpaceNil, ErrOptionViolation, ErrStateBudget, ctx.Err(), or hook errors
//	}
//	if res.Found {
//	    fmt.Println(res.Depth)
//	}
//
// Errors
//
//   - ErrSpaceNil         if the space is nil.
//   - ErrOptionViolation  if an Option is invalid (negative limits).
//   - ErrStateBudget      if MaxStates distinct states were discovered
//     without reaching the goal.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
