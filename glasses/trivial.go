package glasses

// SolveIfTrivial answers instances whose targets are all boundary levels.
// Containers targeted full need one fill each; containers targeted empty need
// nothing because the start state is all-empty. ok is false as soon as any
// target is strictly between 0 and its capacity.
func SolveIfTrivial(capacities, targets []int) (ops int, ok bool) {
	for i, t := range targets {
		switch t {
		case 0:
		case capacities[i]:
			ops++
		default:
			return 0, false
		}
	}

	return ops, true
}
