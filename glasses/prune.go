package glasses

import "github.com/katalvlaran/glasses/numeric"

// CanPossiblyReach applies two necessary conditions for reachability:
//
//  1. Every level is always a multiple of g = gcd(capacities): fills add a
//     capacity, empties remove a multiple of g, pours move a difference of
//     multiples of g. So each target must be a multiple of g.
//  2. The last operation of any sequence leaves some container empty or
//     full (fill, empty, or a pour that drains its source or tops up its
//     destination). So some target must equal 0 or its capacity.
//
// A true result means "not ruled out"; a solver still has to confirm.
// capacities must be positive and len(targets) == len(capacities).
func CanPossiblyReach(capacities, targets []int) bool {
	g := numeric.GCDOf(capacities...)
	for _, t := range targets {
		if t%g != 0 {
			return false
		}
	}
	for i, t := range targets {
		if t == 0 || t == capacities[i] {
			return true
		}
	}

	return false
}
