package glasses

import "github.com/katalvlaran/glasses/numeric"

// Two containers admit a closed form. With one container as the "source"
// (repeatedly filled) and the other as the "destination" (repeatedly
// emptied), the only moves are fill source, pour, empty destination, pour.
// After k fills and j empties the containers hold k·from − j·to in total.
// The boundary states of the pair form a single cycle that the two choices
// of source walk in opposite directions, so the shortest distance to a
// state is the earlier of its first occurrences along the two walks.
//
// Each walk is charged one operation per fill, per empty and per pour; a
// pour follows every fill and every empty, hence the 2k + 2j shape.
//
// k·from reaches about capacity², so products go through 128-bit helpers;
// with capacities ≤ MaxCapacity every count itself fits in int64.

// steps is an operation count that may be absent ("no strategy").
type steps struct {
	n  int64
	ok bool
}

// none is the absent count.
var none = steps{}

// some wraps a finite count.
func some(n int64) steps { return steps{n: n, ok: true} }

// plus adds d to a present count; absent stays absent.
func (s steps) plus(d int64) steps {
	if !s.ok {
		return none
	}

	return some(s.n + d)
}

// min returns the smaller present count.
func (s steps) min(o steps) steps {
	switch {
	case !o.ok:
		return s
	case !s.ok || o.n < s.n:
		return o
	default:
		return s
	}
}

// fillCount returns the least k ≥ 1 with k·from ≡ target (mod to), or false
// when target is not a multiple of gcd(from, to).
func fillCount(from, to, target int64) (int64, bool) {
	d := numeric.GCD(from, to)
	if target%d != 0 {
		return 0, false
	}
	fd, td, tgt := from/d, to/d, target/d
	k := int64(numeric.MulMod(uint64(tgt%td), uint64(numeric.ModInverse(fd, td)), uint64(td)))
	if k == 0 {
		// at least one fill is needed
		k = td
	}

	return k, true
}

// emptyCount returns j = (k·from − target) / to, the number of destination
// empties after k fills. k·from ≡ target (mod to) and k·from ≥ target, so
// the division is exact; the product is taken at 128 bits.
func emptyCount(k, from, to, target int64) int64 {
	return int64(numeric.MulSubDiv(uint64(k), uint64(from), uint64(target), uint64(to)))
}

// countOpsTargetInTo: the walk "fill from, pour into to" stops with target
// in the destination and the source empty.
func countOpsTargetInTo(from, to, target int64) steps {
	switch target {
	case 0:
		return some(0)
	case to:
		return some(1)
	}
	k, ok := fillCount(from, to, target)
	if !ok {
		return none
	}
	j := emptyCount(k, from, to, target)

	return some(2*k + 2*j)
}

// countOpsTargetInFrom: same walk, stopping with target left in the source
// right after the destination is emptied. The last empty has no trailing
// pour, hence one fewer than 2k + 2j.
func countOpsTargetInFrom(from, to, target int64) steps {
	switch target {
	case 0:
		return some(0)
	case from:
		return some(1)
	}
	k, ok := fillCount(from, to, target)
	if !ok {
		return none
	}
	j := emptyCount(k, from, to, target)

	return some(2*k + 2*j - 1)
}

// countOpsTargetInFromToFull: same walk, stopping one step before that
// empty, with target in the source and the destination full. Total water in
// play is target + to.
func countOpsTargetInFromToFull(from, to, target int64) steps {
	switch target {
	case 0:
		return some(0)
	case from:
		return some(1)
	}
	k, ok := fillCount(from, to, target)
	if !ok {
		return none
	}
	j := emptyCount(k, from, to, target) - 1
	if j < 0 {
		return none
	}

	return some(2*k + 2*j)
}

// SolveForTwo returns the minimum operation count to reach levels (ta, tb)
// in containers of capacity (a, b), trying every strategy that fits the
// shape of the target. ok is false when no strategy applies, which for a
// target accepted by CanPossiblyReach would indicate a gap in the case list
// rather than a true infeasibility.
//
// Preconditions: 0 < a, b ≤ MaxCapacity and 0 ≤ ta ≤ a, 0 ≤ tb ≤ b.
// Capacities above MaxCapacity report ok == false.
//
// Complexity: O(log max(a, b)).
func SolveForTwo(a, b, ta, tb int) (ops int, ok bool) {
	best := solveForTwo(int64(a), int64(b), int64(ta), int64(tb))
	if !best.ok {
		return 0, false
	}

	return int(best.n), true
}

func solveForTwo(a, b, ta, tb int64) steps {
	switch {
	case a > MaxCapacity || b > MaxCapacity:
		return none
	case ta == 0 && tb == 0:
		return some(0)
	case ta == a && tb == b:
		return some(2)
	case ta == a && tb == 0, ta == 0 && tb == b:
		return some(1)
	}

	best := none

	if ta == 0 {
		// (0, tb): fill A and pour into B, or fill B, pour into A, empty A
		best = best.min(countOpsTargetInTo(a, b, tb))
		best = best.min(countOpsTargetInFrom(b, a, tb))
	}

	if tb == 0 {
		// (ta, 0): mirror image of the case above
		best = best.min(countOpsTargetInTo(b, a, ta))
		best = best.min(countOpsTargetInFrom(a, b, ta))
	}

	if ta == a {
		// (a, tb): reach (0, tb) and fill A
		best = best.min(countOpsTargetInTo(a, b, tb).plus(1))
		best = best.min(countOpsTargetInFrom(b, a, tb).plus(1))
		// only fill B and pour into A, never emptying: a + tb poured in total
		if (a+tb)%b == 0 {
			best = best.min(some(2 * (a + tb) / b))
		}
		// fill B, pour into A, stop when A has just been topped up
		best = best.min(countOpsTargetInFromToFull(b, a, tb))
	}

	if tb == b {
		// (ta, b): mirror image of the case above
		best = best.min(countOpsTargetInTo(b, a, ta).plus(1))
		best = best.min(countOpsTargetInFrom(a, b, ta).plus(1))
		if (b+ta)%a == 0 {
			best = best.min(some(2 * (b + ta) / a))
		}
		best = best.min(countOpsTargetInFromToFull(a, b, ta))
	}

	return best
}
