package glasses_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/katalvlaran/glasses/bfs"
	"github.com/katalvlaran/glasses/glasses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce is an independent shortest-path oracle: a plain BFS keyed by the
// exact level vector, with no pruning, closed forms or fingerprints.
func bruteForce(caps, targets []int) int {
	key := func(v []int) string { return fmt.Sprint(v) }
	goal := key(targets)
	start := make([]int, len(caps))
	if key(start) == goal {
		return 0
	}
	seen := map[string]bool{key(start): true}
	frontier := [][]int{start}
	for depth := 1; len(frontier) > 0; depth++ {
		var next [][]int
		for _, cur := range frontier {
			for _, s := range successors(caps, cur) {
				k := key(s)
				if k == goal {
					return depth
				}
				if !seen[k] {
					seen[k] = true
					next = append(next, s)
				}
			}
		}
		frontier = next
	}
	return glasses.Unreachable
}

func successors(caps, cur []int) [][]int {
	var out [][]int
	with := func(f func(v []int)) {
		v := append([]int(nil), cur...)
		f(v)
		out = append(out, v)
	}
	for i := range caps {
		with(func(v []int) { v[i] = 0 })
		with(func(v []int) { v[i] = caps[i] })
		for j := range caps {
			if i == j {
				continue
			}
			with(func(v []int) {
				m := min(v[i], caps[j]-v[j])
				v[i] -= m
				v[j] += m
			})
		}
	}
	return out
}

// forEachTarget calls fn with every target vector bounded by caps.
func forEachTarget(caps []int, fn func(targets []int)) {
	t := make([]int, len(caps))
	var rec func(i int)
	rec = func(i int) {
		if i == len(caps) {
			fn(append([]int(nil), t...))
			return
		}
		for v := 0; v <= caps[i]; v++ {
			t[i] = v
			rec(i + 1)
		}
	}
	rec(0)
}

func solveValue(t *testing.T, caps, targets []int) int {
	t.Helper()
	v, err := glasses.SolveValue(caps, targets)
	require.NoError(t, err)
	return v
}

// TestSolve_Concrete pins the documented instances.
func TestSolve_Concrete(t *testing.T) {
	cases := []struct {
		name    string
		caps    []int
		targets []int
		want    int
		method  glasses.Method
	}{
		{"classic jug, 4 in the five", []int{3, 5}, []int{0, 4}, 7, glasses.MethodClosedForm},
		{"classic jug, three stays full", []int{3, 5}, []int{3, 4}, 6, glasses.MethodClosedForm},
		{"zero-capacity stripped", []int{2, 0, 0}, []int{0, 0, 0}, 0, glasses.MethodEmpty},
		{"single full", []int{4}, []int{4}, 1, glasses.MethodTrivial},
		{"single empty", []int{4}, []int{0}, 0, glasses.MethodEmpty},
		{"single intermediate", []int{4}, []int{2}, glasses.Unreachable, glasses.MethodPruned},
		{"three glasses", []int{6, 10, 15}, []int{0, 0, 5}, 3, glasses.MethodSearch},
		{"three glasses, small", []int{2, 3, 4}, []int{0, 1, 0}, 3, glasses.MethodSearch},
		{"gcd rejects", []int{4, 6, 8}, []int{0, 3, 0}, glasses.Unreachable, glasses.MethodPruned},
		{"no boundary rejects", []int{3, 5, 7}, []int{1, 1, 1}, glasses.Unreachable, glasses.MethodPruned},
		{"all full", []int{3, 5, 7}, []int{3, 5, 7}, 3, glasses.MethodTrivial},
		{"no containers", []int{}, []int{}, 0, glasses.MethodEmpty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ans, err := glasses.Solve(glasses.Instance{Capacities: c.caps, Targets: c.targets})
			require.NoError(t, err)
			assert.Equal(t, c.want, ans.Value())
			assert.Equal(t, c.method, ans.Method)
		})
	}
}

// TestSolve_ZeroCapacityTargetsIgnored drops a target on a zero-capacity
// container along with the container.
func TestSolve_ZeroCapacityTargetsIgnored(t *testing.T) {
	assert.Equal(t, 0, solveValue(t, []int{2, 0}, []int{0, 7}))
	assert.Equal(t, 7, solveValue(t, []int{0, 3, 5}, []int{1, 0, 4}))
}

// TestSolve_AllZeroTarget holds for arbitrary capacity vectors.
func TestSolve_AllZeroTarget(t *testing.T) {
	for _, caps := range [][]int{{1}, {7, 3}, {6, 10, 15}, {2, 2, 2, 2}, {100, 1, 37}} {
		assert.Equal(t, 0, solveValue(t, caps, make([]int, len(caps))))
	}
}

// TestSolve_MatchesBruteForce sweeps every target for all three-glass
// capacity vectors in [1,4]³ and a few larger ones.
func TestSolve_MatchesBruteForce(t *testing.T) {
	var capsList [][]int
	for a := 1; a <= 4; a++ {
		for b := 1; b <= 4; b++ {
			for c := 1; c <= 4; c++ {
				capsList = append(capsList, []int{a, b, c})
			}
		}
	}
	capsList = append(capsList, []int{3, 5, 8}, []int{2, 6, 9}, []int{1, 2, 3, 4})

	for _, caps := range capsList {
		forEachTarget(caps, func(targets []int) {
			want := bruteForce(caps, targets)
			got := solveValue(t, caps, targets)
			require.Equalf(t, want, got, "caps %v targets %v", caps, targets)
		})
	}
}

// TestSolve_PreCheckHasNoFalseNegatives asserts every target the pre-check
// rejects is truly unreachable.
func TestSolve_PreCheckHasNoFalseNegatives(t *testing.T) {
	for _, caps := range [][]int{{2, 4, 6}, {3, 5, 7}, {4, 6}, {1, 1, 5}, {6, 9, 12}} {
		forEachTarget(caps, func(targets []int) {
			if glasses.CanPossiblyReach(caps, targets) {
				return
			}
			require.Equalf(t, glasses.Unreachable, bruteForce(caps, targets), "caps %v targets %v", caps, targets)
		})
	}
}

// TestSolve_TrivialMatchesSearch cross-checks the fill-count shortcut against
// BFS for boundary-only targets.
func TestSolve_TrivialMatchesSearch(t *testing.T) {
	caps := []int{3, 5, 7, 4}
	for mask := 0; mask < 1<<len(caps); mask++ {
		targets := make([]int, len(caps))
		for i := range caps {
			if mask&(1<<i) != 0 {
				targets[i] = caps[i]
			}
		}
		trivial, ok := glasses.SolveIfTrivial(caps, targets)
		require.True(t, ok)
		searched, err := glasses.SearchBFS(caps, targets)
		require.NoError(t, err)
		require.True(t, searched.Reachable)
		assert.Equalf(t, searched.Ops, trivial, "targets %v", targets)
	}

	_, ok := glasses.SolveIfTrivial([]int{3, 5}, []int{3, 4})
	assert.False(t, ok)
}

// TestSolve_Idempotent runs the same instance twice.
func TestSolve_Idempotent(t *testing.T) {
	in := glasses.Instance{Capacities: []int{3, 5, 8}, Targets: []int{0, 4, 4}}
	first, err := glasses.Solve(in)
	require.NoError(t, err)
	second, err := glasses.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{0, 4, 4}, in.Targets)
}

func TestSolve_Errors(t *testing.T) {
	_, err := glasses.Solve(glasses.Instance{Capacities: []int{3, 5}, Targets: []int{1}})
	assert.ErrorIs(t, err, glasses.ErrLengthMismatch)

	_, err = glasses.Solve(glasses.Instance{Capacities: []int{3, 5}, Targets: []int{4, 0}})
	assert.ErrorIs(t, err, glasses.ErrTargetOutOfRange)

	_, err = glasses.Solve(glasses.Instance{Capacities: []int{3}, Targets: []int{0}}, glasses.WithMaxStates(-1))
	assert.ErrorIs(t, err, glasses.ErrOptionViolation)

	in := glasses.Instance{Capacities: []int{6, 10, 15}, Targets: []int{0, 0, 5}}
	_, err = glasses.Solve(in, glasses.WithMaxStates(2))
	assert.ErrorIs(t, err, bfs.ErrStateBudget)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = glasses.Solve(in, glasses.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = glasses.SearchBFS([]int{3, 5}, []int{0})
	assert.ErrorIs(t, err, glasses.ErrLengthMismatch)

	_, err = glasses.Distances([]int{3, 0})
	assert.ErrorIs(t, err, glasses.ErrInvalidCapacity)
}

// TestSolve_Logger checks that dispatch decisions reach the injected logger.
func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := glasses.Solve(glasses.Instance{Capacities: []int{3, 5}, Targets: []int{0, 4}}, glasses.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "solved in closed form")
	assert.Contains(t, buf.String(), "ops=7")
}

func TestDistances_TwoGlasses(t *testing.T) {
	dist, err := glasses.Distances([]int{3, 5})
	require.NoError(t, err)
	// every state with a boundary coordinate is reachable when gcd = 1
	assert.Len(t, dist, 16)

	ans, err := glasses.SearchBFS([]int{3, 5}, []int{0, 4})
	require.NoError(t, err)
	assert.Equal(t, 7, ans.Ops)
	assert.Equal(t, glasses.MethodSearch, ans.Method)
	assert.Positive(t, ans.States)
}

func TestAnswer(t *testing.T) {
	assert.Equal(t, glasses.Unreachable, glasses.Answer{Ops: 4}.Value())
	assert.Equal(t, 4, glasses.Answer{Ops: 4, Reachable: true}.Value())
	assert.Equal(t, "closed-form", glasses.MethodClosedForm.String())
	assert.Equal(t, "search", glasses.MethodSearch.String())
	assert.Equal(t, "method(42)", glasses.Method(42).String())
}
